package parser

// Binding powers for operators, loosest first. An operator continues the
// expression on its left only when its binding power is greater than the
// binding power the caller is parsing at.
const (
	_ int = iota
	LOWEST
	COMMA       // a, b
	ASSIGN      // = += -= ... and the ternary ? :
	OR          // ||
	AND         // &&
	BIT_OR      // |
	BIT_XOR     // ^
	BIT_AND     // &
	EQUALS      // == != === !==
	LESSGREATER // < <= > >=
	SHIFT       // << >> >>>
	SUM         // + -
	PRODUCT     // * / %
	PREFIX      // -X +X ++X --X
	POSTFIX     // X++ X--
	CALL        // myFunction(X) array[index]
	MEMBER      // object.field
)
