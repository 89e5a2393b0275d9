package main

import (
	"errors"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// source is one unit of input along with the name used to report errors.
type source struct {
	name string
	code string
}

// getSources determines what code is to be processed. There are three
// possibilities:
//  1. --code <code>
//  2. --stdin (read code from stdin)
//  3. one or more paths given as arguments
func (a *app) getSources(cmd *cobra.Command, args []string) ([]source, error) {
	codeFlagSet := flagChanged(cmd, "code")
	stdinFlagSet := a.config.GetBool("stdin")
	pathSupplied := len(args) > 0

	count := 0
	for _, set := range []bool{codeFlagSet, stdinFlagSet, pathSupplied} {
		if set {
			count++
		}
	}
	if count > 1 {
		return nil, errors.New("multiple input sources specified")
	}

	switch {
	case stdinFlagSet:
		data, err := io.ReadAll(a.stdin)
		if err != nil {
			return nil, err
		}
		return []source{{name: "<stdin>", code: string(data)}}, nil
	case pathSupplied:
		sources := make([]source, 0, len(args))
		for _, path := range args {
			data, err := os.ReadFile(path)
			if err != nil {
				return nil, err
			}
			sources = append(sources, source{name: path, code: string(data)})
		}
		return sources, nil
	case codeFlagSet:
		return []source{{code: a.config.GetString("code")}}, nil
	}
	return nil, errors.New("no input provided")
}

func flagChanged(cmd *cobra.Command, name string) bool {
	f := cmd.Flags().Lookup(name)
	return f != nil && f.Changed
}
