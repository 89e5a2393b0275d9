package main

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"

	"github.com/risor-io/jsfront/errors"
	"github.com/risor-io/jsfront/parser"
)

func (a *app) checkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [files...]",
		Short: "Check that the given files parse without errors",
		RunE:  a.checkHandler,
	}
	cmd.Flags().IntP("context", "C", 2, "Lines of source shown before each error")
	cmd.Flags().BoolP("quiet", "q", false, "Only report errors")
	return cmd
}

// fileError ties a parse error to the source it came from.
type fileError struct {
	src source
	err error
}

func (e *fileError) Error() string { return e.err.Error() }

func (e *fileError) Unwrap() error { return e.err }

func (a *app) checkHandler(cmd *cobra.Command, args []string) error {
	sources, err := a.getSources(cmd, args)
	if err != nil {
		return err
	}
	quiet, _ := cmd.Flags().GetBool("quiet")
	contextLines, _ := cmd.Flags().GetInt("context")

	var result *multierror.Error
	for _, src := range sources {
		if _, err := parser.Parse(cmd.Context(), src.code, a.parserOptions(src.name)...); err != nil {
			a.logger.Debug().Str("file", src.name).Err(err).Msg("check failed")
			result = multierror.Append(result, &fileError{src: src, err: err})
			continue
		}
		if !quiet {
			fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", displayName(src))
		}
	}
	if result == nil {
		return nil
	}

	reports := make([]*errors.FormattedError, 0, len(result.Errors))
	for _, err := range result.Errors {
		reports = append(reports, formatFileError(err, contextLines))
	}
	stderr := cmd.ErrOrStderr()
	formatter := errors.NewFormatter(a.colorEnabled(stderr))
	fmt.Fprint(stderr, formatter.FormatMultiple(reports))
	return exitCode(1)
}

// formatFileError builds the report for err, widening its source excerpt to
// include contextLines lines before the failing one.
func formatFileError(err error, contextLines int) *errors.FormattedError {
	fe, ok := err.(*fileError)
	if !ok {
		return errors.Formatted(err)
	}
	report := errors.Formatted(fe.err)
	if report.Filename == "" {
		report.Filename = fe.src.name
	}
	if contextLines > 0 && report.Line > 0 {
		if lines := errors.SourceContext(fe.src.code, report.Line, contextLines); len(lines) > 0 {
			report.SourceLines = lines
		}
	}
	return report
}

func displayName(src source) string {
	if src.name == "" {
		return "<code>"
	}
	return src.name
}
