package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/mitchellh/go-homedir"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/risor-io/jsfront/parser"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

const configName = ".jsfront.yaml"

func main() {
	if err := newRootCmd(os.Stdin).Execute(); err != nil {
		var code exitCode
		if !asExitCode(err, &code) {
			fmt.Fprintf(os.Stderr, "%s\n", red(err.Error()))
			code = 1
		}
		os.Exit(int(code))
	}
}

// app holds the state shared by all subcommands of a single invocation.
type app struct {
	config *viper.Viper
	logger zerolog.Logger
	stdin  io.Reader
}

func newRootCmd(stdin io.Reader) *cobra.Command {
	a := &app{
		config: viper.New(),
		logger: zerolog.Nop(),
		stdin:  stdin,
	}

	root := &cobra.Command{
		Use:           "jsfront",
		Short:         "Lex and parse JavaScript-like source code",
		Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.initialize(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.String("config", "", "config file (default is $HOME/"+configName+")")
	flags.StringP("code", "c", "", "Code to parse")
	flags.Bool("stdin", false, "Read code from stdin")
	flags.Bool("no-color", false, "Disable colored output")
	flags.String("log-level", "warn", "Log level (trace, debug, info, warn, error)")
	flags.Int("max-depth", parser.DefaultMaxDepth, "Maximum nesting depth accepted by the parser")

	for _, name := range []string{"code", "stdin", "no-color", "log-level", "max-depth"} {
		_ = a.config.BindPFlag(name, flags.Lookup(name))
	}
	a.config.SetEnvPrefix("jsfront")
	a.config.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.config.AutomaticEnv()

	root.AddCommand(a.astCmd(), a.tokensCmd(), a.checkCmd())
	return root
}

// initialize loads the config file and applies global flags. It runs before
// every subcommand.
func (a *app) initialize(cmd *cobra.Command) error {
	if err := a.loadConfig(cmd); err != nil {
		return err
	}
	if a.config.GetBool("no-color") {
		color.NoColor = true
	}
	level, err := zerolog.ParseLevel(a.config.GetString("log-level"))
	if err != nil {
		return fmt.Errorf("invalid log level %q", a.config.GetString("log-level"))
	}
	a.logger = zerolog.New(zerolog.ConsoleWriter{
		Out:     cmd.ErrOrStderr(),
		NoColor: !a.colorEnabled(cmd.ErrOrStderr()),
	}).Level(level).With().Timestamp().Logger()
	return nil
}

func (a *app) loadConfig(cmd *cobra.Command) error {
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		a.config.SetConfigFile(path)
		if err := a.config.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config: %w", err)
		}
		return nil
	}
	home, err := homedir.Dir()
	if err != nil {
		return nil
	}
	path := filepath.Join(home, configName)
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	a.config.SetConfigFile(path)
	if err := a.config.ReadInConfig(); err != nil {
		return fmt.Errorf("reading config: %w", err)
	}
	return nil
}

// parserOptions returns the parser options implied by the global flags.
func (a *app) parserOptions(filename string) []parser.Option {
	opts := []parser.Option{
		parser.WithMaxDepth(a.config.GetInt("max-depth")),
		parser.WithLogger(a.logger),
	}
	if filename != "" {
		opts = append(opts, parser.WithFilename(filename))
	}
	return opts
}
