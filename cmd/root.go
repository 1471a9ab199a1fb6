package cmd

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	oalog "github.com/harou24/oa-cli/internal/log"
	"github.com/harou24/oa-cli/internal/redact"
	"github.com/harou24/oa-cli/internal/render"
)

// Global flag values.
var (
	verbose    bool
	quiet      bool
	noColor    bool
	jsonOutput bool
	configPath string
	baseURL    string
	timeout    time.Duration
	apiKeyFlag string
)

var rootCmd = &cobra.Command{
	Use:   "oa",
	Short: "Query and interact with the OpenAI API from the command line",
	Long: `oa sends a prompt to the OpenAI API and prints the answer.

The API key is read from the config file; on first use oa asks for it and
saves it there.

Examples:
  $ oa generate-text "Write a haiku about autumn"
  $ oa generate-image "A lighthouse at dawn" --size 512x512
  $ oa summarize -f notes.txt --max-length 80
  $ oa find-bug "def add(a, b): return a - b"
  $ oa get-quota`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		oalog.Setup(cmd.ErrOrStderr(), verbose, quiet)
		if noColor {
			color.NoColor = true
		}
	},
}

func init() {
	f := rootCmd.PersistentFlags()
	f.BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	f.BoolVarP(&quiet, "quiet", "q", false, "only log warnings and errors")
	f.BoolVar(&noColor, "no-color", false, "disable colored output")
	f.BoolVar(&jsonOutput, "json", false, "print the result as JSON")
	f.StringVar(&configPath, "config", "", "credential file (default $XDG_CONFIG_HOME/oa/config.ini)")
	f.StringVar(&baseURL, "base-url", "", "API base URL (default https://api.openai.com/v1)")
	f.DurationVar(&timeout, "timeout", 0, "request timeout (default 60s)")
	f.StringVarP(&apiKeyFlag, "apikey", "k", "", "API key for this run only (overrides the config file)")
}

// Execute runs the CLI and exits with a code derived from the error kind.
func Execute() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, in io.Reader, out, errOut io.Writer) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd.SetArgs(args)
	rootCmd.SetIn(in)
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	err := rootCmd.ExecuteContext(ctx)
	if err == nil {
		return ExitOK
	}

	var reported *reportedError
	if !errors.As(err, &reported) {
		render.Error(errOut, redact.String(describe(err)))
	}
	return exitCode(err)
}
