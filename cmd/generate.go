package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/harou24/oa-cli/internal/providers"
	"github.com/harou24/oa-cli/internal/redact"
	"github.com/harou24/oa-cli/internal/render"
)

var (
	genModel       string
	genMaxTokens   int
	genTemperature float64
	genFile        string

	sumModel     string
	sumMaxLength int
	sumFile      string

	bugModel       string
	bugLanguage    string
	bugMaxTokens   int
	bugTemperature float64
	bugFile        string

	grammarModel string
	grammarFile  string
)

var generateTextCmd = &cobra.Command{
	Use:   "generate-text [PROMPT]",
	Short: "Generate text from a prompt",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runText(cmd, args, genFile, "failed to generate text", providers.TaskGenerate, providers.TextOptions{
			Model:       genModel,
			MaxTokens:   genMaxTokens,
			Temperature: providers.Float(genTemperature),
		})
	},
}

var summarizeCmd = &cobra.Command{
	Use:   "summarize [TEXT]",
	Short: "Summarize a piece of text",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runText(cmd, args, sumFile, "failed to summarize text", providers.TaskSummarize, providers.TextOptions{
			Model:     sumModel,
			MaxTokens: sumMaxLength,
		})
	},
}

var findBugCmd = &cobra.Command{
	Use:   "find-bug [CODE]",
	Short: "Describe a bug in a code snippet",
	Long: `Describe a bug in a code snippet.

The request always uses the ` + providers.CodeModel + ` model; --model is
accepted for compatibility but has no effect.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runText(cmd, args, bugFile, "failed to find bug", providers.TaskFindBug, providers.TextOptions{
			Model:       bugModel,
			MaxTokens:   bugMaxTokens,
			Temperature: providers.Float(bugTemperature),
			Language:    bugLanguage,
		})
	},
}

var grammarCorrectCmd = &cobra.Command{
	Use:   "grammar-correct [TEXT]",
	Short: "Correct the grammar of a piece of text",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runText(cmd, args, grammarFile, "failed to correct grammar", providers.TaskGrammar, providers.TextOptions{
			Model: grammarModel,
		})
	},
}

func init() {
	f := generateTextCmd.Flags()
	f.StringVarP(&genModel, "model", "m", providers.DefaultTextModel, "model to use")
	f.IntVarP(&genMaxTokens, "max-tokens", "t", 2048, "max number of tokens in generated text")
	f.Float64Var(&genTemperature, "temperature", 0.5, "sampling temperature for generated text")
	f.StringVarP(&genFile, "file", "f", "", "read the prompt from a file (- for stdin)")

	f = summarizeCmd.Flags()
	f.StringVarP(&sumModel, "model", "m", providers.DefaultTextModel, "model to use")
	f.IntVarP(&sumMaxLength, "max-length", "l", 50, "max summary length in tokens")
	f.StringVarP(&sumFile, "file", "f", "", "read the text from a file (- for stdin)")

	f = findBugCmd.Flags()
	f.StringVarP(&bugModel, "model", "m", "", "ignored, see the command help")
	f.StringVarP(&bugLanguage, "language", "l", providers.DefaultLanguage, "programming language of the code")
	f.IntVarP(&bugMaxTokens, "max-tokens", "t", 1024, "max number of tokens in the description")
	f.Float64Var(&bugTemperature, "temperature", 0.7, "sampling temperature")
	f.StringVarP(&bugFile, "file", "f", "", "read the code from a file (- for stdin)")

	f = grammarCorrectCmd.Flags()
	f.StringVarP(&grammarModel, "model", "m", providers.DefaultGrammarModel, "model to use")
	f.StringVarP(&grammarFile, "file", "f", "", "read the text from a file (- for stdin)")

	rootCmd.AddCommand(generateTextCmd, summarizeCmd, findBugCmd, grammarCorrectCmd)
}

// runText is shared by every text command; they differ only in task and
// options.
func runText(cmd *cobra.Command, args []string, file, failMsg string, task providers.Task, opts providers.TextOptions) error {
	input, err := readInput(cmd, args, file)
	if err != nil {
		return err
	}

	if task.IgnoresModel() && opts.Model != "" {
		slog.Warn("--model is ignored by this command", "requested", opts.Model)
	}

	provider, err := newProvider(cmd)
	if err != nil {
		return formatOutput(cmd, render.Output{}, err, nil)
	}

	res, err := provider.Dispatch(cmd.Context(), providers.BuildCompletion(task, input, opts))
	if err != nil {
		err = fmt.Errorf("%s: %w", failMsg, err)
	}
	return formatOutput(cmd, render.Output{Content: res.Text}, err, func(w io.Writer) error {
		return render.Labeled(w, task.Label(), res.Text)
	})
}

// readInput returns the positional argument, or the content of file when
// set. "-" reads standard input.
func readInput(cmd *cobra.Command, args []string, file string) (string, error) {
	switch {
	case file != "" && len(args) > 0:
		return "", errors.New("give the input as an argument or with --file, not both")
	case file == "-":
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return nonEmpty(string(data))
	case file != "":
		data, err := os.ReadFile(file) //nolint:gosec // user-supplied input file
		if err != nil {
			return "", fmt.Errorf("read input file: %w", err)
		}
		return nonEmpty(string(data))
	case len(args) == 1:
		return nonEmpty(args[0])
	default:
		return "", errors.New("missing input: pass it as an argument or with --file")
	}
}

func nonEmpty(s string) (string, error) {
	s = strings.TrimRight(s, "\r\n")
	if strings.TrimSpace(s) == "" {
		return "", errors.New("input is empty")
	}
	return s, nil
}

// formatOutput prints either the JSON envelope or the human rendering. With
// --json a failure is still reported in the envelope and the error is only
// used for the exit code.
func formatOutput(cmd *cobra.Command, out render.Output, err error, human func(io.Writer) error) error {
	if jsonOutput {
		out.Success = err == nil
		if err != nil {
			out = render.Output{Error: redact.String(err.Error())}
		}
		if jerr := render.JSON(cmd.OutOrStdout(), out); jerr != nil {
			return jerr
		}
		if err != nil {
			return &reportedError{err: err}
		}
		return nil
	}

	if err != nil {
		return err
	}
	return human(cmd.OutOrStdout())
}
