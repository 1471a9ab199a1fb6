package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/harou24/oa-cli/internal/providers"
	"github.com/harou24/oa-cli/internal/render"
)

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List the models available to the API key",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		provider, err := newProvider(cmd)
		if err != nil {
			return formatOutput(cmd, render.Output{}, err, nil)
		}

		res, err := provider.Dispatch(cmd.Context(), providers.RequestSpec{Kind: providers.ModelList})
		if err != nil {
			err = fmt.Errorf("failed to list models: %w", err)
		}
		return formatOutput(cmd, render.Output{Models: res.Models}, err, func(w io.Writer) error {
			if err := render.Heading(w, "Models:"); err != nil {
				return err
			}
			return render.ModelTable(w, res.Models)
		})
	},
}

func init() {
	rootCmd.AddCommand(modelsCmd)
}
