package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/harou24/oa-cli/internal/providers"
	"github.com/harou24/oa-cli/internal/render"
)

var getQuotaCmd = &cobra.Command{
	Use:   "get-quota",
	Short: "Show usage and limits for the API key",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		provider, err := newProvider(cmd)
		if err != nil {
			return formatOutput(cmd, render.Output{}, err, nil)
		}

		res, err := provider.Dispatch(cmd.Context(), providers.RequestSpec{Kind: providers.UsageQuery})
		if err != nil {
			err = fmt.Errorf("failed to fetch quota information: %w", err)
		}
		return formatOutput(cmd, render.Output{Usage: res.Usage}, err, func(w io.Writer) error {
			if err := render.Heading(w, "API Key Quota:"); err != nil {
				return err
			}
			return render.UsageTable(w, res.Usage)
		})
	},
}

func init() {
	rootCmd.AddCommand(getQuotaCmd)
}
