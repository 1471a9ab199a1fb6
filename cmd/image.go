package cmd

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harou24/oa-cli/internal/providers"
	"github.com/harou24/oa-cli/internal/render"
)

var (
	imageModel string
	imageSize  string
)

var generateImageCmd = &cobra.Command{
	Use:   "generate-image PROMPT",
	Short: "Generate an image and print its URL",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		prompt, err := nonEmpty(args[0])
		if err != nil {
			return err
		}

		provider, err := newProvider(cmd)
		if err != nil {
			return formatOutput(cmd, render.Output{}, err, nil)
		}

		res, err := provider.Dispatch(cmd.Context(), providers.RequestSpec{
			Kind:   providers.ImageGeneration,
			Model:  imageModel,
			Prompt: prompt,
			Size:   imageSize,
		})
		if err != nil {
			err = fmt.Errorf("failed to generate image: %w", err)
		}
		return formatOutput(cmd, render.Output{Content: res.URL}, err, func(w io.Writer) error {
			return render.Image(w, res.URL, color.NoColor)
		})
	},
}

func init() {
	generateImageCmd.Flags().StringVarP(&imageModel, "model", "m", providers.DefaultImageModel, "image model to use")
	generateImageCmd.Flags().StringVarP(&imageSize, "size", "s", providers.DefaultImageSize, "size of the generated image")
	rootCmd.AddCommand(generateImageCmd)
}
