package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	urlFlags specFlags
	imgFlags specFlags
)

var urlCmd = &cobra.Command{
	Use:   "url",
	Short: "Print a placeholder image URL",
	Long: `Print the URL of a placeholder image built from the configured defaults,
an optional preset and the given flags.

Examples:
  placehold url                          # http://placehold.it/300x150
  placehold url --size 200               # http://placehold.it/200
  placehold url --bg 333 --color fff --format png --text "Hello World"
  placehold url --kitten --size 150x200 --bg cccccc`,
	Args: cobra.NoArgs,
	RunE: runURL,
}

var imgCmd = &cobra.Command{
	Use:   "img",
	Short: "Print a placeholder <img> tag",
	Long: `Print an HTML <img> element for a placeholder image. The alt text is the
caption, or "Placeholder" when no caption is set.`,
	Args: cobra.NoArgs,
	RunE: runImg,
}

func init() {
	urlFlags.register(urlCmd.Flags())
	imgFlags.register(imgCmd.Flags())
	rootCmd.AddCommand(urlCmd)
	rootCmd.AddCommand(imgCmd)
}

func runURL(cmd *cobra.Command, _ []string) error {
	spec, err := urlFlags.build(cmd.Context(), cmd)
	if err != nil {
		return err
	}

	url, err := placeholderService.URL(spec)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), url)
	return nil
}

func runImg(cmd *cobra.Command, _ []string) error {
	spec, err := imgFlags.build(cmd.Context(), cmd)
	if err != nil {
		return err
	}

	tag, err := placeholderService.ImageTag(spec)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), tag)
	return nil
}
