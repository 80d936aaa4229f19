package cli

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/placehold/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/placehold/internal/core/domain"
)

var presetSaveFlags specFlags

var presetCmd = &cobra.Command{
	Use:   "preset",
	Short: "Manage saved presets",
	Long: `Save, list and remove named placeholder specs.

A preset can be used as the starting point for url and img:
  placehold preset save avatar --size 150x200 --text Avatar
  placehold url --preset avatar --format png`,
}

var presetSaveCmd = &cobra.Command{
	Use:   "save [name]",
	Short: "Save a preset",
	Long:  `Save the spec built from the flags under a name. An existing preset with the same name is replaced.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runPresetSave,
}

var presetListCmd = &cobra.Command{
	Use:   "list",
	Short: "List presets",
	Args:  cobra.NoArgs,
	RunE:  runPresetList,
}

var presetShowCmd = &cobra.Command{
	Use:   "show [name]",
	Short: "Show a preset",
	Args:  cobra.ExactArgs(1),
	RunE:  runPresetShow,
}

var presetDeleteCmd = &cobra.Command{
	Use:     "delete [name]",
	Aliases: []string{"rm"},
	Short:   "Delete a preset",
	Args:    cobra.ExactArgs(1),
	RunE:    runPresetDelete,
}

var presetExportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export presets as YAML",
	Long:  `Write all presets to a YAML file, or to stdout when no file is given.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runPresetExport,
}

var presetImportCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Import presets from YAML",
	Long:  `Read presets from a YAML file ("-" for stdin). Presets with the same name are replaced.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runPresetImport,
}

func init() {
	presetSaveFlags.register(presetSaveCmd.Flags())
	presetCmd.AddCommand(presetSaveCmd)
	presetCmd.AddCommand(presetListCmd)
	presetCmd.AddCommand(presetShowCmd)
	presetCmd.AddCommand(presetDeleteCmd)
	presetCmd.AddCommand(presetExportCmd)
	presetCmd.AddCommand(presetImportCmd)
	rootCmd.AddCommand(presetCmd)
}

func runPresetSave(cmd *cobra.Command, args []string) error {
	if err := requirePresetService(); err != nil {
		return err
	}

	spec, err := presetSaveFlags.build(cmd.Context(), cmd)
	if err != nil {
		return err
	}

	preset, err := presetService.Save(cmd.Context(), args[0], spec)
	if err != nil {
		return fmt.Errorf("failed to save preset: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Saved preset %q\n", preset.Name)
	return nil
}

func runPresetList(cmd *cobra.Command, _ []string) error {
	if err := requirePresetService(); err != nil {
		return err
	}
	if err := requirePlaceholderService(); err != nil {
		return err
	}

	presets, err := presetService.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list presets: %w", err)
	}

	out := cmd.OutOrStdout()
	if len(presets) == 0 {
		fmt.Fprintln(out, "No presets saved.")
		return nil
	}

	if isTerminal(out) {
		return printPresetsStyled(out, presets)
	}
	return printPresetsPlain(out, presets)
}

func printPresetsPlain(out io.Writer, presets []domain.Preset) error {
	fmt.Fprintln(out, "Presets:")
	fmt.Fprintln(out)
	for i := range presets {
		p := presets[i]
		fmt.Fprintf(out, "  %s\n", p.Name)
		fmt.Fprintf(out, "    Service: %s\n", p.Spec.Service)
		fmt.Fprintf(out, "    Size:    %dx%d\n", p.Spec.Width, p.Spec.Height)
		fmt.Fprintf(out, "    URL:     %s\n", presetURL(p))
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Total: %d presets\n", len(presets))
	return nil
}

func printPresetsStyled(out io.Writer, presets []domain.Preset) error {
	s := styles.DefaultStyles()
	fmt.Fprintln(out, s.Title.Render("Presets"))
	for i := range presets {
		p := presets[i]
		size := s.Muted.Render(fmt.Sprintf("%dx%d %s", p.Spec.Width, p.Spec.Height, p.Spec.Service))
		fmt.Fprintf(out, "%s %s %s\n", s.Swatch(p.Spec.BackgroundColor), s.Label.Render(p.Name), size)
		fmt.Fprintf(out, "   %s\n", s.URL.Render(presetURL(p)))
	}
	return nil
}

// presetURL renders a preset's URL, or the error text when it cannot be built.
func presetURL(p domain.Preset) string {
	url, err := placeholderService.URL(p.Spec)
	if err != nil {
		return "(" + err.Error() + ")"
	}
	return url
}

func runPresetShow(cmd *cobra.Command, args []string) error {
	if err := requirePresetService(); err != nil {
		return err
	}
	if err := requirePlaceholderService(); err != nil {
		return err
	}

	preset, err := presetService.Get(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("preset %q: %w", args[0], err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Name: %s\n", preset.Name)
	fmt.Fprintf(out, "ID: %s\n", preset.ID)

	values := preset.Spec.Values()
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(out, "  %s: %s\n", k, values[k])
	}

	url, err := placeholderService.URL(preset.Spec)
	if err != nil {
		return err
	}
	tag, err := placeholderService.ImageTag(preset.Spec)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "URL: %s\n", url)
	fmt.Fprintf(out, "Tag: %s\n", tag)
	return nil
}

func runPresetDelete(cmd *cobra.Command, args []string) error {
	if err := requirePresetService(); err != nil {
		return err
	}

	if err := presetService.Delete(cmd.Context(), args[0]); err != nil {
		return fmt.Errorf("failed to delete preset %q: %w", args[0], err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Deleted preset %q\n", strings.TrimSpace(args[0]))
	return nil
}

func runPresetExport(cmd *cobra.Command, args []string) error {
	if err := requirePresetService(); err != nil {
		return err
	}

	if len(args) == 0 || args[0] == "-" {
		return presetService.Export(cmd.Context(), cmd.OutOrStdout())
	}

	f, err := os.OpenFile(args[0], os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("creating export file: %w", err)
	}
	if err := presetService.Export(cmd.Context(), f); err != nil {
		f.Close()
		return fmt.Errorf("failed to export presets: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("writing export file: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Exported presets to %s\n", args[0])
	return nil
}

func runPresetImport(cmd *cobra.Command, args []string) error {
	if err := requirePresetService(); err != nil {
		return err
	}

	var in io.Reader = cmd.InOrStdin()
	if args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("opening import file: %w", err)
		}
		defer f.Close()
		in = f
	}

	count, err := presetService.Import(cmd.Context(), in)
	if err != nil {
		return fmt.Errorf("failed to import presets (%d imported): %w", count, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Imported %d preset(s)\n", count)
	return nil
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
