package cli

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/custodia-labs/placehold/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/placehold/internal/adapters/driven/storage/yamlcodec"
	"github.com/custodia-labs/placehold/internal/core/services"
)

// setupTestServices wires real services over in-memory stores.
func setupTestServices(t *testing.T) *Services {
	t.Helper()

	settings := services.NewSettingsService(memory.NewConfigStore())
	s := &Services{
		Placeholder: services.NewPlaceholderService(settings),
		Preset:      services.NewPresetService(memory.NewPresetStore(), yamlcodec.New()),
		Settings:    settings,
	}
	SetServices(s)
	t.Cleanup(func() { SetServices(nil) })
	return s
}

// runCLI executes the root command with args and returns what it wrote to stdout.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return runCLIWithInput(t, "", args...)
}

func runCLIWithInput(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	out := new(bytes.Buffer)
	rootCmd.SetOut(out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetIn(nil)
		resetFlags(rootCmd)
	}()

	err := Execute()
	return out.String(), err
}

// resetFlags restores every flag in the command tree to its default,
// since flag variables outlive a single Execute.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}
