// Package cli implements the placehold command line interface.
package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/placehold/internal/core/ports/driving"
	"github.com/custodia-labs/placehold/internal/logger"
)

// version is set at build time via SetVersion.
var version = "dev"

// Services consumed by the commands.
var (
	placeholderService driving.PlaceholderService
	presetService      driving.PresetService
	settingsService    driving.SettingsService
	configWatcher      WatchFunc
	closeServices      func() error
)

// Global flags.
var (
	verbose   bool
	configDir string
	ephemeral bool
)

// Options carries the global flags into the bootstrap function.
type Options struct {
	// ConfigDir overrides the config directory. Empty means the default.
	ConfigDir string
	// Ephemeral keeps all state in memory.
	Ephemeral bool
}

// WatchFunc blocks until ctx is cancelled, calling onChange whenever the
// configuration changes on disk.
type WatchFunc func(ctx context.Context, onChange func()) error

// Services is the set of wired services returned by a BootstrapFunc.
type Services struct {
	Placeholder driving.PlaceholderService
	Preset      driving.PresetService
	Settings    driving.SettingsService
	// WatchConfig is optional. Without it, mcp serve never reloads settings.
	WatchConfig WatchFunc
	// Close releases storage. Optional.
	Close func() error
}

// BootstrapFunc wires services once global flags are parsed.
type BootstrapFunc func(opts Options) (*Services, error)

var bootstrap BootstrapFunc

var rootCmd = &cobra.Command{
	Use:   "placehold",
	Short: "Generate placeholder image URLs and tags",
	Long: `placehold builds URLs and <img> tags for placeholder image services.

It targets placehold.it (size, colours, format and caption) and
placekitten.com (size and greyscale), and can store named presets.

Examples:
  placehold url --size 200x200
  placehold img --width 150 --height 200 --text Avatar --format png
  placehold url --kitten --bg cccccc`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print debug output to stderr")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "config directory (default ~/.placehold)")
	rootCmd.PersistentFlags().BoolVar(&ephemeral, "ephemeral", false, "keep settings and presets in memory only")
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// SetBootstrap registers the function that wires services before a command runs.
func SetBootstrap(fn BootstrapFunc) {
	bootstrap = fn
}

// SetServices wires services directly, bypassing the bootstrap function.
func SetServices(s *Services) {
	if s == nil {
		placeholderService, presetService, settingsService = nil, nil, nil
		configWatcher, closeServices = nil, nil
		return
	}
	placeholderService = s.Placeholder
	presetService = s.Preset
	settingsService = s.Settings
	configWatcher = s.WatchConfig
	closeServices = s.Close
}

// Execute runs the root command.
func Execute() error {
	return ExecuteContext(context.Background())
}

// ExecuteContext runs the root command with a context.
// Services are closed afterwards whether or not the command succeeded.
func ExecuteContext(ctx context.Context) error {
	err := rootCmd.ExecuteContext(ctx)
	if cerr := teardown(); cerr != nil {
		if err != nil {
			logger.Warn("Failed to close services: %v", cerr)
			return err
		}
		return cerr
	}
	return err
}

func setup(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)

	if bootstrap == nil || placeholderService != nil {
		return nil
	}

	logger.Section("Bootstrap")
	logger.Debug("Config dir: %q, ephemeral: %v", configDir, ephemeral)
	services, err := bootstrap(Options{ConfigDir: configDir, Ephemeral: ephemeral})
	if err != nil {
		return err
	}
	SetServices(services)
	return nil
}

func teardown() error {
	if closeServices == nil {
		return nil
	}
	err := closeServices()
	closeServices = nil
	return err
}

func requirePlaceholderService() error {
	if placeholderService == nil {
		return errors.New("placeholder service not configured")
	}
	return nil
}

func requirePresetService() error {
	if presetService == nil {
		return errors.New("preset service not configured")
	}
	return nil
}
