package main

import (
	"context"
	"os"
	"path/filepath"

	"github.com/custodia-labs/placehold/internal/adapters/driven/config/file"
	"github.com/custodia-labs/placehold/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/placehold/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/placehold/internal/adapters/driven/storage/yamlcodec"
	"github.com/custodia-labs/placehold/internal/adapters/driving/cli"
	"github.com/custodia-labs/placehold/internal/core/ports/driven"
	"github.com/custodia-labs/placehold/internal/core/services"
	"github.com/custodia-labs/placehold/internal/logger"
)

// configDirEnv overrides the config directory when --config-dir is not given.
const configDirEnv = "PLACEHOLD_CONFIG_DIR"

// bootstrap wires the services for a command run.
func bootstrap(opts cli.Options) (*cli.Services, error) {
	if opts.Ephemeral {
		logger.Debug("Using in-memory stores")
		return wire(memory.NewConfigStore(), memory.NewPresetStore(), nil, nil), nil
	}

	dir := opts.ConfigDir
	if dir == "" {
		dir = os.Getenv(configDirEnv)
	}
	if dir == "" {
		d, err := file.DefaultConfigDir()
		if err != nil {
			return nil, err
		}
		dir = d
	}
	logger.Debug("Config dir: %s", dir)

	cfg, err := file.NewConfigStore(dir)
	if err != nil {
		return nil, err
	}

	store, err := sqlite.NewStore(filepath.Join(dir, "data"))
	if err != nil {
		return nil, err
	}
	logger.Debug("Preset database: %s", store.Path())

	watch := func(ctx context.Context, onChange func()) error {
		return file.NewWatcher(cfg.Path(), onChange).Run(ctx)
	}
	return wire(cfg, store.PresetStore(), watch, store.Close), nil
}

// wire builds the services over the given stores.
func wire(cfg driven.ConfigStore, presets driven.PresetStore, watch cli.WatchFunc, closeFn func() error) *cli.Services {
	settings := services.NewSettingsService(cfg)
	return &cli.Services{
		Placeholder: services.NewPlaceholderService(settings),
		Preset:      services.NewPresetService(presets, yamlcodec.New()),
		Settings:    settings,
		WatchConfig: watch,
		Close:       closeFn,
	}
}
