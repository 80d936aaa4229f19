package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/placehold/internal/core/domain"
)

var (
	endpointScheme          string
	endpointPlaceholderHost string
	endpointPlacekittenHost string
	endpointReset           bool
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage default settings",
	Long: `View and configure the defaults new placeholders start from.

Settings are stored in config.toml in the config directory.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsServiceCmd = &cobra.Command{
	Use:   "service [name]",
	Short: "Set the default service",
	Long: `Set the service new placeholders target.

Available services:
  placeholder  - placehold.it (aliases: placehold, placehold.it)
  placekitten  - placekitten.com (aliases: kitten, placekitten.com)`,
	Args: cobra.ExactArgs(1),
	RunE: runSettingsService,
}

var settingsSizeCmd = &cobra.Command{
	Use:   "size [width] [height]",
	Short: "Set the default size",
	Long: `Set the default width and height in pixels.

Accepts "size 640 480", "size 640x480" or "size 640" for a square.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runSettingsSize,
}

var settingsEndpointsCmd = &cobra.Command{
	Use:   "endpoints",
	Short: "Set the URL scheme and hosts",
	Long: `Point generated URLs at a mirror or a self-hosted service.

Flags that are not given keep their current value. --reset restores the
public services.`,
	Args: cobra.NoArgs,
	RunE: runSettingsEndpoints,
}

func init() {
	settingsEndpointsCmd.Flags().StringVar(&endpointScheme, "scheme", "", "URL scheme (http or https)")
	settingsEndpointsCmd.Flags().StringVar(&endpointPlaceholderHost, "placeholder-host", "", "host for the placeholder service")
	settingsEndpointsCmd.Flags().StringVar(&endpointPlacekittenHost, "placekitten-host", "", "host for the placekitten service")
	settingsEndpointsCmd.Flags().BoolVar(&endpointReset, "reset", false, "restore the public endpoints")

	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsServiceCmd)
	settingsCmd.AddCommand(settingsSizeCmd)
	settingsCmd.AddCommand(settingsEndpointsCmd)
	rootCmd.AddCommand(settingsCmd)
}

func requireSettingsService() error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}
	return nil
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if err := requireSettingsService(); err != nil {
		return err
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Current Settings")
	fmt.Fprintln(out, "================")
	fmt.Fprintln(out)

	fmt.Fprintln(out, "[Placeholder]")
	fmt.Fprintf(out, "  Service: %s\n", settings.Service.Description())
	fmt.Fprintf(out, "  Size: %dx%d\n", settings.Width, settings.Height)
	fmt.Fprintln(out)

	fmt.Fprintln(out, "[Endpoints]")
	fmt.Fprintf(out, "  Scheme: %s\n", settings.Endpoints.Scheme)
	fmt.Fprintf(out, "  Placeholder host: %s\n", settings.Endpoints.PlaceholderHost)
	fmt.Fprintf(out, "  Placekitten host: %s\n", settings.Endpoints.PlacekittenHost)
	return nil
}

func runSettingsService(cmd *cobra.Command, args []string) error {
	if err := requireSettingsService(); err != nil {
		return err
	}

	service, err := domain.ParseService(args[0])
	if err != nil {
		return err
	}
	if err := settingsService.SetDefaultService(service); err != nil {
		return fmt.Errorf("failed to save service: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Default service set to %s\n", service)
	return nil
}

func runSettingsSize(cmd *cobra.Command, args []string) error {
	if err := requireSettingsService(); err != nil {
		return err
	}

	var width, height int
	var err error
	if len(args) == 1 {
		width, height, err = parseSize(args[0])
	} else {
		width, height, err = parseDimensions(args[0], args[1])
	}
	if err != nil {
		return err
	}

	if err := settingsService.SetDefaultSize(width, height); err != nil {
		return fmt.Errorf("failed to save size: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Default size set to %dx%d\n", width, height)
	return nil
}

func runSettingsEndpoints(cmd *cobra.Command, _ []string) error {
	if err := requireSettingsService(); err != nil {
		return err
	}

	endpoints := domain.Endpoints{}
	if !endpointReset {
		settings, err := settingsService.Get()
		if err != nil {
			return fmt.Errorf("failed to get settings: %w", err)
		}
		endpoints = settings.Endpoints
	}

	flags := cmd.Flags()
	if flags.Changed("scheme") {
		endpoints.Scheme = endpointScheme
	}
	if flags.Changed("placeholder-host") {
		endpoints.PlaceholderHost = endpointPlaceholderHost
	}
	if flags.Changed("placekitten-host") {
		endpoints.PlacekittenHost = endpointPlacekittenHost
	}

	if err := settingsService.SetEndpoints(endpoints); err != nil {
		return fmt.Errorf("failed to save endpoints: %w", err)
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Endpoints set to %s://%s and %s://%s\n",
		settings.Endpoints.Scheme, settings.Endpoints.PlaceholderHost,
		settings.Endpoints.Scheme, settings.Endpoints.PlacekittenHost)
	return nil
}

// parseDimensions parses a width and height given as separate arguments.
func parseDimensions(w, h string) (int, int, error) {
	width, err := strconv.Atoi(w)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: width must be an integer, got %q", domain.ErrInvalidInput, w)
	}
	height, err := strconv.Atoi(h)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: height must be an integer, got %q", domain.ErrInvalidInput, h)
	}
	return width, height, nil
}
