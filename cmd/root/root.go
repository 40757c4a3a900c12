// Package root contains the root command for the application
package root

import (
	"fmt"

	"aek/wallet/internal/config"
	"aek/wallet/internal/container"
	"aek/wallet/internal/logging"
	"aek/wallet/internal/validation"

	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are common to every command
type CommonFlags struct {
	ConfigFile string
	Output     string
}

var (
	// Log is the shared logger instance for commands. It is replaced by the
	// configured logger once the container is built.
	Log logging.Logger = logging.NewLogrusAdapter(config.BootstrapLogLevel(), config.BootstrapLogFormat())

	// AppContainer holds the wired dependencies for the running command.
	AppContainer *container.Container

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "wallet",
		Short: "A single-user income and expense ledger.",
		Long: `wallet records income and expense entries, keeps them in a local store,
and renders dashboard totals, category reports and listings.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return Setup()
		},
	}

	// SharedFlags holds the values of the persistent flags.
	SharedFlags = CommonFlags{}
)

// Init initializes the root command and all flags. Teardown is registered
// as a finalizer so the store is closed even when a command fails.
func Init() {
	cobra.OnFinalize(Teardown)
	Cmd.PersistentFlags().StringVar(&SharedFlags.ConfigFile, "config", "", "Config file (default: config.yaml in $HOME/.wallet, .wallet or .)")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", validation.FormatTable, "Output format: table, json or yaml")
}

// Setup validates the shared flags, loads configuration and builds the
// container. Extra options are forwarded to the container, which lets tests
// inject a clock or a store.
func Setup(opts ...container.Option) error {
	if err := validation.IsValidOutputFormat(SharedFlags.Output); err != nil {
		return err
	}

	cfg, err := config.InitializeConfigFromFile(SharedFlags.ConfigFile)
	if err != nil {
		return err
	}

	c, err := container.NewContainer(cfg, opts...)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	AppContainer = c
	Log = c.GetLogger()
	return nil
}

// Teardown closes the container built by Setup.
func Teardown() {
	if AppContainer == nil {
		return
	}
	if err := AppContainer.Close(); err != nil {
		Log.WithError(err).Warn("Failed to close application resources")
	}
	AppContainer = nil
}

// GetContainer returns the container for the running command.
func GetContainer() (*container.Container, error) {
	if AppContainer == nil {
		return nil, fmt.Errorf("application is not initialized")
	}
	return AppContainer, nil
}
