// Package cmd contains the protokolo command-line interface.
package cmd

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/akontos/protokolo/internal/clock"
	"github.com/akontos/protokolo/internal/config"
	"github.com/akontos/protokolo/internal/i18n"
	"github.com/akontos/protokolo/internal/identity"
	"github.com/akontos/protokolo/internal/infrastructure/sqlite"
	"github.com/akontos/protokolo/internal/log"
	"github.com/akontos/protokolo/internal/registry"
	"github.com/akontos/protokolo/internal/tracing"
)

var (
	cfgFile    string
	debugMode  bool
	cfg        config.Config
	logCleanup func()
)

var rootCmd = &cobra.Command{
	Use:   "protokolo",
	Short: "Document registry with sequential protocol numbering",
	Long: `A registry desk application: register incoming and outgoing documents
under one of six categories, receive an auto-assigned sequential protocol
number (and draft number for outgoing documents), then list, filter and
soft-delete registry entries.`,
	SilenceUsage: true,
}

// SetVersion sets the version string shown by --version.
func SetVersion(version string) {
	rootCmd.Version = version
}

// Execute runs the root command.
func Execute() error {
	defer func() {
		if logCleanup != nil {
			logCleanup()
		}
	}()
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/protokolo/config.yaml)")
	rootCmd.PersistentFlags().String("data-dir", "",
		"data directory holding the registry database (default: ~/.protokolo)")
	rootCmd.PersistentFlags().String("language", "",
		"display language: el or en")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false,
		"write a debug log under the data directory")

	// Bind flags to viper
	_ = viper.BindPFlag("data_dir", rootCmd.PersistentFlags().Lookup("data-dir"))
	_ = viper.BindPFlag("language", rootCmd.PersistentFlags().Lookup("language"))
}

func initConfig() {
	defaults := config.Defaults()
	viper.SetDefault("data_dir", defaults.DataDir)
	viper.SetDefault("language", defaults.Language)
	viper.SetDefault("tracing.enabled", defaults.Tracing.Enabled)
	viper.SetDefault("tracing.exporter", defaults.Tracing.Exporter)
	viper.SetDefault("tracing.otlp_endpoint", defaults.Tracing.OTLPEndpoint)
	viper.SetDefault("tracing.sample_rate", defaults.Tracing.SampleRate)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Config lookup order:
		// 1. .protokolo/config.yaml (current directory)
		// 2. ~/.config/protokolo/config.yaml (user config)
		if _, err := os.Stat(".protokolo/config.yaml"); err == nil {
			viper.SetConfigFile(".protokolo/config.yaml")
		} else {
			home, _ := os.UserHomeDir()
			viper.AddConfigPath(filepath.Join(home, ".config", "protokolo"))
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
	}

	// A missing config file just means defaults; anything else is surfaced
	// once unmarshalling fails.
	_ = viper.ReadInConfig()
	_ = viper.Unmarshal(&cfg)

	if debugMode || os.Getenv("PROTOKOLO_DEBUG") != "" {
		if err := os.MkdirAll(cfg.DataDir, 0700); err == nil {
			if cleanup, err := log.Init(cfg.LogPath()); err == nil {
				logCleanup = cleanup
			}
		}
	}
}

// openRegistry constructs the database, tracing provider and registration
// service. The returned cleanup closes them in reverse order.
func openRegistry() (*registry.Service, func(), error) {
	traceCfg := cfg.Tracing
	if traceCfg.Enabled && traceCfg.Exporter == "file" && traceCfg.FilePath == "" {
		traceCfg.FilePath = cfg.TracePath()
	}
	provider, err := tracing.NewProvider(traceCfg)
	if err != nil {
		return nil, nil, err
	}

	db, err := sqlite.NewDB(cfg.DBPath())
	if err != nil {
		shutdownProvider(provider)
		return nil, nil, err
	}

	service := registry.NewService(
		db.RegistrationRepository(),
		db.CounterStore(),
		clock.System{},
		identity.OSProvider{},
		registry.UUIDGenerator{},
		provider.Tracer(),
	)

	cleanup := func() {
		_ = db.Close()
		shutdownProvider(provider)
	}
	return service, cleanup, nil
}

func shutdownProvider(provider *tracing.Provider) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_ = provider.Shutdown(ctx)
}

// labels returns the catalog for the configured language.
func labels() *i18n.Catalog {
	return i18n.NewCatalog(i18n.Language(cfg.Language))
}
