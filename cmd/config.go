package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/akontos/protokolo/internal/config"
	"github.com/akontos/protokolo/internal/i18n"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the protokolo configuration file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a commented default config file",
	RunE: func(cmd *cobra.Command, _ []string) error {
		path := cfgFile
		if path == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return fmt.Errorf("resolving home directory: %w", err)
			}
			path = filepath.Join(home, ".config", "protokolo", "config.yaml")
		}
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config file already exists at %s", path)
		}
		if err := config.WriteDefaultConfig(path); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", path)
		return nil
	},
}

var configLanguageCmd = &cobra.Command{
	Use:   "language <el|en>",
	Short: "Set the display language in the config file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		language := i18n.Language(args[0])
		if language != i18n.LanguageGreek && language != i18n.LanguageEnglish {
			return fmt.Errorf("unknown language %q, expected el or en", args[0])
		}

		path := cfgFile
		if path == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return fmt.Errorf("resolving home directory: %w", err)
			}
			path = filepath.Join(home, ".config", "protokolo", "config.yaml")
		}
		if _, err := os.Stat(path); err != nil {
			if err := config.WriteDefaultConfig(path); err != nil {
				return err
			}
		}
		if err := config.SetLanguage(path, string(language)); err != nil {
			return err
		}
		fmt.Printf("language set to %s\n", language)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configLanguageCmd)
	rootCmd.AddCommand(configCmd)
}
