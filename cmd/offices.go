package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/akontos/protokolo/internal/registry/domain"
)

var officesCmd = &cobra.Command{
	Use:   "offices",
	Short: "List the office keys accepted by --office",
	RunE: func(cmd *cobra.Command, _ []string) error {
		catalog := labels()
		keyStyle := lipgloss.NewStyle().Bold(true)
		for _, office := range domain.Offices() {
			key := string(office)
			fmt.Printf("%s  %s\n", keyStyle.Render(fmt.Sprintf("%-20s", key)), catalog.Label("office."+key))
		}
		return nil
	},
}

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List the category keys accepted by --category",
	RunE: func(cmd *cobra.Command, _ []string) error {
		catalog := labels()
		keyStyle := lipgloss.NewStyle().Bold(true)
		for _, category := range domain.Categories() {
			key := category.Key()
			fmt.Printf("%s  %s\n", keyStyle.Render(fmt.Sprintf("%-24s", key)), catalog.Label("category."+key))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(officesCmd)
	rootCmd.AddCommand(categoriesCmd)
}
