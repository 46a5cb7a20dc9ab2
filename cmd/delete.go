package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Soft-delete a registration",
	Long: `Mark a registration as deleted. The entry stays in the register with
its deletion timestamp and keeps showing up in listings, marked as deleted.
There is no undelete and no hard delete.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		service, cleanup, err := openRegistry()
		if err != nil {
			return err
		}
		defer cleanup()

		if err := service.SoftDelete(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Printf("deleted %s\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
