package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewValidate builds the validate subcommand.
func NewValidate(r *Root) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [ROWS_FILE]",
		Short: "Validate a rows file and print the error report",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := r.editor(cmd, args)
			if err != nil {
				return err
			}

			rep := e.Report()
			rows := len(e.Rows())

			if rep.Len() == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "all %d rows are valid\n", rows)
				return nil
			}

			if err := rep.WriteTable(cmd.OutOrStdout()); err != nil {
				return err
			}

			return fmt.Errorf("%d of %d rows are invalid", rep.Len(), rows)
		},
	}
}
