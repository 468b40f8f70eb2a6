package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// NewCells builds the cells subcommand.
func NewCells(r *Root) *cobra.Command {
	return &cobra.Command{
		Use:   "cells [ROWS_FILE]",
		Short: "Print which cells of each row are editable",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := r.editor(cmd, args)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

			header := []string{"ROW", "TARGET"}
			for _, c := range e.Columns() {
				header = append(header, c.Title)
			}

			fmt.Fprintln(tw, strings.Join(header, "\t"))

			matrix := e.Matrix()

			for i, row := range e.Rows() {
				target := "-"
				if t := row.Target(); t != nil {
					target = fmt.Sprint(*t)
				}

				line := []string{fmt.Sprint(i + 1), target}
				for _, editable := range matrix[i] {
					line = append(line, access(editable))
				}

				fmt.Fprintln(tw, strings.Join(line, "\t"))
			}

			return tw.Flush()
		},
	}
}

func access(editable bool) string {
	if editable {
		return "rw"
	}

	return "ro"
}
