package main

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"dynsheet/internal/messages"
	"dynsheet/internal/registry"
	"dynsheet/internal/schema"
)

// RegistryFlags are the flags of the registry subcommand.
type RegistryFlags struct {
	YAML bool
	Dump bool
}

// NewRegistry builds the registry subcommand.
func NewRegistry(r *Root) *cobra.Command {
	flags := &RegistryFlags{}

	cmd := &cobra.Command{
		Use:   "registry",
		Short: "Lint the column table, or print it with --yaml or --dump",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			reg, cfg, err := r.registry(cmd)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()

			switch {
			case flags.YAML:
				data, err := registry.Marshal(reg)
				if err != nil {
					return err
				}

				_, err = out.Write(data)

				return err
			case flags.Dump:
				spew.Fdump(out, reg.Targets())
				return nil
			}

			p, err := messages.Parse(cfg.Language)
			if err != nil {
				return err
			}

			res := reg.Lint()
			res.Merge(*schema.CheckDefaults(reg, schema.Options{FoldWidth: cfg.FoldWidth, Printer: p}))

			for _, d := range res.All() {
				fmt.Fprintf(out, "%s: %s\n", d.Severity, d)
			}

			fmt.Fprintf(out, "%d targets, %d errors, %d warnings, %d infos\n",
				len(reg.TargetIDs()), len(res.Errors), len(res.Warnings), len(res.Infos))

			return nil
		},
	}

	cmd.Flags().BoolVar(&flags.YAML, "yaml", false, "print the table as YAML")
	cmd.Flags().BoolVar(&flags.Dump, "dump", false, "print the parsed table structure")

	return cmd
}
