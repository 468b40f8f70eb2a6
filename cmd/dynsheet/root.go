package main

import (
	"github.com/spf13/cobra"

	"dynsheet/internal/config"
	"dynsheet/internal/registry"
	"dynsheet/record"
	"dynsheet/sheet"
)

// Root holds the persistent flags shared by every subcommand.
type Root struct {
	Config    string
	Registry  string
	Lang      string
	FoldWidth bool
}

// NewRoot builds the dynsheet command tree.
func NewRoot() *cobra.Command {
	r := &Root{}

	cmd := &cobra.Command{
		Use:   "dynsheet",
		Short: "Validate rows whose column rules depend on their targetId",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Usage()
		},
	}

	cmd.CompletionOptions.HiddenDefaultCmd = true
	cmd.SilenceUsage = true

	f := cmd.PersistentFlags()
	f.StringVar(&r.Config, "config", "", "settings file (YAML)")
	f.StringVar(&r.Registry, "registry", "", "column table file; defaults to the embedded table")
	f.StringVar(&r.Lang, "lang", "", "message language (BCP 47 tag, e.g. en or ja)")
	f.BoolVar(&r.FoldWidth, "fold-width", false, "fold full-width digits before numeric parsing")

	cmd.AddCommand(NewValidate(r), NewCells(r), NewRegistry(r))

	return cmd
}

// settings merges the settings file with the flags set on the command line.
func (r *Root) settings(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()

	if r.Config != "" {
		loaded, err := config.LoadFile(r.Config)
		if err != nil {
			return config.Config{}, err
		}

		cfg = loaded
	}

	flags := cmd.Flags()

	if flags.Changed("registry") {
		cfg.Registry = r.Registry
	}

	if flags.Changed("lang") {
		cfg.Language = r.Lang
	}

	if flags.Changed("fold-width") {
		cfg.FoldWidth = r.FoldWidth
	}

	return cfg, nil
}

// registry loads the column table selected by the settings.
func (r *Root) registry(cmd *cobra.Command) (*registry.Registry, config.Config, error) {
	cfg, err := r.settings(cmd)
	if err != nil {
		return nil, config.Config{}, err
	}

	if cfg.Registry == "" {
		return registry.Default(), cfg, nil
	}

	reg, err := registry.LoadFile(cfg.Registry)
	if err != nil {
		return nil, config.Config{}, err
	}

	return reg, cfg, nil
}

// editor builds an editor over the rows in args[0], or the configured seed
// when no file is given.
func (r *Root) editor(cmd *cobra.Command, args []string) (*sheet.Editor, error) {
	cfg, err := r.settings(cmd)
	if err != nil {
		return nil, err
	}

	opts := []sheet.Option{sheet.WithConfig(cfg)}

	if len(args) > 0 {
		rows, err := record.LoadFile(args[0])
		if err != nil {
			return nil, err
		}

		opts = append(opts, sheet.WithSeed(rows))
	}

	return sheet.New(opts...)
}
