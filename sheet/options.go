package sheet

import (
	"log"
	"os"

	"dynsheet/internal/config"
	"dynsheet/internal/messages"
	"dynsheet/internal/registry"
	"dynsheet/internal/validate"
	"dynsheet/record"
)

type settings struct {
	reg       *registry.Registry
	seed      []record.Row
	logger    validate.Logger
	printer   *messages.Printer
	foldWidth bool
	err       error
}

func defaultSettings() *settings {
	return &settings{
		logger:  log.New(os.Stderr, config.DefaultLogPrefix, log.LstdFlags),
		printer: messages.Default(),
	}
}

func (s *settings) fail(err error) {
	if s.err == nil {
		s.err = err
	}
}

// Option configures an Editor. Options apply in order, so later ones win.
type Option func(*settings)

// WithRegistry replaces the embedded column table.
func WithRegistry(reg *registry.Registry) Option {
	return func(s *settings) {
		s.reg = reg
	}
}

// WithSeed replaces the built-in dataset loaded at start and by Reset.
func WithSeed(rows []record.Row) Option {
	return func(s *settings) {
		s.seed = record.CloneAll(rows)
	}
}

// WithLogger sets the sink for internal validation faults.
func WithLogger(l validate.Logger) Option {
	return func(s *settings) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithLanguage selects the message language by BCP 47 tag.
func WithLanguage(lang string) Option {
	return func(s *settings) {
		p, err := messages.Parse(lang)
		if err != nil {
			s.fail(err)
			return
		}

		s.printer = p
	}
}

// WithFoldWidth enables folding full-width digits before numeric parsing.
func WithFoldWidth(on bool) Option {
	return func(s *settings) {
		s.foldWidth = on
	}
}

// WithConfig applies a settings file: it loads the referenced column table
// and seed rows and sets language, width folding and the log prefix.
func WithConfig(cfg config.Config) Option {
	return func(s *settings) {
		if cfg.Registry != "" {
			reg, err := registry.LoadFile(cfg.Registry)
			if err != nil {
				s.fail(err)
				return
			}

			s.reg = reg
		}

		if cfg.Seed != "" {
			rows, err := record.LoadFile(cfg.Seed)
			if err != nil {
				s.fail(err)
				return
			}

			s.seed = rows
		}

		WithLanguage(cfg.Language)(s)

		s.foldWidth = cfg.FoldWidth
		s.logger = log.New(os.Stderr, cfg.Prefix(), log.LstdFlags)
	}
}
