// Package messages holds the localized texts of validation failures.
//
// English is the fallback; Japanese is the wording of the sheet's first
// users. Bounds are passed pre-formatted so the printer does not apply
// locale digit grouping to them.
package messages

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Keys of the catalog entries. Every entry takes the field label as %[1]s.
const (
	Required = "required"     // label
	Between  = "between"      // label, min, max
	AtLeast  = "at-least"     // label, min
	AtMost   = "at-most"      // label, max
	Numeric  = "must-numeric" // label
)

var cat = catalog.NewBuilder(catalog.Fallback(language.English))

func init() {
	entries := map[language.Tag]map[string]string{
		language.English: {
			Required: "%[1]s: required",
			Between:  "%[1]s: must be between %[2]s and %[3]s",
			AtLeast:  "%[1]s: must be at least %[2]s",
			AtMost:   "%[1]s: must be at most %[2]s",
			Numeric:  "%[1]s: must be numeric",
		},
		language.Japanese: {
			Required: "%[1]s: 必須です",
			Between:  "%[1]s: %[2]s〜%[3]sの範囲で入力してください",
			AtLeast:  "%[1]s: %[2]s以上で入力してください",
			AtMost:   "%[1]s: %[2]s以下で入力してください",
			Numeric:  "%[1]s: 数値で入力してください",
		},
	}

	for tag, msgs := range entries {
		for key, msg := range msgs {
			if err := cat.SetString(tag, key, msg); err != nil {
				panic(fmt.Sprintf("messages: %s/%s: %v", tag, key, err))
			}
		}
	}
}

// Languages returns the tags the catalog has texts for.
func Languages() []language.Tag {
	return cat.Languages()
}

// Printer renders catalog entries for one language.
type Printer struct {
	tag language.Tag
	p   *message.Printer
}

// NewPrinter returns a printer for the closest supported language;
// unsupported tags fall back to English.
func NewPrinter(tag language.Tag) *Printer {
	supported := cat.Languages()

	_, idx, conf := language.NewMatcher(supported).Match(tag)
	resolved := language.English
	if conf != language.No {
		resolved = supported[idx]
	}

	return &Printer{tag: resolved, p: message.NewPrinter(resolved, message.Catalog(cat))}
}

// Parse is NewPrinter for a BCP 47 string such as "ja" or "en-US".
// An empty string selects English.
func Parse(lang string) (*Printer, error) {
	if lang == "" {
		return NewPrinter(language.English), nil
	}

	tag, err := language.Parse(lang)
	if err != nil {
		return nil, fmt.Errorf("invalid language %q: %w", lang, err)
	}

	return NewPrinter(tag), nil
}

// Default returns the English printer.
func Default() *Printer {
	return NewPrinter(language.English)
}

// Language reports the language the printer resolved to.
func (p *Printer) Language() language.Tag {
	return p.tag
}

// Sprintf renders the entry key with args.
func (p *Printer) Sprintf(key string, args ...any) string {
	return p.p.Sprintf(key, args...)
}
