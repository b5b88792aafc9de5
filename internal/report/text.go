// Package report renders the language list in the line format consumed by
// editor tooling: one "<code>;<name>" line per language.
package report

import (
	"bufio"
	"io"

	"github.com/ltexplus/languagelister/internal/registry"
)

// Separator sits between the locale code and the display name.
const Separator = ";"

// FormatLine returns the line for l without a trailing newline.
func FormatLine(l registry.Language) string {
	return l.ShortCodeWithCountryAndVariant() + Separator + l.Name
}

// WriteLanguages writes one line per language, in the given order.
func WriteLanguages(w io.Writer, langs []registry.Language) error {
	bw := bufio.NewWriter(w)
	for _, l := range langs {
		if _, err := bw.WriteString(FormatLine(l)); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
