package registry

import (
	"strings"

	"golang.org/x/text/language"
)

// anyCountry marks a language module that is not tied to a region.
const anyCountry = "ANY"

// Language describes one supported language as reported by the registry.
type Language struct {
	ShortCode string
	Country   string
	Variant   string
	Name      string

	tag language.Tag
}

// ShortCodeWithCountryAndVariant returns the locale code of l, e.g. "en",
// "en-US" or "ca-ES-valencia".
func (l Language) ShortCodeWithCountryAndVariant() string {
	var b strings.Builder
	b.WriteString(l.ShortCode)
	if l.Country != "" && !strings.EqualFold(l.Country, anyCountry) {
		b.WriteByte('-')
		b.WriteString(l.Country)
	}
	if l.Variant != "" {
		b.WriteByte('-')
		b.WriteString(l.Variant)
	}
	return b.String()
}

// Tag returns the BCP 47 tag parsed when the registry was loaded. It is
// language.Und when the code contains a subtag x/text does not recognize.
func (l Language) Tag() language.Tag { return l.tag }

func (l Language) String() string { return l.ShortCodeWithCountryAndVariant() }
