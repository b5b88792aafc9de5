package report

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/ltexplus/languagelister/internal/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatLine(t *testing.T) {
	l := registry.Language{ShortCode: "en", Country: "US", Name: "English (US)"}
	assert.Equal(t, "en-US;English (US)", FormatLine(l))
}

func TestWriteLanguages(t *testing.T) {
	langs := []registry.Language{
		{ShortCode: "pt", Country: "PT", Name: "Portuguese (Portugal)"},
		{ShortCode: "ca", Country: "ES", Variant: "valencia", Name: "Catalan (Valencian)"},
		{ShortCode: "eo", Name: "Esperanto"},
		{ShortCode: "pt", Country: "MZ", Name: "Portuguese (Moçambique preAO)"},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteLanguages(&buf, langs))

	want := "pt-PT;Portuguese (Portugal)\n" +
		"ca-ES-valencia;Catalan (Valencian)\n" +
		"eo;Esperanto\n" +
		"pt-MZ;Portuguese (Moçambique preAO)\n"
	assert.Equal(t, want, buf.String())

	for _, line := range strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n") {
		assert.Equal(t, 1, strings.Count(line, Separator), line)
	}
}

func TestWriteLanguagesEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteLanguages(&buf, nil))
	assert.Zero(t, buf.Len())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("broken pipe") }

func TestWriteLanguagesError(t *testing.T) {
	langs := []registry.Language{{ShortCode: "en", Name: "English"}}
	err := WriteLanguages(failingWriter{}, langs)
	assert.EqualError(t, err, "broken pipe")
}
