// Package registry holds the set of languages the grammar checker supports.
//
// The registry is built once from YAML language-definition resources (see
// package languages). Each file describes one language module; the registry
// reports the modules in file-name order and the descriptors of a module in
// the order they appear in its file.
package registry

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"sync"

	"github.com/ltexplus/languagelister/internal/logging"
	"github.com/ltexplus/languagelister/languages"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
	"gopkg.in/yaml.v3"
)

var (
	ErrNoDefinitions    = errors.New("no language definitions found")
	ErrMissingShortCode = errors.New("language without short_code")
	ErrDuplicateCode    = errors.New("duplicate language code")
	ErrMultilineName    = errors.New("language name spans several lines")
)

// InitError reports why the registry could not be initialized.
type InitError struct {
	File string
	Err  error
}

func (e *InitError) Error() string {
	if e.File == "" {
		return "init language registry: " + e.Err.Error()
	}
	return fmt.Sprintf("init language registry: %s: %v", e.File, e.Err)
}

func (e *InitError) Unwrap() error { return e.Err }

// Registry is an immutable, ordered list of languages.
type Registry struct {
	langs []Language
}

// rawModule mirrors one languages/*.yaml file.
type rawModule struct {
	Module    string        `yaml:"module"`
	Languages []rawLanguage `yaml:"languages"`
}

type rawLanguage struct {
	ShortCode string `yaml:"short_code"`
	Country   string `yaml:"country"`
	Variant   string `yaml:"variant"`
	Name      string `yaml:"name"`
}

var loadDefault = sync.OnceValues(func() (*Registry, error) {
	return Load(languages.FS)
})

// Default returns the registry built from the embedded definitions. The
// result is computed on first use and shared afterwards.
func Default() (*Registry, error) {
	return loadDefault()
}

// Load builds a registry from every *.yaml file at the root of fsys.
func Load(fsys fs.FS) (*Registry, error) {
	files, err := fs.Glob(fsys, "*.yaml")
	if err != nil {
		return nil, &InitError{Err: err}
	}
	if len(files) == 0 {
		return nil, &InitError{Err: ErrNoDefinitions}
	}

	r := &Registry{}
	seen := make(map[string]bool)
	for _, file := range files {
		if err := r.loadFile(fsys, file, seen); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func (r *Registry) loadFile(fsys fs.FS, file string, seen map[string]bool) error {
	data, err := fs.ReadFile(fsys, file)
	if err != nil {
		return &InitError{File: file, Err: err}
	}

	var raw rawModule
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return &InitError{File: file, Err: fmt.Errorf("parse: %w", err)}
	}
	if len(raw.Languages) == 0 {
		logging.Warnf("%s: module %q declares no languages", file, raw.Module)
	}

	for i, rl := range raw.Languages {
		lang, err := newLanguage(rl)
		if err != nil {
			return &InitError{File: file, Err: fmt.Errorf("languages[%d]: %w", i, err)}
		}
		key := strings.ToLower(lang.ShortCodeWithCountryAndVariant())
		if seen[key] {
			return &InitError{File: file, Err: fmt.Errorf("%w %q", ErrDuplicateCode, lang.ShortCodeWithCountryAndVariant())}
		}
		seen[key] = true
		r.langs = append(r.langs, lang)
	}
	return nil
}

func newLanguage(rl rawLanguage) (Language, error) {
	lang := Language{
		ShortCode: strings.TrimSpace(rl.ShortCode),
		Country:   strings.TrimSpace(rl.Country),
		Variant:   strings.TrimSpace(rl.Variant),
		Name:      strings.TrimSpace(rl.Name),
	}
	if lang.ShortCode == "" {
		return Language{}, ErrMissingShortCode
	}
	// Each descriptor is printed as exactly one line.
	if strings.ContainsAny(lang.Name, "\r\n") {
		return Language{}, fmt.Errorf("%w: %q", ErrMultilineName, lang.Name)
	}

	code := lang.ShortCodeWithCountryAndVariant()
	tag, err := language.Parse(code)
	if err != nil {
		// Well-formed tags with subtags x/text does not know are fine, but
		// the partially parsed tag would misdescribe them.
		var verr language.ValueError
		if !errors.As(err, &verr) {
			return Language{}, fmt.Errorf("invalid code %q: %w", code, err)
		}
		tag = language.Und
	}
	lang.tag = tag

	if lang.Name == "" {
		if tag != language.Und {
			lang.Name = display.English.Tags().Name(tag)
		}
		if lang.Name == "" {
			lang.Name = code
		}
	}
	return lang, nil
}

// Languages returns a copy of all languages in registry order.
func (r *Registry) Languages() []Language {
	out := make([]Language, len(r.langs))
	copy(out, r.langs)
	return out
}

// Len returns the number of languages.
func (r *Registry) Len() int { return len(r.langs) }
