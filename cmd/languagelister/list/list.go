package list

import (
	"io"
	"os"

	"github.com/ltexplus/languagelister/internal/logging"
	"github.com/ltexplus/languagelister/internal/registry"
	"github.com/ltexplus/languagelister/internal/report"
)

const (
	exitOK      = 0
	exitFailure = 1
)

type loader func() (*registry.Registry, error)

// Run prints every supported language as "<code>;<name>". Arguments are
// ignored.
func Run(args []string) int {
	return run(os.Stdout, os.Stderr, registry.Default)
}

func run(stdout, stderr io.Writer, load loader) int {
	log := logging.New(stderr)

	reg, err := load()
	if err != nil {
		log.Errorf("%v", err)
		return exitFailure
	}

	if err := report.WriteLanguages(stdout, reg.Languages()); err != nil {
		log.Errorf("write languages: %v", err)
		return exitFailure
	}
	return exitOK
}
