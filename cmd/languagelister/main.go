package main

import (
	"os"

	"github.com/ltexplus/languagelister/cmd/languagelister/list"
)

func main() {
	os.Exit(list.Run(os.Args[1:]))
}
