package main

import (
	"os"

	"github.com/systemstart/toy-components/pkg/cli"
)

func main() {
	os.Exit(cli.Main(cli.RunCatalog))
}
