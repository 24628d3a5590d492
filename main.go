package main

import (
	"os"

	"github.com/dompetku/backend/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
