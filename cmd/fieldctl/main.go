// Command fieldctl inspects and validates materialfield style files.
package main

import (
	"os"

	"github.com/go-drift/materialfield/cmd/fieldctl/cmd"
)

func main() {
	if err := cmd.Execute(cmd.New()); err != nil {
		os.Exit(1)
	}
}
