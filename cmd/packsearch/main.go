package main

import (
	"os"

	"github.com/packslist/packsearch/cmd/packsearch/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
