package main

import (
	"os"

	"github.com/b-harvest/txdriver/cmd/txdriver/cmd"
)

func main() {
	if err := cmd.RootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
