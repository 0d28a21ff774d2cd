package main

import (
	"os"

	"github.com/raxe-ce/raxe-go/cmd/raxe-packtool/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
