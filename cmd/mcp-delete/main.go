package main

import (
	"os"

	"github.com/qpd-v/mcp-delete/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
