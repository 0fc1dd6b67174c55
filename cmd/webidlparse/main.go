// Command webidlparse parses Web IDL source files and prints their AST.
package main

import (
	"log/slog"
	"os"
)

func main() {
	if err := NewRootCmd().Execute(); err != nil {
		slog.Error("webidlparse failed", "error", err)
		os.Exit(1)
	}
}
