package main

import (
	"os"

	"github.com/manual-labs/quizflow/cmd/quizctl/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
