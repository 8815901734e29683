package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	versuscmder "github.com/timscodebase/versus/cmd/versus"
)

func main() {
	// Best effort: a missing .env is fine, the environment may already be set.
	_ = godotenv.Load()

	cmd := versuscmder.NewVersusCmd()

	err := cmd.Execute()
	if err != nil {
		fmt.Printf("Error executing root command: %v\n", err)
		os.Exit(1)
	}
}
