package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/abhisek/kquiz/cmd"
)

func main() {
	// API keys may live in a local .env file.
	_ = godotenv.Load()

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
