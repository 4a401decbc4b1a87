package main

import (
	"log"

	"github.com/HasanAboShally/dayma/internal/cli/commands"
	"github.com/HasanAboShally/dayma/internal/core/domain"
)

func main() {
	if err := domain.ValidateCatalog(); err != nil {
		log.Fatalf("catalog validation failed: %v", err)
	}

	if err := commands.New().Execute(); err != nil {
		log.Fatalf("error during command execution: %v", err)
	}
}
