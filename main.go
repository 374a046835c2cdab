package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/thenoetrevino/tarea/cmd"
	"github.com/thenoetrevino/tarea/internal/cli"
)

func main() {
	err := cmd.Execute(context.Background())

	// Command failures have already been reported by the output formatter
	var exitErr *cli.ExitCodeError
	if err != nil && !errors.As(err, &exitErr) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}

	os.Exit(cli.ExitCode(err))
}
