package main

import (
	"context"
	"fmt"
	"os"

	"github.com/task-journal/journal/internal/cli"
)

func main() {
	if err := cli.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "journal: %v\n", err)
		os.Exit(1)
	}
}
