package main

import (
	"context"
	"io"
	"os"

	"github.com/reoring/exvalidate/internal/cli"
)

func main() {
	os.Exit(run(context.Background(), os.Stdout, os.Stderr, os.Args[1:]))
}

// run is main without the process exit, for tests.
func run(ctx context.Context, stdout, stderr io.Writer, args []string) int {
	return cli.Execute(ctx, stdout, stderr, args)
}
