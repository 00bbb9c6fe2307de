// Command digest prints the fingerprints of files or strings in the order they were given.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "digest: %v\n", err)
		stop()
		os.Exit(1)
	}
}
