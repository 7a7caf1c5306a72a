package main

import (
	"context"
	"fmt"
	"os"

	"todo-api/internal/cli"
)

func main() {
	root := cli.NewRootCommand(cli.DefaultStoreOpener, os.Stdout, os.Stderr)

	if err := root.Execute(context.Background(), os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", cli.NewErrorHandler().HandleSimple(err))
		os.Exit(1)
	}
}
