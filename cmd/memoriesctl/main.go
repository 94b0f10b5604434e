// Command memoriesctl provisions accounts and key material for memorylane.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/urfave/cli/v2"
)

func newApp() *cli.App {
	return &cli.App{
		Name:  "memoriesctl",
		Usage: "Administer a memorylane deployment",
		Commands: []*cli.Command{
			hashCmd(),
			userCmd(),
			secretCmd(),
			keygenCmd(),
		},
	}
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := newApp().RunContext(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "memoriesctl:", err)
		cancel()
		os.Exit(1)
	}
}
