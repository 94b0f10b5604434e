package main

import (
	"fmt"

	"github.com/aussiebroadwan/memorylane/pkg/cryptox"
	"github.com/urfave/cli/v2"
)

func hashCmd() *cli.Command {
	var (
		scheme     string
		workFactor int
		fromStdin  bool
	)
	return &cli.Command{
		Name:  "hash",
		Usage: "Hash a password for storage (read without echo, or from stdin)",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "scheme",
				Usage:       "argon2id or bcrypt",
				Value:       string(cryptox.SchemeArgon2id),
				Destination: &scheme,
			},
			&cli.IntFlag{
				Name:        "work-factor",
				Aliases:     []string{"w"},
				Usage:       "argon2id iterations or bcrypt cost; 0 selects the scheme default",
				Destination: &workFactor,
			},
			&cli.BoolFlag{
				Name:        "password-stdin",
				Usage:       "read the password from stdin even on a terminal",
				Destination: &fromStdin,
			},
		},
		Action: func(c *cli.Context) error {
			hasher, err := cryptox.NewPasswordHasher(cryptox.Scheme(scheme), workFactor)
			if err != nil {
				return err
			}

			password, err := readSecret(c, "Password: ", fromStdin)
			if err != nil {
				return err
			}

			hash, err := hasher.Hash(password)
			if err != nil {
				return err
			}
			fmt.Fprintln(c.App.Writer, hash)
			return nil
		},
	}
}
