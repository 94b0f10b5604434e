package main

import (
	"fmt"
	"os"

	"github.com/aussiebroadwan/memorylane/pkg/cryptox"
	"github.com/urfave/cli/v2"
)

func secretCmd() *cli.Command {
	return &cli.Command{
		Name:  "secret",
		Usage: "Print a random 512-bit base64url secret for AUTH_SIGNING_SECRET",
		Action: func(c *cli.Context) error {
			secret, err := cryptox.GenerateToken(cryptox.TokenSize512)
			if err != nil {
				return err
			}
			fmt.Fprintln(c.App.Writer, secret)
			return nil
		},
	}
}

func keygenCmd() *cli.Command {
	var (
		masterKey string
		out       string
	)
	return &cli.Command{
		Name:  "keygen",
		Usage: "Generate an Ed25519 PKCS8 PEM key for AUTH_SIGNING_KEY_FILE",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "master-key",
				Usage:       "seal the key with the master key in this file (see AUTH_MASTER_KEY_PATH)",
				Destination: &masterKey,
			},
			&cli.StringFlag{
				Name:        "out",
				Aliases:     []string{"o"},
				Usage:       "write the key to this file (mode 0600) instead of stdout",
				Destination: &out,
			},
		},
		Action: func(c *cli.Context) error {
			key, err := cryptox.GenerateEd25519Key()
			if err != nil {
				return err
			}

			if masterKey != "" {
				sealer, err := cryptox.LoadKeySealer(masterKey)
				if err != nil {
					return err
				}
				if key, err = sealer.Seal(key); err != nil {
					return err
				}
			}

			if out == "" {
				_, err = c.App.Writer.Write(key)
				return err
			}
			if err := os.WriteFile(out, key, 0o600); err != nil {
				return fmt.Errorf("write key: %w", err)
			}
			fmt.Fprintln(c.App.ErrWriter, "wrote", out)
			return nil
		},
	}
}
