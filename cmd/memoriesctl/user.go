package main

import (
	"errors"
	"fmt"

	"github.com/aussiebroadwan/memorylane/internal/memories/app"
	"github.com/aussiebroadwan/memorylane/internal/memories/service"
	"github.com/aussiebroadwan/memorylane/pkg/cryptox"
	"github.com/aussiebroadwan/memorylane/pkg/idx"
	"github.com/aussiebroadwan/memorylane/pkg/slogx"
	"github.com/urfave/cli/v2"
)

func userCmd() *cli.Command {
	var svc *service.UserService

	return &cli.Command{
		Name:  "user",
		Usage: "Manage stored accounts in the store configured by STORE_DRIVER",
		Before: func(c *cli.Context) error {
			cfg := app.LoadConfig()
			logger := slogx.New(slogx.Config{
				Service: "memoriesctl",
				Version: app.BuildVersion,
				Env:     cfg.Env,
				Level:   "warn",
				Format:  "text",
				Output:  c.App.ErrWriter,
			})

			hasher, err := cryptox.NewPasswordHasher(cryptox.Scheme(cfg.PasswordScheme), cfg.PasswordWorkFactor)
			if err != nil {
				return err
			}
			st, err := app.OpenStore(c.Context, cfg, logger)
			if err != nil {
				return err
			}

			svc = &service.UserService{Store: st, Hasher: hasher}
			return nil
		},
		After: func(*cli.Context) error {
			if svc == nil {
				return nil
			}
			return svc.Store.Close()
		},
		Subcommands: []*cli.Command{
			userAddCmd(&svc),
			userShowCmd(&svc),
		},
	}
}

func userAddCmd(svc **service.UserService) *cli.Command {
	var (
		in        service.CreateUserInput
		fromStdin bool
	)
	return &cli.Command{
		Name:  "add",
		Usage: "Provision an account (password read without echo, or from stdin)",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "username",
				Aliases:     []string{"u"},
				Usage:       "login name, usually an email address",
				Required:    true,
				Destination: &in.Username,
			},
			&cli.StringFlag{
				Name:        "name",
				Usage:       "display name",
				Required:    true,
				Destination: &in.Name,
			},
			&cli.StringFlag{
				Name:        "email",
				Usage:       "contact email; defaults to the username when it is one",
				Destination: &in.Email,
			},
			&cli.StringFlag{
				Name:        "role",
				Usage:       "user or admin",
				Value:       "user",
				Destination: &in.Role,
			},
			&cli.BoolFlag{
				Name:        "inactive",
				Usage:       "create the account disabled",
				Destination: &in.Inactive,
			},
			&cli.BoolFlag{
				Name:        "password-stdin",
				Usage:       "read the password from stdin even on a terminal",
				Destination: &fromStdin,
			},
		},
		Action: func(c *cli.Context) error {
			password, err := readSecret(c, "Password: ", fromStdin)
			if err != nil {
				return err
			}
			in.Password = password

			u, err := (*svc).CreateUser(c.Context, in)
			if err != nil {
				return err
			}
			fmt.Fprintf(c.App.Writer, "created %s (%s) id=%s\n", u.Username, u.Role, u.ID)
			return nil
		},
	}
}

func userShowCmd(svc **service.UserService) *cli.Command {
	return &cli.Command{
		Name:      "show",
		Usage:     "Print an account by id",
		ArgsUsage: "<id>",
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return errors.New("expected exactly one user id")
			}

			id, err := idx.Parse(c.Args().First())
			if err != nil {
				return fmt.Errorf("%q is not a user id: %w", c.Args().First(), err)
			}

			u, err := (*svc).GetUserByID(c.Context, id.String())
			if err != nil {
				return err
			}

			lastLogin := "never"
			if u.LastLoginAt != nil {
				lastLogin = u.LastLoginAt.Format("2006-01-02T15:04:05Z07:00")
			}
			fmt.Fprintf(c.App.Writer, "id:         %s\nusername:   %s\nname:       %s\nemail:      %s\nrole:       %s\nactive:     %t\nlast login: %s\n",
				u.ID, u.Username, u.Name, u.Email, u.Role, u.IsActive, lastLogin)
			return nil
		},
	}
}
