package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/abderrahimghazali/vault-api/cmd/app/commands"
	"github.com/abderrahimghazali/vault-api/internal/app"
	"github.com/abderrahimghazali/vault-api/internal/config"
	vaultDomain "github.com/abderrahimghazali/vault-api/internal/vault/domain"
)

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Value:   "text",
		Usage:   "Output format: 'text', 'json' or 'yaml'",
	}
}

// withVaultUseCase loads configuration, validates it and hands the vault use case to fn.
func withVaultUseCase(
	ctx context.Context,
	fn func(container *app.Container) error,
) error {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return err
	}

	container := app.NewContainer(cfg)
	defer func() { _ = container.Shutdown(ctx) }()

	return fn(container)
}

func getVaultCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "encrypt",
			Usage: "Embed, encrypt and store a text",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "text",
					Aliases:  []string{"t"},
					Required: true,
					Usage:    "Text to store",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return withVaultUseCase(ctx, func(container *app.Container) error {
					useCase, err := container.VaultUseCase()
					if err != nil {
						return err
					}
					return commands.RunEncrypt(
						ctx,
						useCase,
						container.Logger(),
						commands.DefaultIO().Writer,
						cmd.String("text"),
						cmd.String("format"),
					)
				})
			},
		},
		{
			Name:  "decrypt",
			Usage: "Decrypt a stored record by id",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "id",
					Aliases:  []string{"i"},
					Required: true,
					Usage:    "Record ID (UUID)",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return withVaultUseCase(ctx, func(container *app.Container) error {
					useCase, err := container.VaultUseCase()
					if err != nil {
						return err
					}
					return commands.RunDecrypt(
						ctx,
						useCase,
						container.Logger(),
						commands.DefaultIO().Writer,
						cmd.String("id"),
						cmd.String("format"),
					)
				})
			},
		},
		{
			Name:  "search",
			Usage: "Find stored records semantically similar to a text",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "text",
					Aliases:  []string{"t"},
					Required: true,
					Usage:    "Query text",
				},
				&cli.IntFlag{
					Name:    "limit",
					Aliases: []string{"l"},
					Value:   vaultDomain.DefaultSearchLimit,
					Usage:   "Maximum number of results",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return withVaultUseCase(ctx, func(container *app.Container) error {
					useCase, err := container.VaultUseCase()
					if err != nil {
						return err
					}
					return commands.RunSearch(
						ctx,
						useCase,
						container.Logger(),
						commands.DefaultIO().Writer,
						cmd.String("text"),
						int(cmd.Int("limit")),
						cmd.String("format"),
					)
				})
			},
		},
	}
}
