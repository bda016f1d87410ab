package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/abderrahimghazali/vault-api/cmd/app/commands"
	"github.com/abderrahimghazali/vault-api/internal/app"
	"github.com/abderrahimghazali/vault-api/internal/config"
	cryptoService "github.com/abderrahimghazali/vault-api/internal/crypto/service"
)

func getKeyCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "create-encryption-key",
			Usage: "Generate a new 32-byte record encryption key",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "encoding",
					Aliases: []string{"e"},
					Value:   "base64",
					Usage:   "Key encoding: 'base64' or 'hex' (ignored with --kms-key-uri)",
				},
				&cli.StringFlag{
					Name:  "kms-key-uri",
					Value: "",
					Usage: "Wrap the key with this KMS key (e.g., gcpkms://projects/.../cryptoKeys/..., base64key://...)",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				return commands.RunCreateEncryptionKey(
					ctx,
					cryptoService.NewKMSService(),
					container.Logger(),
					commands.DefaultIO().Writer,
					cmd.String("encoding"),
					cmd.String("kms-key-uri"),
				)
			},
		},
	}
}
