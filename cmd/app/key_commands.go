package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/PrakritiSharma17/pii-guardian-pro-67/cmd/app/commands"
	cryptoService "github.com/PrakritiSharma17/pii-guardian-pro-67/internal/crypto/service"
)

func getKeyCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "create-wrap-key",
			Usage: "Generate the wrap key configuration for sealing stored document keys",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "kms-provider",
					Value: "",
					Usage: "KMS provider (localsecrets, gcpkms, awskms, hashivault); omit for a local wrap key",
				},
				&cli.StringFlag{
					Name:  "kms-key-uri",
					Value: "",
					Usage: "KMS key URI (e.g., base64key://, hashivault://keyname)",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return commands.RunCreateWrapKey(
					ctx,
					cryptoService.NewKMSService(),
					commands.DefaultIO().Writer,
					cmd.String("kms-provider"),
					cmd.String("kms-key-uri"),
				)
			},
		},
	}
}
