package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/PrakritiSharma17/pii-guardian-pro-67/cmd/app/commands"
	"github.com/PrakritiSharma17/pii-guardian-pro-67/internal/app"
	"github.com/PrakritiSharma17/pii-guardian-pro-67/internal/config"
)

func getDocumentCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "process-file",
			Usage: "Detect and encrypt PII in a local file without persisting anything",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "file",
					Aliases:  []string{"i"},
					Required: true,
					Usage:    "Path of the file to process",
				},
				&cli.StringFlag{
					Name:    "tier",
					Aliases: []string{"t"},
					Value:   "",
					Usage:   "Scan tier: 'standard' or 'enhanced' (defaults to DEFAULT_TIER)",
				},
				&cli.StringFlag{
					Name:    "format",
					Aliases: []string{"f"},
					Value:   "text",
					Usage:   "Output format: 'text' or 'json'",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				tier := cmd.String("tier")
				if tier == "" {
					tier = cfg.DefaultTier
				}

				return commands.RunProcessFile(
					ctx,
					container.Pipeline(),
					container.KeyManager(),
					commands.DefaultIO().Writer,
					cmd.String("file"),
					tier,
					cmd.String("format"),
				)
			},
		},
		{
			Name:  "decrypt-file",
			Usage: "Restore a tokenized file using its exported document key",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "file",
					Aliases:  []string{"i"},
					Required: true,
					Usage:    "Path of the tokenized file to restore",
				},
				&cli.StringFlag{
					Name:     "key",
					Aliases:  []string{"k"},
					Required: true,
					Usage:    "Base64-encoded document key printed when the file was processed",
				},
				&cli.StringFlag{
					Name:    "format",
					Aliases: []string{"f"},
					Value:   "text",
					Usage:   "Output format: 'text' or 'json'",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				return commands.RunDecryptFile(
					ctx,
					container.Pipeline(),
					commands.DefaultIO().Writer,
					cmd.String("file"),
					cmd.String("key"),
					cmd.String("format"),
				)
			},
		},
	}
}
