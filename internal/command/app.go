// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/xmlcmp/xmlcmp/internal/config"
	"github.com/xmlcmp/xmlcmp/internal/meta"
)

func InitApp(ctx context.Context, args []string) (*cli.Command, error) {
	sd, _ := os.Getwd()

	// Missing config is fine; the defaults cover everything.
	cfg, _ := config.Load() //nolint
	m := meta.Meta{
		Args:        args,
		Config:      cfg,
		Context:     ctx,
		StartingDir: sd,
	}

	app := &cli.Command{
		Name:      "xmlcmp",
		Usage:     "compare the sections of two XML documents",
		UsageText: "xmlcmp [options] [XML1 [XML2]]",
		Metadata: map[string]any{
			"meta": m,
		},
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "test",
				Usage: "write sample1.xml and sample2.xml to the current directory and exit",
				Value: false,
			},
			&cli.BoolFlag{
				Name:        "version",
				Aliases:     []string{"v"},
				Usage:       "xmlcmp version info",
				HideDefault: true,
			},
		},
		Action: compareAction,
	}

	return app, nil
}

// GetMeta returns the Meta from cli.Command metadata.
func GetMeta(cmd *cli.Command) meta.Meta {
	return cmd.Metadata["meta"].(meta.Meta)
}
