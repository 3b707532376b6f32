// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/xmlcmp/xmlcmp/internal/config"
	"github.com/xmlcmp/xmlcmp/internal/log"
	"github.com/xmlcmp/xmlcmp/internal/samples"
	"github.com/xmlcmp/xmlcmp/internal/tui"
)

// compareAction is the root action. With --test it writes the two sample
// documents and exits; otherwise it launches the interactive comparison
// view, preselecting up to two XML files given as positional arguments.
func compareAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	config.Config.Namespace = "compare"

	if cmd.Bool("test") {
		paths, err := samples.Write(m.StartingDir)
		if err != nil {
			return err
		}
		for _, p := range paths {
			fmt.Printf("Created sample file %s\n", p)
		}
		fmt.Println()
		fmt.Println("Run xmlcmp again and compare sample1.xml with sample2.xml.")
		return nil
	}

	return tui.Run(cmd.Args().Get(0), cmd.Args().Get(1))
}
