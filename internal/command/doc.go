// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package command defines the CLI surface for xmlcmp. It wires flags,
// metadata, and the action that launches the comparison view or the sample
// generator.
package command
