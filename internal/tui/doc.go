// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package tui implements the interactive comparison view: two file-open
// actions, a compare action, and a scrollable list of per-section panels
// showing both texts side by side with differing spans highlighted.
package tui
