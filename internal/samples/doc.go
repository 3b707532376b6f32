// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package samples generates the two built-in sample XML documents used to
// try out the comparison view without real input files.
package samples
