// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package xmldoc loads an XML document and reduces each top-level child of
// the root element to a section: the child's tag plus all text content found
// beneath it, flattened to a single space-joined string.
package xmldoc
