// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package differ

import (
	"znkr.io/diff"

	"github.com/xmlcmp/xmlcmp/internal/log"
	"github.com/xmlcmp/xmlcmp/internal/xmldoc"
)

// Span is a half-open rune index range [Start, End) within one side's text
// marking a region that differs from the other side.
type Span struct {
	Start int
	End   int
}

// Pair is one positional section pairing with the differing spans of each
// side. Index is zero-based.
type Pair struct {
	Index      int
	Left       xmldoc.Section
	Right      xmldoc.Section
	LeftSpans  []Span
	RightSpans []Span
}

// Compare diffs two texts character by character and returns the differing
// spans of each side. Runs of deleted characters become spans in the first
// list, runs of inserted characters become spans in the second; a replacement
// yields a span on both sides. Matching regions emit nothing, so two equal
// strings return two empty lists. Span lists are sorted by start position and
// non-overlapping. Alignment ambiguity is resolved however the underlying
// engine resolves it.
func Compare(a, b string) (left, right []Span) {
	edits := diff.Edits([]rune(a), []rune(b))

	var x, y int
	for _, e := range edits {
		switch e.Op {
		case diff.Match:
			x++
			y++
		case diff.Delete:
			if n := len(left); n > 0 && left[n-1].End == x {
				left[n-1].End++
			} else {
				left = append(left, Span{Start: x, End: x + 1})
			}
			x++
		case diff.Insert:
			if n := len(right); n > 0 && right[n-1].End == y {
				right[n-1].End++
			} else {
				right = append(right, Span{Start: y, End: y + 1})
			}
			y++
		}
	}

	return left, right
}

// PairDocuments aligns two documents positionally, padding the shorter one
// with placeholder sections, and diffs the text of every pair. Section i of
// the left document is always compared against section i of the right one,
// tag names notwithstanding.
func PairDocuments(left, right []xmldoc.Section) []Pair {
	n := max(len(left), len(right))
	log.Debugf("pairing %d/%d sections into %d pairs", len(left), len(right), n)

	pairs := make([]Pair, 0, n)
	for i := range n {
		p := Pair{Index: i, Left: xmldoc.Placeholder(), Right: xmldoc.Placeholder()}
		if i < len(left) {
			p.Left = left[i]
		}
		if i < len(right) {
			p.Right = right[i]
		}
		p.LeftSpans, p.RightSpans = Compare(p.Left.Text, p.Right.Text)
		pairs = append(pairs, p)
	}

	return pairs
}
