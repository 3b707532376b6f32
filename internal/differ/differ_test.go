// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package differ

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xmlcmp/xmlcmp/internal/xmldoc"
)

func TestCompareEqual(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{name: "empty", text: ""},
		{name: "ascii", text: "identical text"},
		{name: "multibyte", text: "同一のテキスト"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			left, right := Compare(tt.text, tt.text)
			assert.Empty(t, left)
			assert.Empty(t, right)
		})
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name  string
		a     string
		b     string
		left  []Span
		right []Span
	}{
		{
			name:  "single insertion",
			a:     "abc",
			b:     "abXc",
			left:  nil,
			right: []Span{{Start: 2, End: 3}},
		},
		{
			name:  "single deletion",
			a:     "abXc",
			b:     "abc",
			left:  []Span{{Start: 2, End: 3}},
			right: nil,
		},
		{
			name:  "replacement marks both sides",
			a:     "abcdef",
			b:     "abZdef",
			left:  []Span{{Start: 2, End: 3}},
			right: []Span{{Start: 2, End: 3}},
		},
		{
			name:  "two separated replacements",
			a:     "abcdef",
			b:     "aXcdYf",
			left:  []Span{{Start: 1, End: 2}, {Start: 4, End: 5}},
			right: []Span{{Start: 1, End: 2}, {Start: 4, End: 5}},
		},
		{
			name:  "everything deleted",
			a:     "abc",
			b:     "",
			left:  []Span{{Start: 0, End: 3}},
			right: nil,
		},
		{
			name:  "everything inserted",
			a:     "",
			b:     "abc",
			left:  nil,
			right: []Span{{Start: 0, End: 3}},
		},
		{
			name:  "spans are rune indexed",
			a:     "日本語",
			b:     "日本誤",
			left:  []Span{{Start: 2, End: 3}},
			right: []Span{{Start: 2, End: 3}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			left, right := Compare(tt.a, tt.b)
			assert.Equal(t, tt.left, left)
			assert.Equal(t, tt.right, right)
		})
	}
}

// TestCompareInvariants checks the structural guarantees of the span lists:
// sorted by start, non-overlapping, in bounds, and with the characters
// outside all spans forming equal matched sequences on both sides.
func TestCompareInvariants(t *testing.T) {
	tests := []struct{ a, b string }{
		{"the quick brown fox", "the quiet brown cat"},
		{"abcabcabc", "abcbcabca"},
		{"", "something"},
		{"short", "a much longer replacement text"},
		{"日本語のテキスト", "日本語訳のテクスト"},
	}

	checkSpans := func(t *testing.T, spans []Span, n int) {
		prev := 0
		for _, s := range spans {
			require.Less(t, s.Start, s.End, "span must be non-empty")
			require.GreaterOrEqual(t, s.Start, prev, "spans must be sorted and non-overlapping")
			require.LessOrEqual(t, s.End, n, "span must stay in bounds")
			prev = s.End
		}
	}

	unmarked := func(text string, spans []Span) string {
		runes := []rune(text)
		var out []rune
		si := 0
		for i, r := range runes {
			for si < len(spans) && spans[si].End <= i {
				si++
			}
			if si < len(spans) && spans[si].Start <= i {
				continue
			}
			out = append(out, r)
		}
		return string(out)
	}

	for _, tt := range tests {
		t.Run(tt.a+"_vs_"+tt.b, func(t *testing.T) {
			left, right := Compare(tt.a, tt.b)
			checkSpans(t, left, len([]rune(tt.a)))
			checkSpans(t, right, len([]rune(tt.b)))
			assert.Equal(t, unmarked(tt.a, left), unmarked(tt.b, right),
				"characters outside spans must be the matched blocks of both sides")
		})
	}
}

func TestPairDocuments(t *testing.T) {
	left := []xmldoc.Section{
		{Tag: "introduction", Text: "hello there"},
		{Tag: "main", Text: "body text"},
		{Tag: "conclusion", Text: "the end"},
		{Tag: "appendix", Text: "extra"},
	}
	right := []xmldoc.Section{
		{Tag: "introduction", Text: "hello where"},
		{Tag: "main", Text: "body text"},
	}

	pairs := PairDocuments(left, right)
	require.Len(t, pairs, 4)

	for i, p := range pairs {
		assert.Equal(t, i, p.Index)
	}

	// Pair 1 differs, pair 2 is identical.
	assert.NotEmpty(t, pairs[0].LeftSpans)
	assert.NotEmpty(t, pairs[0].RightSpans)
	assert.Empty(t, pairs[1].LeftSpans)
	assert.Empty(t, pairs[1].RightSpans)

	// Pairs 3 and 4 are padded: placeholder on the right, the whole left text
	// marked as deleted, nothing to insert.
	for _, p := range pairs[2:] {
		assert.Equal(t, xmldoc.PlaceholderTag, p.Right.Tag)
		assert.Empty(t, p.Right.Text)
		assert.Equal(t, []Span{{Start: 0, End: len([]rune(p.Left.Text))}}, p.LeftSpans)
		assert.Empty(t, p.RightSpans)
	}
}

func TestPairDocumentsLeftShorter(t *testing.T) {
	left := []xmldoc.Section{{Tag: "only", Text: "alone"}}
	right := []xmldoc.Section{
		{Tag: "only", Text: "alone"},
		{Tag: "second", Text: "added"},
	}

	pairs := PairDocuments(left, right)
	require.Len(t, pairs, 2)

	assert.Equal(t, xmldoc.PlaceholderTag, pairs[1].Left.Tag)
	assert.Empty(t, pairs[1].LeftSpans)
	assert.Equal(t, []Span{{Start: 0, End: 5}}, pairs[1].RightSpans)
}

func TestPairDocumentsEmpty(t *testing.T) {
	assert.Empty(t, PairDocuments(nil, nil))
}
