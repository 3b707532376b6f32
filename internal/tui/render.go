// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	lipglossv2 "github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/lipgloss/v2/table"

	"github.com/xmlcmp/xmlcmp/internal/config"
	"github.com/xmlcmp/xmlcmp/internal/differ"
)

// segment is a run of characters within one rendered line that either all
// fall inside a differing span or all fall outside one.
type segment struct {
	text string
	diff bool
}

// wrapSegments splits text into lines of at most width runes and splits each
// line into highlighted and plain runs according to spans. Spans are expected
// sorted and non-overlapping, which is what differ.Compare returns. Empty
// text yields a single empty line.
func wrapSegments(text string, spans []differ.Span, width int) [][]segment {
	if width < 1 {
		width = 1
	}

	runes := []rune(text)
	if len(runes) == 0 {
		return [][]segment{nil}
	}

	var (
		lines [][]segment
		line  []segment
		si    int
	)

	for i, r := range runes {
		for si < len(spans) && spans[si].End <= i {
			si++
		}
		diff := si < len(spans) && spans[si].Start <= i

		if n := len(line); n > 0 && line[n-1].diff == diff {
			line[n-1].text += string(r)
		} else {
			line = append(line, segment{text: string(r), diff: diff})
		}

		if (i+1)%width == 0 || i == len(runes)-1 {
			lines = append(lines, line)
			line = nil
		}
	}

	return lines
}

// renderer holds the resolved styles for one rendering run. A renderer is
// rebuilt on every compare and on every resize, so style resolution stays
// cheap and current.
type renderer struct {
	width    int
	colWidth int

	title  lipgloss.Style
	label  lipgloss.Style
	hl     lipgloss.Style
	box    lipgloss.Style
	sumHdr lipglossv2.Style
	sumRow lipglossv2.Style
}

func newRenderer(width int) renderer {
	titleColor, diffColor := resolveColors()

	// Two columns inside a bordered panel: border plus padding eat six cells.
	colWidth := (width - 6) / 2
	if maxWidth, err := config.GetInt("panel.width"); err == nil && colWidth > maxWidth {
		colWidth = maxWidth
	}
	if colWidth < 10 {
		colWidth = 10
	}

	return renderer{
		width:    width,
		colWidth: colWidth,
		title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(titleColor)),
		label:    lipgloss.NewStyle().Bold(true),
		hl:       lipgloss.NewStyle().Background(lipgloss.Color(diffColor)).Foreground(lipgloss.Color("#000000")),
		box:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
		sumHdr:   lipglossv2.NewStyle().Bold(true).Align(lipglossv2.Left),
		sumRow:   lipglossv2.NewStyle().Align(lipglossv2.Left),
	}
}

// resolveColors returns the title and highlight colors, honoring config
// overrides and falling back to defaults appropriate for the terminal
// background.
func resolveColors() (title, diff string) {
	isDark := lipgloss.HasDarkBackground()

	resolve := func(key, light, dark string) string {
		if c, err := config.GetString(key); err == nil {
			return c
		}
		if isDark {
			return dark
		}
		return light
	}

	title = resolve("colors.title", "#b08800", "#f6be00")
	diff = resolve("colors.diff", "#ffcccc", "#aa3333")
	return
}

// pairs renders the summary table followed by one panel per section pair.
func (r renderer) pairs(pairs []differ.Pair) string {
	var b strings.Builder
	b.WriteString(r.summary(pairs))
	b.WriteString("\n")
	for _, p := range pairs {
		b.WriteString(r.panel(p))
		b.WriteString("\n")
	}
	return b.String()
}

// summary renders a compact table of all pairs with their tags and the
// number of differing spans per side.
func (r renderer) summary(pairs []differ.Pair) string {
	var rows [][]string
	for _, p := range pairs {
		rows = append(rows, []string{
			fmt.Sprintf("%d", p.Index+1),
			p.Left.Tag,
			p.Right.Tag,
			fmt.Sprintf("%d/%d", len(p.LeftSpans), len(p.RightSpans)),
		})
	}

	t := table.New().
		BorderBottom(false).
		BorderTop(false).
		BorderLeft(false).
		BorderRight(false).
		Border(lipglossv2.HiddenBorder()).
		StyleFunc(func(row, col int) lipglossv2.Style {
			style := r.sumRow
			if row == table.HeaderRow {
				style = r.sumHdr
			}
			if col > 0 {
				style = style.PaddingLeft(2)
			}
			return style
		}).
		Headers("#", "LEFT", "RIGHT", "SPANS").
		BorderHeader(false).
		Rows(rows...)

	return t.String()
}

// panel renders one titled section pair with both texts side by side.
func (r renderer) panel(p differ.Pair) string {
	title := r.title.Render(fmt.Sprintf("Section %d: %s / %s", p.Index+1, p.Left.Tag, p.Right.Tag))

	left := r.column("XML 1", p.Left.Text, p.LeftSpans)
	right := r.column("XML 2", p.Right.Text, p.RightSpans)
	body := lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right)

	return r.box.Render(title + "\n" + body)
}

// column renders one labeled text column with highlight styling applied to
// every differing span.
func (r renderer) column(label, text string, spans []differ.Span) string {
	lines := []string{r.label.Render(label)}
	for _, segs := range wrapSegments(text, spans, r.colWidth) {
		var line strings.Builder
		for _, s := range segs {
			if s.diff {
				line.WriteString(r.hl.Render(s.text))
			} else {
				line.WriteString(s.text)
			}
		}
		lines = append(lines, line.String())
	}

	col := lipgloss.NewStyle().Width(r.colWidth)
	return col.Render(strings.Join(lines, "\n"))
}
