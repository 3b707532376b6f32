// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package xmldoc

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/xmlcmp/xmlcmp/internal/log"
)

// PlaceholderTag is the tag shown for a missing section when two documents
// with different section counts are aligned positionally.
const PlaceholderTag = "(none)"

// Section is one top-level child of the document root reduced to its tag and
// flattened text content. Attributes and element structure are discarded;
// only ordering survives.
type Section struct {
	Tag  string
	Text string
}

// Placeholder returns the padding section used for a missing counterpart.
func Placeholder() Section {
	return Section{Tag: PlaceholderTag, Text: ""}
}

// Load parses the XML file at path and returns one Section per top-level
// child of the root element, in document order. Any read, syntax, or
// encoding problem is reported as a single wrapped parse error carrying the
// underlying message.
func Load(path string) ([]Section, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("parse XML document %s: %w", path, err)
	}
	defer f.Close()

	sections, err := decode(f)
	if err != nil {
		return nil, fmt.Errorf("parse XML document %s: %w", path, err)
	}

	log.Debugf("loaded %d sections from %s", len(sections), path)
	return sections, nil
}

// decode walks the token stream and flattens each depth-2 element subtree.
// Flattening collects every character data run inside the section in document
// order (the element's own leading text, each child's text, each child's
// trailing text), trims each run, drops empties, and joins the rest with
// single spaces. Attribute values are never part of the result.
func decode(r io.Reader) ([]Section, error) {
	dec := xml.NewDecoder(r)

	var (
		sections []Section
		frags    []string
		depth    int
		inside   bool
		sawRoot  bool
	)

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			depth++
			sawRoot = true
			if depth == 2 {
				sections = append(sections, Section{Tag: t.Name.Local})
				frags = frags[:0]
				inside = true
			}
		case xml.EndElement:
			if depth == 2 {
				sections[len(sections)-1].Text = strings.Join(frags, " ")
				inside = false
			}
			depth--
		case xml.CharData:
			if inside {
				if s := strings.TrimSpace(string(t)); s != "" {
					frags = append(frags, s)
				}
			}
		}
	}

	if !sawRoot {
		return nil, fmt.Errorf("no root element found")
	}

	return sections, nil
}
