// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package samples

import (
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"

	"github.com/xmlcmp/xmlcmp/internal/log"
)

type section struct {
	XMLName xml.Name
	Text    string `xml:",chardata"`
}

type document struct {
	XMLName  xml.Name `xml:"document"`
	Sections []section
}

// The two sample documents carry the same four tags. The first three pairs
// differ in wording; the appendix pair is byte-identical so the comparison
// view has one unhighlighted panel to contrast against.
var sample1 = []section{
	{XMLName: xml.Name{Local: "introduction"}, Text: "This is the first section. It exercises the XML file comparison."},
	{XMLName: xml.Name{Local: "main"}, Text: "The main section contains important information. It has several sentences."},
	{XMLName: xml.Name{Local: "conclusion"}, Text: "In conclusion, this tool is useful."},
	{XMLName: xml.Name{Local: "appendix"}, Text: "Additional information goes here."},
}

var sample2 = []section{
	{XMLName: xml.Name{Local: "introduction"}, Text: "This is the first section. It exercises the XML document comparison."},
	{XMLName: xml.Name{Local: "main"}, Text: "The main section contains important data. It has a few sentences."},
	{XMLName: xml.Name{Local: "conclusion"}, Text: "To summarize, this tool is very useful."},
	{XMLName: xml.Name{Local: "appendix"}, Text: "Additional information goes here."},
}

// Write emits sample1.xml and sample2.xml into dir and returns the paths of
// the files created.
func Write(dir string) ([]string, error) {
	var paths []string
	for _, doc := range []struct {
		name     string
		sections []section
	}{
		{name: "sample1.xml", sections: sample1},
		{name: "sample2.xml", sections: sample2},
	} {
		path := filepath.Join(dir, doc.name)
		if err := writeDocument(path, doc.sections); err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}

	return paths, nil
}

func writeDocument(path string, sections []section) error {
	out, err := xml.MarshalIndent(document{Sections: sections}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal sample document: %w", err)
	}

	data := append([]byte(xml.Header), out...)
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write sample document: %w", err)
	}

	log.Debugf("wrote sample document: %s", path)
	return nil
}
