package main

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

// Entry is a single version section of the changelog.
type Entry struct {
	Version string
	Date    string
	Content string
}

// Changelog is a parsed Keep a Changelog file.
type Changelog struct {
	Entries []Entry
	Links   map[string]string
}

// FindVersion finds a version entry, tolerating a leading "v".
func (c *Changelog) FindVersion(version string) *Entry {
	version = strings.TrimPrefix(version, "v")

	for i := range c.Entries {
		if strings.TrimPrefix(c.Entries[i].Version, "v") == version {
			return &c.Entries[i]
		}
	}
	return nil
}

// versionHeading tracks an h2 heading's byte positions in the source, used
// to slice out each version's content between consecutive headings.
type versionHeading struct {
	version string
	date    string
	start   int
	end     int
}

// Parse parses a Keep a Changelog formatted markdown document.
func Parse(source []byte) (*Changelog, error) {
	md := goldmark.New()
	ctx := parser.NewContext()
	doc := md.Parser().Parse(text.NewReader(source), parser.WithContext(ctx))

	log := &Changelog{Links: make(map[string]string)}
	for _, ref := range ctx.References() {
		log.Links[string(ref.Label())] = string(ref.Destination())
	}

	var headings []versionHeading
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		heading, ok := n.(*ast.Heading)
		if !ok || heading.Level != 2 {
			return ast.WalkContinue, nil
		}

		version, date := splitVersionHeading(headingText(heading, source))

		h := versionHeading{version: version, date: date}
		if lines := heading.Lines(); lines.Len() > 0 {
			h.start = lines.At(0).Start
			h.end = lines.At(lines.Len() - 1).Stop
		}
		headings = append(headings, h)

		return ast.WalkContinue, nil
	})

	for i, h := range headings {
		contentEnd := len(source)
		if i+1 < len(headings) {
			contentEnd = headings[i+1].start
		}

		content := ""
		if h.end < contentEnd {
			content = strings.TrimSpace(string(source[h.end:contentEnd]))
		}

		log.Entries = append(log.Entries, Entry{
			Version: h.version,
			Date:    h.date,
			Content: content,
		})
	}

	return log, nil
}

// headingText flattens a heading's text, unwrapping a linked version label.
func headingText(node ast.Node, source []byte) string {
	var buf bytes.Buffer
	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		switch c := child.(type) {
		case *ast.Text:
			buf.Write(c.Segment.Value(source))
		case *ast.Link:
			for lc := c.FirstChild(); lc != nil; lc = lc.NextSibling() {
				if textNode, ok := lc.(*ast.Text); ok {
					buf.Write(textNode.Segment.Value(source))
				}
			}
		}
	}
	return buf.String()
}

// splitVersionHeading splits "[X.Y.Z] - YYYY-MM-DD" (or the unbracketed
// form) into its version and date parts.
func splitVersionHeading(heading string) (version, date string) {
	heading = strings.TrimSpace(heading)

	if rest, found := strings.CutPrefix(heading, "["); found {
		if idx := strings.Index(rest, "]"); idx != -1 {
			version = rest[:idx]
			tail := strings.TrimSpace(rest[idx+1:])
			if d, found := strings.CutPrefix(tail, "- "); found {
				date = strings.TrimSpace(d)
			}
			return version, date
		}
	}

	if idx := strings.Index(heading, " - "); idx != -1 {
		return strings.TrimSpace(heading[:idx]), strings.TrimSpace(heading[idx+3:])
	}
	return heading, ""
}
