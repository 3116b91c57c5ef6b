// SPDX-License-Identifier: MIT

package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/neuronet/bfs"
)

// ErrUnknownFormat is returned for a format name outside Formats.
var ErrUnknownFormat = errors.New("export: unknown format")

// ErrNilResult is returned when asked to render a nil result.
var ErrNilResult = errors.New("export: nil result")

// Format names an output encoding.
type Format string

const (
	FormatText    Format = "text"
	FormatJSON    Format = "json"
	FormatDOT     Format = "dot"
	FormatMermaid Format = "mermaid"
)

// Formats lists the supported formats.
var Formats = []Format{FormatText, FormatJSON, FormatDOT, FormatMermaid}

// ParseFormat resolves a case-insensitive format name.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q (want one of %v)", ErrUnknownFormat, s, Formats)
}

// Write renders res to w in format f.
func Write(w io.Writer, res *bfs.Result, f Format) error {
	if res == nil {
		return ErrNilResult
	}
	switch f {
	case FormatText:
		return WriteText(w, res)
	case FormatJSON:
		return WriteJSON(w, res)
	case FormatDOT:
		return WriteDOT(w, res)
	case FormatMermaid:
		return WriteMermaid(w, res)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
}

// WriteText writes one line per depth level followed by the tree edges.
func WriteText(w io.Writer, res *bfs.Result) error {
	var sb strings.Builder
	if res.Len() == 0 {
		fmt.Fprintf(&sb, "bfs from %d (max depth %d): start node not in graph\n", res.Start, res.MaxDepth)
		_, err := io.WriteString(w, sb.String())
		return err
	}

	fmt.Fprintf(&sb, "bfs from %d (max depth %d): %d nodes, %d edges\n",
		res.Start, res.MaxDepth, len(res.Nodes), len(res.Edges))
	level := -1
	for i, id := range res.Nodes {
		if d := res.Depths[i]; d != level {
			if level >= 0 {
				sb.WriteByte('\n')
			}
			level = d
			fmt.Fprintf(&sb, "  depth %d:", d)
		}
		fmt.Fprintf(&sb, " %d", id)
	}
	sb.WriteByte('\n')
	if len(res.Edges) > 0 {
		sb.WriteString("  edges:")
		for _, e := range res.Edges {
			fmt.Fprintf(&sb, " %s", e)
		}
		sb.WriteByte('\n')
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

type jsonNode struct {
	ID    int64 `json:"id"`
	Depth int   `json:"depth"`
}

type jsonEdge struct {
	From int64 `json:"from"`
	To   int64 `json:"to"`
}

type jsonDoc struct {
	Start    int64      `json:"start"`
	MaxDepth int        `json:"max_depth"`
	Nodes    []jsonNode `json:"nodes"`
	Edges    []jsonEdge `json:"edges"`
}

// WriteJSON writes an indented JSON document.
func WriteJSON(w io.Writer, res *bfs.Result) error {
	doc := jsonDoc{
		Start:    int64(res.Start),
		MaxDepth: res.MaxDepth,
		Nodes:    make([]jsonNode, len(res.Nodes)),
		Edges:    make([]jsonEdge, len(res.Edges)),
	}
	for i, id := range res.Nodes {
		doc.Nodes[i] = jsonNode{ID: int64(id), Depth: res.Depths[i]}
	}
	for i, e := range res.Edges {
		doc.Edges[i] = jsonEdge{From: int64(e.From), To: int64(e.To)}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

// WriteDOT writes a Graphviz digraph.
func WriteDOT(w io.Writer, res *bfs.Result) error {
	var sb strings.Builder
	sb.WriteString("digraph bfs {\n")
	sb.WriteString("\trankdir=LR;\n")
	sb.WriteString("\tnode [shape=circle];\n")
	for i, id := range res.Nodes {
		fmt.Fprintf(&sb, "\t\"%d\" [label=\"%d (d=%d)\"", id, id, res.Depths[i])
		if i == 0 {
			sb.WriteString(", style=filled, fillcolor=gold")
		}
		sb.WriteString("];\n")
	}
	for _, e := range res.Edges {
		fmt.Fprintf(&sb, "\t\"%d\" -> \"%d\";\n", e.From, e.To)
	}
	sb.WriteString("}\n")

	_, err := io.WriteString(w, sb.String())
	return err
}

// WriteMermaid writes a Mermaid flowchart.
func WriteMermaid(w io.Writer, res *bfs.Result) error {
	var sb strings.Builder
	sb.WriteString("graph LR\n")
	for i, id := range res.Nodes {
		if i == 0 {
			fmt.Fprintf(&sb, "    n%d((\"%d\"))\n", id, id)
			continue
		}
		fmt.Fprintf(&sb, "    n%d[\"%d\"]\n", id, id)
	}
	for _, e := range res.Edges {
		fmt.Fprintf(&sb, "    n%d --> n%d\n", e.From, e.To)
	}
	if len(res.Nodes) > 0 {
		fmt.Fprintf(&sb, "    style n%d fill:#f9d71c,stroke:#333\n", res.Nodes[0])
	}

	_, err := io.WriteString(w, sb.String())
	return err
}
