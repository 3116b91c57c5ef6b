// SPDX-License-Identifier: MIT

package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// panel renders titled key/value rows inside a rounded border. The renderer
// is bound to w so colour is dropped automatically for pipes and buffers.
type panel struct {
	title string
	rows  [][2]string
}

func (p *panel) add(key string, format string, args ...any) {
	p.rows = append(p.rows, [2]string{key, fmt.Sprintf(format, args...)})
}

func (p *panel) render(w io.Writer) error {
	r := lipgloss.NewRenderer(w)
	title := r.NewStyle().Bold(true).Foreground(lipgloss.Color("#00FF99"))
	key := r.NewStyle().Foreground(lipgloss.Color("#AAAAAA"))
	box := r.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#555555")).
		Padding(0, 1)

	width := 0
	for _, row := range p.rows {
		width = max(width, len(row[0]))
	}
	lines := make([]string, 0, len(p.rows)+1)
	lines = append(lines, title.Render(p.title))
	for _, row := range p.rows {
		lines = append(lines, key.Render(fmt.Sprintf("%-*s", width, row[0]))+"  "+row[1])
	}

	_, err := fmt.Fprintln(w, box.Render(strings.Join(lines, "\n")))
	return err
}
