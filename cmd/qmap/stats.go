// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/qmap/circuit"
	"github.com/katalvlaran/qmap/sabre"
)

var (
	tableStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#7aa2f7")).
			Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ff9e64"))

	headStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#73daca"))

	okStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#9ece6a"))
	dimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#565f89"))
)

type statsRow struct {
	name     string
	gates    int
	twoQubit int
	swaps    int
	depth    int
	valves   int
	verified bool
}

func newStatsRow(name string, c *circuit.Circuit, res *sabre.Result) statsRow {
	return statsRow{
		name:     name,
		gates:    len(c.Ops),
		twoQubit: c.TwoQubitCount(),
		swaps:    res.Swaps,
		depth:    res.Depth(),
		valves:   res.ReleaseValves,
	}
}

var statsHeader = []string{"circuit", "gates", "2q", "swaps", "depth", "valves", "verified"}

func (r statsRow) cells() []string {
	v := dimStyle.Render("-")
	if r.verified {
		v = okStyle.Render("ok")
	}
	return []string{
		r.name,
		fmt.Sprint(r.gates),
		fmt.Sprint(r.twoQubit),
		fmt.Sprint(r.swaps),
		fmt.Sprint(r.depth),
		fmt.Sprint(r.valves),
		v,
	}
}

// renderStats lays rows out as left-aligned columns inside a bordered box.
func renderStats(device, variant string, rows []statsRow) string {
	table := [][]string{statsHeader}
	for _, r := range rows {
		table = append(table, r.cells())
	}
	widths := make([]int, len(statsHeader))
	for _, row := range table {
		for i, cell := range row {
			widths[i] = max(widths[i], lipgloss.Width(cell))
		}
	}

	var sb strings.Builder
	sb.WriteString(titleStyle.Render(device+" · "+variant) + "\n")
	for k, row := range table {
		cols := make([]string, len(row))
		for i, cell := range row {
			if k == 0 {
				cell = headStyle.Render(cell)
			}
			cols[i] = lipgloss.NewStyle().Width(widths[i]).Render(cell)
		}
		sb.WriteString(strings.Join(cols, "  "))
		if k < len(table)-1 {
			sb.WriteByte('\n')
		}
	}
	return tableStyle.Render(sb.String())
}
