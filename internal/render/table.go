// Package render draws the battle state as console tables.
package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/vovakirdan/fleetsim/internal/combat"
)

// LowIntegrity is the threshold below which a ship is flagged.
const LowIntegrity = 4

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	lowStyle    = cellStyle.Foreground(lipgloss.Color("9")).Bold(true)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	resultStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
)

const integrityCol = 2

// Ships renders a Fleet/Name/Integrity table. A width of 0 lets the table size itself.
func Ships(ships []combat.Ship, fleets []combat.Fleet, width int) string {
	names := fleetNames(fleets)

	rows := make([][]string, 0, len(ships))
	for _, s := range ships {
		rows = append(rows, []string{
			fleetLabel(names, s.Fleet),
			shipLabel(s),
			strconv.FormatInt(s.Integrity, 10),
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers("Fleet", "Name", "Integrity").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if col == integrityCol && row >= 0 && row < len(ships) && Low(ships[row]) {
				return lowStyle
			}
			return cellStyle
		})
	if width > 0 {
		t = t.Width(width)
	}

	return t.String()
}

// Turn renders the title line and ship table for a finished turn.
func Turn(turn int, report combat.Report, fleets []combat.Fleet, width int) string {
	var sb strings.Builder

	title := fmt.Sprintf("Turn %d: %d attacks, %d destroyed", turn, report.Attacks, len(report.Destroyed))
	sb.WriteString(titleStyle.Render(title))
	sb.WriteRune('\n')
	sb.WriteString(Ships(report.Survivors, fleets, width))
	return sb.String()
}

// Result renders the closing line of a finished battle.
func Result(turns int, survivors []combat.Ship, fleets []combat.Fleet) string {
	var line string
	switch len(survivors) {
	case 0:
		line = fmt.Sprintf("Mutual destruction after %d turns.", turns)
	case 1:
		s := survivors[0]
		line = fmt.Sprintf("%s (%s) wins after %d turns with integrity %d.",
			shipLabel(s), fleetLabel(fleetNames(fleets), s.Fleet), turns, s.Integrity)
	default:
		line = fmt.Sprintf("Battle stopped after %d turns with %d ships remaining.", turns, len(survivors))
	}
	return resultStyle.Render(line)
}

// Low reports whether a ship's integrity is below the warning threshold.
func Low(s combat.Ship) bool {
	return s.Integrity < LowIntegrity
}

func fleetNames(fleets []combat.Fleet) map[string]string {
	names := make(map[string]string, len(fleets))
	for _, f := range fleets {
		names[f.ID] = f.Name
	}
	return names
}

func fleetLabel(names map[string]string, id string) string {
	if name, ok := names[id]; ok && name != "" {
		return name
	}
	return "-"
}

// shipLabel falls back to a shortened id for unnamed ships.
func shipLabel(s combat.Ship) string {
	if s.Name != "" {
		return s.Name
	}
	if len(s.ID) > 8 {
		return s.ID[:8]
	}
	return s.ID
}
