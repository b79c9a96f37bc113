package stats

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

const clipTail = "~"

// column describes one table column. A positive Max caps the cell width;
// longer cells are cut and end in clipTail.
type column struct {
	Header string
	Right  bool
	Max    int
}

// table lays out rows under cols. Lines carry no trailing blanks.
func table(cols []column, rows [][]string) []string {
	if len(cols) == 0 {
		return nil
	}
	cells := make([][]string, 0, len(rows)+1)
	header := make([]string, len(cols))
	for i, c := range cols {
		header[i] = c.Header
	}
	cells = append(cells, header)
	for _, row := range rows {
		line := make([]string, len(cols))
		for i, c := range cols {
			if i < len(row) {
				line[i] = clip(row[i], c.Max)
			}
		}
		cells = append(cells, line)
	}

	widths := make([]int, len(cols))
	for _, line := range cells {
		for i, cell := range line {
			widths[i] = max(widths[i], runewidth.StringWidth(cell))
		}
	}

	out := make([]string, 0, len(cells))
	for _, line := range cells {
		var b strings.Builder
		for i, cell := range line {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(pad(cell, widths[i], cols[i].Right))
		}
		out = append(out, strings.TrimRight(b.String(), " "))
	}
	return out
}

func clip(cell string, limit int) string {
	if limit <= 0 || runewidth.StringWidth(cell) <= limit {
		return cell
	}
	return runewidth.Truncate(cell, limit, clipTail)
}

func pad(cell string, width int, right bool) string {
	gap := width - runewidth.StringWidth(cell)
	if gap <= 0 {
		return cell
	}
	if right {
		return strings.Repeat(" ", gap) + cell
	}
	return cell + strings.Repeat(" ", gap)
}
