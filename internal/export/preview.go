package export

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"relabel/internal/models"
)

// maxPreviewCell caps cell width so one oversized label does not blow up
// the whole table.
const maxPreviewCell = 60

// PreviewTable renders up to limit records as an aligned two-column text
// table (original -> corrected). Column padding uses display width so the
// table stays aligned for labels carrying wide runes. A limit <= 0 renders
// every record.
func PreviewTable(records []models.LabelRecord, limit int) string {
	if limit <= 0 || limit > len(records) {
		limit = len(records)
	}

	if limit == 0 {
		return ""
	}

	rows := make([][2]string, 0, limit+1)
	rows = append(rows, [2]string{"Original", "Corrected"})

	for _, rec := range records[:limit] {
		rows = append(rows, [2]string{
			truncateCell(rec.Original),
			truncateCell(rec.Corrected),
		})
	}

	// Calculate column widths from display width, not byte length.
	var widths [2]int
	for _, row := range rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var sb strings.Builder

	for rIdx, row := range rows {
		sb.WriteString("|")

		for i, cell := range row {
			sb.WriteString(" ")
			sb.WriteString(cell)

			if padding := widths[i] - runewidth.StringWidth(cell); padding > 0 {
				sb.WriteString(strings.Repeat(" ", padding))
			}

			sb.WriteString(" |")
		}

		sb.WriteString("\n")

		// Separator under the header row.
		if rIdx == 0 {
			sb.WriteString("|")

			for i := range row {
				sb.WriteString(strings.Repeat("-", widths[i]+2))
				sb.WriteString("|")
			}

			sb.WriteString("\n")
		}
	}

	return sb.String()
}

func truncateCell(s string) string {
	return runewidth.Truncate(s, maxPreviewCell, "...")
}
