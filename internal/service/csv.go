package service

import (
	"strings"

	"chatcore/internal/model"
	"chatcore/internal/utils"
)

// csvBOM makes spreadsheet tools detect UTF-8 in the exported file.
const csvBOM = "\uFEFF"

// ExportCSV serializes a table model to downloadable text: the header row
// and each data row joined by commas, rows separated by newlines.
// Cells are written verbatim. A cell containing a comma or newline will
// corrupt the column layout; that is a known limitation, not an error.
func ExportCSV(table *model.TableModel) []byte {
	var b strings.Builder
	b.WriteString(csvBOM)
	b.WriteString(strings.Join(table.Headers, ","))

	for _, row := range table.Rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = utils.Stringify(cell)
		}
		b.WriteString("\n")
		b.WriteString(strings.Join(cells, ","))
	}
	return []byte(b.String())
}

// CSVFilename derives the download filename from the table title.
func CSVFilename(table *model.TableModel) string {
	return table.Title + ".csv"
}
