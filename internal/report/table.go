// Package report renders indicator output for people to read.
package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/amirphl/simple-ta/internal/indicator"
	"github.com/olekukonko/tablewriter"
)

// Render writes index and columns as an aligned text table, one row per
// position. Every column must have one value per index entry. NaN values
// print as "NaN".
func Render(w io.Writer, indexName string, index []string, columns []indicator.Line, precision int) error {
	for _, col := range columns {
		if len(col.Values) != len(index) {
			return fmt.Errorf("column %s has %d values for %d rows: %w", col.Name, len(col.Values), len(index), indicator.ErrLengthMismatch)
		}
	}

	header := make([]string, 0, len(columns)+1)
	header = append(header, indexName)
	for _, col := range columns {
		header = append(header, col.Name)
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_RIGHT)

	for i, key := range index {
		row := make([]string, 0, len(columns)+1)
		row = append(row, key)
		for _, col := range columns {
			row = append(row, strconv.FormatFloat(col.Values[i], 'f', precision, 64))
		}
		table.Append(row)
	}

	table.Render()
	return nil
}
