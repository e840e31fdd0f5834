// Package importer parses expense CSV exports into create params. Column
// layouts vary across banking and spreadsheet apps, so the parser detects
// the header row by matching known column aliases instead of assuming a
// fixed schema.
package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	enc "github.com/arand/kharcha/internal/encoding"
	"github.com/arand/kharcha/internal/expense"
	"github.com/arand/kharcha/internal/money"
)

// columnAliases maps each logical field to the header names it may appear
// under, lowercased.
var columnAliases = map[string][]string{
	"date":        {"date", "transaction date", "txn date"},
	"description": {"description", "details", "narration", "particulars"},
	"amount":      {"amount", "debit", "withdrawal"},
	"category":    {"category", "type"},
}

// dateLayouts are tried in order when parsing the date cell.
var dateLayouts = []string{
	time.DateOnly,
	"02-01-2006",
	"02/01/2006",
	"2 Jan 2006",
}

type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

// Parse reads a CSV export and returns one CreateParams per usable row.
// Rows without a parseable date or a positive amount are skipped (footers,
// credits, subtotals); a missing category maps to Other. The input may be
// in any encoding the encoding package can detect.
func (p *Parser) Parse(r io.Reader) ([]expense.CreateParams, error) {
	utf8r, err := enc.NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	reader := csv.NewReader(utf8r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	cols, headerIdx := detectHeader(rows)
	if cols == nil {
		return nil, fmt.Errorf("no header row found: expected date, description, and amount columns")
	}

	return parseRows(cols, rows[headerIdx+1:]), nil
}

// colIndex maps logical field names to their column index.
type colIndex map[string]int

// detectHeader scans for the first row containing at least the date,
// description, and amount columns.
func detectHeader(rows [][]string) (colIndex, int) {
	for rowIdx, row := range rows {
		cols := make(colIndex)

		for i, cell := range row {
			name := strings.ToLower(strings.TrimSpace(cell))

			for field, aliases := range columnAliases {
				if _, taken := cols[field]; taken {
					continue
				}

				for _, alias := range aliases {
					if name == alias {
						cols[field] = i
						break
					}
				}
			}
		}

		if hasAll(cols, "date", "description", "amount") {
			return cols, rowIdx
		}
	}

	return nil, 0
}

func hasAll(cols colIndex, fields ...string) bool {
	for _, f := range fields {
		if _, ok := cols[f]; !ok {
			return false
		}
	}

	return true
}

func parseRows(cols colIndex, rows [][]string) []expense.CreateParams {
	var out []expense.CreateParams

	for _, row := range rows {
		date, ok := parseDate(cellValue(row, cols["date"]))
		if !ok {
			continue
		}

		desc := cellValue(row, cols["description"])
		if desc == "" {
			continue
		}

		amount, err := money.Parse(cellValue(row, cols["amount"]))
		if err != nil || amount <= 0 {
			continue
		}

		category := expense.CategoryOther
		if idx, ok := cols["category"]; ok {
			category = parseCategory(cellValue(row, idx))
		}

		out = append(out, expense.CreateParams{
			Amount:      amount,
			Description: desc,
			Category:    category,
			Date:        date,
		})
	}

	return out
}

func cellValue(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}

func parseDate(s string) (string, bool) {
	if s == "" {
		return "", false
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(time.DateOnly), true
		}
	}

	return "", false
}

func parseCategory(s string) expense.Category {
	normalized := strings.ToLower(strings.TrimSpace(s))

	for _, c := range expense.Categories() {
		if strings.ToLower(string(c)) == normalized {
			return c
		}
	}

	switch normalized {
	case "fixed", "rent", "bills":
		return expense.CategoryFixedExpenses
	case "saving":
		return expense.CategorySavings
	case "investment":
		return expense.CategoryInvestments
	}

	return expense.CategoryOther
}
