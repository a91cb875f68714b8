package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// BCAParser parses BCA internet-banking mutation CSV exports. Rows carry
// the posting date, description, amount and a DB/CR marker; debits become
// negative Row amounts.
type BCAParser struct{}

const (
	bcaDateFormat = "02/01/2006"
	bcaNumFields  = 4
	bcaColDate    = 0
	bcaColDesc    = 1
	bcaColAmount  = 2
	bcaColMark    = 3
)

// Format returns the parser name.
func (p *BCAParser) Format() string { return "bca" }

// Parse reads a BCA mutation CSV and returns Rows.
func (p *BCAParser) Parse(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = bcaNumFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading bca CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var rows []Row
	for i, rec := range records[1:] {
		row, err := parseBCARow(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func parseBCARow(rec []string) (Row, error) {
	date, err := time.Parse(bcaDateFormat, rec[bcaColDate])
	if err != nil {
		return Row{}, fmt.Errorf("parsing date %q: %w", rec[bcaColDate], err)
	}

	// Amounts come as grouped digits like 1.250.000,00.
	raw := strings.ReplaceAll(rec[bcaColAmount], ".", "")
	raw = strings.ReplaceAll(raw, ",", ".")
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return Row{}, fmt.Errorf("parsing amount %q: %w", rec[bcaColAmount], err)
	}

	switch mark := strings.ToUpper(strings.TrimSpace(rec[bcaColMark])); mark {
	case "DB":
		amount = amount.Neg()
	case "CR":
	default:
		return Row{}, fmt.Errorf("unknown mutation mark %q", rec[bcaColMark])
	}

	return Row{
		Date:        date,
		Description: strings.TrimSpace(rec[bcaColDesc]),
		Amount:      amount,
	}, nil
}
