package fintrack

import (
	"bufio"
	"fmt"
	"io"
	"time"
)

// this file contains functions to handle the export format.
// It should remain human readable, single file and easy to open in a spreadsheet.

// ExportCSV writes a snapshot of transactions to 'w' in the export format:
// a header row "ID,Date,Description,Amount,Type" followed by one row per
// transaction, values comma-joined.
//
// Fields are deliberately not quoted or escaped, to keep the artifact
// byte-compatible with the historical format: a description containing a
// comma will shift the columns of its row.
func ExportCSV(w io.Writer, txs []Transaction) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintln(bw, "ID,Date,Description,Amount,Type"); err != nil {
		return fmt.Errorf("cannot write export header: %w", err)
	}
	for _, tx := range txs {
		if _, err := fmt.Fprintf(bw, "%d,%s,%s,%s,%s\n",
			tx.ID, tx.Date, tx.Description, tx.Amount.Decimal(), tx.Kind); err != nil {
			return fmt.Errorf("cannot write transaction %d: %w", tx.ID, err)
		}
	}
	return bw.Flush()
}

// ExportFilename returns the uniquely time-stamped name of an export
// artifact, e.g. "finances_export_20250102_150405.csv".
func ExportFilename(t time.Time) string {
	return "finances_export_" + t.Format("20060102_150405") + ".csv"
}
