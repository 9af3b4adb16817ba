package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/bimatch/bench"
)

// csvHeader is the first row written by WriteCSV.
var csvHeader = []string{"run_id", "size", "algorithm", "elapsed_ns", "matched"}

// WriteCSV writes res as CSV, records in sweep order.
func WriteCSV(w io.Writer, res *bench.Result) error {
	if res == nil {
		return ErrNilResult
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("report: write csv header: %w", err)
	}
	runID := res.RunID.String()
	for _, rec := range res.Records {
		row := []string{
			runID,
			strconv.Itoa(rec.Size),
			rec.Algorithm,
			strconv.FormatInt(rec.Elapsed.Nanoseconds(), 10),
			strconv.Itoa(rec.Matched),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("report: write csv row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("report: flush csv: %w", err)
	}
	return nil
}
