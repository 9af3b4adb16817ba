package report

import "fmt"

// ErrNilResult is returned when a renderer receives a nil *bench.Result.
var ErrNilResult = fmt.Errorf("report: %w", errNilResult)
var errNilResult = fmt.Errorf("nil benchmark result")

// ErrNoData is returned by RenderSVG when the result holds no records.
var ErrNoData = fmt.Errorf("report: %w", errNoData)
var errNoData = fmt.Errorf("no records to plot")
