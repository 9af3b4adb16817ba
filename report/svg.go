package report

import (
	"fmt"
	"html"
	"io"
	"strconv"
	"strings"
	"text/template"

	"github.com/katalvlaran/bimatch/bench"
)

// Chart controls the SVG layout. Empty labels and too-small sizes take
// DefaultChart values.
type Chart struct {
	Title  string
	XLabel string
	YLabel string
	Width  int
	Height int
	// Grid draws light lines at every tick.
	Grid bool
}

// DefaultChart mirrors the classic comparison plot: "Running Time" over
// "#Vertex" with a grid.
func DefaultChart() Chart {
	return Chart{
		Title:  "Running Time",
		XLabel: "#Vertex",
		YLabel: "Time",
		Width:  800,
		Height: 500,
		Grid:   true,
	}
}

const (
	marginLeft   = 80
	marginRight  = 170
	marginTop    = 50
	marginBottom = 60
	yTickCount   = 5
)

// palette starts with red then blue so a two-algorithm run reads like the
// usual Hopcroft–Karp (red) vs Ford–Fulkerson (blue) plot.
var palette = []string{"#d62728", "#1f77b4", "#2ca02c", "#ff7f0e", "#9467bd", "#8c564b"}

type svgTick struct {
	Pos   float64
	Label string
}

type svgPoint struct{ X, Y float64 }

type svgSeries struct {
	Name    string
	Color   string
	Points  string
	Markers []svgPoint
	LegendY float64
}

type svgData struct {
	Chart
	X0, X1, Y0, Y1 float64
	LegendX        float64
	XTicks, YTicks []svgTick
	Series         []svgSeries
}

var svgTemplate = template.Must(template.New("chart").Funcs(template.FuncMap{
	"esc": html.EscapeString,
	"num": func(v float64) string { return strconv.FormatFloat(v, 'f', 2, 64) },
}).Parse(`<svg xmlns="http://www.w3.org/2000/svg" width="{{.Width}}" height="{{.Height}}" viewBox="0 0 {{.Width}} {{.Height}}" font-family="sans-serif" font-size="12">
<rect width="100%" height="100%" fill="white"/>
<text x="{{num .X0}}" y="28" dx="{{num .XMid}}" text-anchor="middle" font-size="16">{{esc .Title}}</text>
{{- range .XTicks}}
{{- if $.Grid}}
<line x1="{{num .Pos}}" y1="{{num $.Y0}}" x2="{{num .Pos}}" y2="{{num $.Y1}}" stroke="#dddddd"/>
{{- end}}
<text x="{{num .Pos}}" y="{{num $.Y0}}" dy="18" text-anchor="middle">{{esc .Label}}</text>
{{- end}}
{{- range .YTicks}}
{{- if $.Grid}}
<line x1="{{num $.X0}}" y1="{{num .Pos}}" x2="{{num $.X1}}" y2="{{num .Pos}}" stroke="#dddddd"/>
{{- end}}
<text x="{{num $.X0}}" y="{{num .Pos}}" dx="-6" dy="4" text-anchor="end">{{esc .Label}}</text>
{{- end}}
<line x1="{{num .X0}}" y1="{{num .Y0}}" x2="{{num .X1}}" y2="{{num .Y0}}" stroke="black"/>
<line x1="{{num .X0}}" y1="{{num .Y0}}" x2="{{num .X0}}" y2="{{num .Y1}}" stroke="black"/>
<text x="{{num .X0}}" y="{{.Height}}" dx="{{num .XMid}}" dy="-16" text-anchor="middle">{{esc .XLabel}}</text>
<text transform="translate(20 {{num .YMid}}) rotate(-90)" text-anchor="middle">{{esc .YLabel}}</text>
{{- range .Series}}
<polyline class="series" fill="none" stroke="{{.Color}}" stroke-width="2" points="{{.Points}}"><title>{{esc .Name}}</title></polyline>
{{- $c := .Color}}
{{- range .Markers}}
<circle cx="{{num .X}}" cy="{{num .Y}}" r="3" fill="{{$c}}"/>
{{- end}}
<rect x="{{num $.LegendX}}" y="{{num .LegendY}}" transform="translate(12 -5)" width="18" height="3" fill="{{.Color}}"/>
<text class="legend" x="{{num $.LegendX}}" y="{{num .LegendY}}" dx="36">{{esc .Name}}</text>
{{- end}}
</svg>
`))

// XMid is half the plot width, used to centre the x label.
func (d svgData) XMid() float64 { return (d.X1 - d.X0) / 2 }

// YMid is the vertical centre of the plot area.
func (d svgData) YMid() float64 { return (d.Y0 + d.Y1) / 2 }

// RenderSVG draws one polyline per algorithm of res, x = size, y = elapsed
// seconds, with a legend naming each algorithm.
func RenderSVG(w io.Writer, res *bench.Result, chart Chart) error {
	if res == nil {
		return ErrNilResult
	}
	if len(res.Records) == 0 {
		return ErrNoData
	}
	chart = withDefaults(chart)

	data := layout(res, chart)
	if err := svgTemplate.Execute(w, data); err != nil {
		return fmt.Errorf("report: render svg: %w", err)
	}
	return nil
}

func withDefaults(c Chart) Chart {
	d := DefaultChart()
	if c.Title == "" {
		c.Title = d.Title
	}
	if c.XLabel == "" {
		c.XLabel = d.XLabel
	}
	if c.YLabel == "" {
		c.YLabel = d.YLabel
	}
	if c.Width <= marginLeft+marginRight {
		c.Width = d.Width
	}
	if c.Height <= marginTop+marginBottom {
		c.Height = d.Height
	}
	return c
}

// layout maps records to pixel space. y always starts at zero.
func layout(res *bench.Result, c Chart) svgData {
	d := svgData{
		Chart: c,
		X0:    marginLeft,
		X1:    float64(c.Width - marginRight),
		Y0:    float64(c.Height - marginBottom),
		Y1:    marginTop,
	}
	d.LegendX = d.X1 + 16

	minX, maxX := res.Records[0].Size, res.Records[0].Size
	maxY := 0.0
	for _, rec := range res.Records {
		if rec.Size < minX {
			minX = rec.Size
		}
		if rec.Size > maxX {
			maxX = rec.Size
		}
		if s := rec.Elapsed.Seconds(); s > maxY {
			maxY = s
		}
	}
	lo, hi := float64(minX), float64(maxX)
	if lo == hi {
		lo, hi = lo-1, hi+1
	}
	if maxY == 0 {
		maxY = 1e-6
	}

	px := func(size int) float64 { return d.X0 + (float64(size)-lo)/(hi-lo)*(d.X1-d.X0) }
	py := func(sec float64) float64 { return d.Y0 - sec/maxY*(d.Y0-d.Y1) }

	seen := make(map[int]bool)
	for _, size := range res.Sizes {
		if seen[size] {
			continue
		}
		seen[size] = true
		d.XTicks = append(d.XTicks, svgTick{Pos: px(size), Label: strconv.Itoa(size)})
	}
	for i := 0; i <= yTickCount; i++ {
		v := maxY * float64(i) / yTickCount
		d.YTicks = append(d.YTicks, svgTick{Pos: py(v), Label: strconv.FormatFloat(v, 'g', 3, 64)})
	}

	for i, name := range res.Algorithms {
		s := svgSeries{
			Name:    name,
			Color:   palette[i%len(palette)],
			LegendY: d.Y1 + 20*float64(i+1),
		}
		var pts []string
		for _, rec := range res.Records {
			if rec.Algorithm != name {
				continue
			}
			p := svgPoint{X: px(rec.Size), Y: py(rec.Elapsed.Seconds())}
			s.Markers = append(s.Markers, p)
			pts = append(pts, strconv.FormatFloat(p.X, 'f', 2, 64)+","+strconv.FormatFloat(p.Y, 'f', 2, 64))
		}
		s.Points = strings.Join(pts, " ")
		d.Series = append(d.Series, s)
	}
	return d
}
