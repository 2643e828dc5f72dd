package cli

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/katalvlaran/hierarchia/dominance"
	"github.com/katalvlaran/hierarchia/matrix"
)

var (
	headerColor = color.New(color.FgCyan, color.Bold) // metric titles
	warnColor   = color.New(color.FgYellow, color.Bold)
	naColor     = color.New(color.FgHiBlack) // absent values
)

// Printer renders metric results as tables.
type Printer struct {
	w         io.Writer
	precision int
	color     bool
}

// NewPrinter returns a Printer writing to w.
func NewPrinter(w io.Writer, precision int, useColor bool) *Printer {
	return &Printer{w: w, precision: precision, color: useColor}
}

func (p *Printer) paint(c *color.Color, s string) string {
	if !p.color {
		return s
	}
	c.EnableColor()

	return c.Sprint(s)
}

func (p *Printer) float(v float64) string {
	return strconv.FormatFloat(v, 'f', p.precision, 64)
}

// Title prints a section heading.
func (p *Printer) Title(s string) {
	_, _ = fmt.Fprintln(p.w, p.paint(headerColor, s))
}

// Warn prints a highlighted warning line.
func (p *Printer) Warn(format string, args ...any) {
	_, _ = fmt.Fprintln(p.w, p.paint(warnColor, "Warn "+fmt.Sprintf(format, args...)))
}

func (p *Printer) render(headers []string, data [][]string, align tw.Align) error {
	table := tablewriter.NewWriter(p.w)
	table.Header(headers)
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = align
	})
	if err := table.Bulk(data); err != nil {
		return err
	}

	return table.Render()
}

// Scores prints one row per agent in the given order.
func (p *Printer) Scores(s dominance.Scores) error {
	data := make([][]string, len(s))
	for i, e := range s {
		data[i] = []string{e.Agent, p.float(e.Value)}
	}

	return p.render([]string{"Agent", "Value"}, data, tw.AlignRight)
}

// Ranks prints one row per agent ordered by rank, then agent.
func (p *Printer) Ranks(r dominance.Ranks) error {
	sorted := append(dominance.Ranks(nil), r...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Rank != sorted[j].Rank {
			return sorted[i].Rank < sorted[j].Rank
		}
		return sorted[i].Agent < sorted[j].Agent
	})
	data := make([][]string, len(sorted))
	for i, e := range sorted {
		data[i] = []string{strconv.Itoa(e.Rank), e.Agent}
	}

	return p.render([]string{"Rank", "Agent"}, data, tw.AlignRight)
}

// Field is one labelled value; a nil Value renders as n/a.
type Field struct {
	Name  string
	Value *float64
}

// F is shorthand for a present Field.
func F(name string, v float64) Field { return Field{Name: name, Value: &v} }

// Fields prints a two-column key/value table.
func (p *Printer) Fields(fs []Field) error {
	data := make([][]string, len(fs))
	for i, f := range fs {
		v := p.paint(naColor, "n/a")
		if f.Value != nil {
			v = p.float(*f.Value)
		}
		data[i] = []string{f.Name, v}
	}

	return p.render([]string{"Metric", "Value"}, data, tw.AlignRight)
}

// Matrix prints m labelled by names on both axes.
func (p *Printer) Matrix(names []string, m *matrix.Dense) error {
	headers := append([]string{""}, names...)
	data := make([][]string, m.Rows())
	for i := range data {
		row, err := m.RowView(i)
		if err != nil {
			return err
		}
		data[i] = make([]string, 0, len(row)+1)
		data[i] = append(data[i], names[i])
		for _, v := range row {
			data[i] = append(data[i], p.float(v))
		}
	}

	return p.render(headers, data, tw.AlignRight)
}
