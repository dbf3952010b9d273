package view

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/muesli/termenv"
)

const (
	colorRed   = lipgloss.Color("9")
	colorGreen = lipgloss.Color("10")
	colorGray  = lipgloss.Color("8")
)

// Printer writes user-facing output: banners, messages and tables.
type Printer struct {
	w    io.Writer
	r    *lipgloss.Renderer
	prod bool

	bold    lipgloss.Style
	errStyl lipgloss.Style
	okStyl  lipgloss.Style
	cell    lipgloss.Style
	header  lipgloss.Style
	border  lipgloss.Style
}

// NewPrinter builds a Printer on w. With color disabled every style renders
// as plain text, which keeps output stable for pipes and tests.
func NewPrinter(w io.Writer, color bool) *Printer {
	r := lipgloss.NewRenderer(w)
	if !color {
		r.SetColorProfile(termenv.Ascii)
	}
	return &Printer{
		w:       w,
		r:       r,
		bold:    r.NewStyle().Bold(true),
		errStyl: r.NewStyle().Foreground(colorRed),
		okStyl:  r.NewStyle().Foreground(colorGreen),
		cell:    r.NewStyle().Padding(0, 1),
		header:  r.NewStyle().Bold(true).Padding(0, 1),
		border:  r.NewStyle().Foreground(colorGray),
	}
}

// SetProd switches the mode banner colour: red for PROD, green for TEST.
func (p *Printer) SetProd(prod bool) {
	p.prod = prod
}

func (p *Printer) Writer() io.Writer {
	return p.w
}

func (p *Printer) Println(a ...any) {
	fmt.Fprintln(p.w, a...)
}

func (p *Printer) Printf(format string, a ...any) {
	fmt.Fprintf(p.w, format, a...)
}

// Mode renders s in the mode colour.
func (p *Printer) Mode(s string) string {
	if p.prod {
		return p.errStyl.Render(s)
	}
	return p.okStyl.Render(s)
}

func (p *Printer) Bold(s string) string {
	return p.bold.Render(s)
}

// Line prints a blank line, then "[<MODE> MODE] <title>" and any extra lines.
func (p *Printer) Line(mode, title string, lines ...string) {
	fmt.Fprintln(p.w)
	fmt.Fprintln(p.w, p.Mode("["+mode+" MODE]"), p.bold.Render(title))
	for _, l := range lines {
		fmt.Fprintln(p.w, l)
	}
}

func (p *Printer) Error(msg string) {
	fmt.Fprintln(p.w, p.errStyl.Render(msg))
}

func (p *Printer) Success(msg string) {
	fmt.Fprintln(p.w, p.okStyl.Render(msg))
}

// Table renders rows with a leading index column; the index is what the user
// types to select an item.
func (p *Printer) Table(rows []Row) {
	if len(rows) == 0 {
		return
	}
	headers := append([]string{"#"}, rows[0].Keys()...)
	data := make([][]string, len(rows))
	for i, row := range rows {
		data[i] = append([]string{strconv.Itoa(i)}, row.Values()...)
	}
	p.render(headers, data)
}

// Record renders a single row vertically as key/value pairs.
func (p *Printer) Record(row Row) {
	data := make([][]string, len(row))
	for i, f := range row {
		data[i] = []string{f.Key, f.Value}
	}
	p.render([]string{"field", "value"}, data)
}

// Compare renders two rows with the same keys side by side, one column each.
func (p *Printer) Compare(leftTitle string, left Row, rightTitle string, right Row) {
	data := make([][]string, len(left))
	for i, f := range left {
		rv, _ := right.Get(f.Key)
		data[i] = []string{strings.ToUpper(f.Key) + ":", f.Value, rv}
	}
	p.render([]string{"field", leftTitle, rightTitle}, data)
}

func (p *Printer) render(headers []string, data [][]string) {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(p.border).
		Headers(headers...).
		Rows(data...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return p.header
			}
			return p.cell
		})
	fmt.Fprintln(p.w, t.String())
}
