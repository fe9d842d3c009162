package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/de-tools/growth-atlas/pkg/adapters"
	"github.com/de-tools/growth-atlas/pkg/models/domain"
	"github.com/de-tools/growth-atlas/pkg/store/ledger"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v2"
)

type Format string

const (
	FormatTable Format = "table"
	FormatPlain Format = "plain"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

var Formats = []Format{FormatTable, FormatPlain, FormatJSON, FormatYAML}

func ParseFormat(s string) (Format, error) {
	for _, f := range Formats {
		if strings.EqualFold(s, string(f)) {
			return f, nil
		}
	}
	return "", fmt.Errorf("unsupported output format %q, supported formats: %v", s, Formats)
}

// Projection is a completed run that can be reported.
type Projection interface {
	Report() *domain.Report
	Ledger() *ledger.Ledger
}

type TableConfig struct {
	YearWidth  int
	ValueWidth int
}

func DefaultTableConfig() TableConfig {
	return TableConfig{
		YearWidth:  6,
		ValueWidth: 16,
	}
}

type Reporter struct {
	writer  io.Writer
	config  TableConfig
	format  Format
	printer *message.Printer
}

type Option func(*Reporter)

func WithFormat(format Format) Option {
	return func(r *Reporter) {
		r.format = format
	}
}

// WithLocale sets the language used for number formatting in tables.
func WithLocale(tag language.Tag) Option {
	return func(r *Reporter) {
		r.printer = message.NewPrinter(tag)
	}
}

func NewReporter(writer io.Writer, opts ...Option) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	r := &Reporter{
		writer:  writer,
		config:  DefaultTableConfig(),
		format:  FormatTable,
		printer: message.NewPrinter(language.English),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (c *Reporter) Handle(p Projection) error {
	switch c.format {
	case FormatPlain:
		return c.handlePlain(p)
	case FormatJSON:
		enc := json.NewEncoder(c.writer)
		enc.SetIndent("", "  ")
		return enc.Encode(adapters.MapDomainReportToAPIProjection(p.Report()))
	case FormatYAML:
		out, err := yaml.Marshal(adapters.MapDomainReportToAPIProjection(p.Report()))
		if err != nil {
			return fmt.Errorf("failed to marshal report: %w", err)
		}
		_, err = c.writer.Write(out)
		return err
	default:
		return c.handleTable(p.Report())
	}
}

func (c *Reporter) handlePlain(p Projection) error {
	report := p.Report()
	if err := c.PrintInitial(report.Parameters); err != nil {
		return err
	}
	if err := c.PrintLedger(p.Ledger()); err != nil {
		return err
	}
	return c.PrintCumulative(report.Cumulative)
}

// PrintInitial writes the parameters a run started from.
func (c *Reporter) PrintInitial(params domain.Parameters) error {
	_, err := fmt.Fprintf(c.writer, "Initial Capital: %5.2f\nInterest Rate: %3.5f\n",
		params.InitialCapital, params.InterestMultiplier-1.0)
	return err
}

// PrintLedger writes a label row followed by every stored year.
func (c *Reporter) PrintLedger(l *ledger.Ledger) error {
	if _, err := fmt.Fprintln(c.writer, " Year: Total || Growth || Interest || Contribution"); err != nil {
		return err
	}
	return l.PrintAll(c.writer)
}

func (c *Reporter) PrintCumulative(totals domain.CumulativeTotals) error {
	_, err := fmt.Fprintf(c.writer,
		"-----------------Cumulative------------------------------\n"+
			"Total || Growth || Interest || Contribution\n"+
			"%5.2f || %5.2f || %5.2f || %5.2f\n",
		totals.FinalTotal, totals.Growth(), totals.Interest, totals.Contribution)
	return err
}

func (c *Reporter) handleTable(report *domain.Report) error {
	funcMap := template.FuncMap{
		"money": func(v float64) string {
			return c.printer.Sprintf("%.2f", v)
		},
		"percent": func(v float64) string {
			return c.printer.Sprintf("%.3f%%", v*100)
		},
		"header": func(label string) string {
			return fmt.Sprintf("| %-*s | %*s | %*s | %*s | %*s |",
				c.config.YearWidth, label,
				c.config.ValueWidth, "Total",
				c.config.ValueWidth, "Growth",
				c.config.ValueWidth, "Interest",
				c.config.ValueWidth, "Contribution")
		},
		"row": func(label string, total, growth, interest, contribution float64) string {
			return fmt.Sprintf("| %-*s | %*s | %*s | %*s | %*s |",
				c.config.YearWidth, label,
				c.config.ValueWidth, c.printer.Sprintf("%.2f", total),
				c.config.ValueWidth, c.printer.Sprintf("%.2f", growth),
				c.config.ValueWidth, c.printer.Sprintf("%.2f", interest),
				c.config.ValueWidth, c.printer.Sprintf("%.2f", contribution))
		},
		"year": func(year int) string {
			return fmt.Sprintf("%d", year)
		},
		"separator": func() string {
			value := strings.Repeat("-", c.config.ValueWidth+2)
			return fmt.Sprintf("+%s+%s+%s+%s+%s+",
				strings.Repeat("-", c.config.YearWidth+2), value, value, value, value)
		},
	}

	tmpl := `
{{.Title}}
Run: {{.RunID}}

Initial Capital:     {{money .Parameters.InitialCapital}}
Interest Rate:       {{percent .InterestRate}}
Yearly Contribution: {{money .Parameters.YearlyContribution}}

{{separator}}
{{header "Year"}}
{{separator}}
{{range .Rows}}{{row (year .Year) .Total .Growth .InterestEarned .Contribution}}
{{end}}{{separator}}

=== Cumulative ({{.Cumulative.Years}} years) ===
{{separator}}
{{header ""}}
{{separator}}
{{with .Cumulative}}{{row "" .FinalTotal .Growth .Interest .Contribution}}{{end}}
{{separator}}
`

	t, err := template.New("report").Funcs(funcMap).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, report)
}
