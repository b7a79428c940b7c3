package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/gookit/color"
	"github.com/mikey/email-triage/internal/core"
	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"
)

// Format selects how results are rendered
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// ParseFormat validates an output format name
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case FormatTable, FormatJSON, FormatYAML:
		return f, nil
	case "":
		return FormatTable, nil
	default:
		return "", fmt.Errorf("unknown output format %q (table, json, yaml)", name)
	}
}

var priorityStyles = map[string]color.Style{
	"CRÍTICA": color.New(color.FgRed, color.OpBold),
	"ALTA":    color.New(color.FgYellow, color.OpBold),
	"MÉDIA":   color.New(color.FgCyan),
	"BAIXA":   color.New(color.FgGray),
}

// Printer renders analysis results for the terminal
type Printer struct {
	out     io.Writer
	format  Format
	colored bool
}

// NewPrinter creates a printer writing to out
func NewPrinter(out io.Writer, format Format, colored bool) *Printer {
	return &Printer{out: out, format: format, colored: colored}
}

// Print renders one result
func (p *Printer) Print(result *core.AnalysisResult) error {
	switch p.format {
	case FormatJSON:
		enc := json.NewEncoder(p.out)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	case FormatYAML:
		enc := yaml.NewEncoder(p.out)
		enc.SetIndent(2)
		if err := enc.Encode(result); err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
		return enc.Close()
	default:
		return p.table(result)
	}
}

func (p *Printer) table(result *core.AnalysisResult) error {
	table := tablewriter.NewWriter(p.out)
	table.SetHeader([]string{"Campo", "Valor"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	table.AppendBulk([][]string{
		{"Categoria", p.paint(result.Priority, fmt.Sprintf("%s %s (%s)", result.Emoji, result.CategoryName, result.Category))},
		{"Utilidade", fmt.Sprintf("%.0f%%", result.Utility*100)},
		{"Confiança", fmt.Sprintf("%.2f", result.Confidence)},
		{"Útil", yesNo(result.Useful)},
		{"Prioridade", p.paint(result.Priority, result.Priority)},
		{"Departamento", result.Department},
		{"Ação necessária", yesNo(result.RequiresAction)},
		{"Fonte", string(result.Source)},
		{"Protocolo", result.Reference},
		{"Tags", strings.Join(result.Tags, ", ")},
		{"Palavras-chave", strings.Join(result.Keywords, ", ")},
		{"Resumo", result.Summary},
	})
	if sender := senderLine(result.Sender); sender != "" {
		table.Append([]string{"Remetente", sender})
	}
	table.Render()

	_, err := fmt.Fprintf(p.out, "\n%s\n", result.Reply)
	return err
}

func (p *Printer) paint(priority, s string) string {
	if !p.colored {
		return s
	}
	if style, ok := priorityStyles[priority]; ok {
		return style.Render(s)
	}
	return s
}

func senderLine(c core.Contact) string {
	var parts []string
	for _, v := range []string{c.Name, c.Email, c.Phone} {
		if v != "" {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, " / ")
}

func yesNo(b bool) string {
	if b {
		return "sim"
	}
	return "não"
}
