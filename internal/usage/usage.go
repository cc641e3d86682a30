// Package usage renders the help page for a set of argument declarations.
package usage

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/vk/kwargs/internal/registry"
	"github.com/vk/kwargs/internal/resolver"
)

// DefaultDocHint is shown when Page.DocHint is empty.
const DefaultDocHint = "go doc github.com/vk/kwargs/internal/manager"

const cellSep = "  | "

var headers = [4]string{"name", "type", "default value", "description"}

// Page holds the parts of the help page that do not come from declarations.
type Page struct {
	Program  string
	Appendix string
	DocHint  string
}

// Format renders the full usage page: the invocation summary, the help
// keyword line, the argument table and the appendix.
func Format(page Page, specs []registry.Spec) string {
	var b strings.Builder

	docHint := page.DocHint
	if docHint == "" {
		docHint = DefaultDocHint
	}
	fmt.Fprintf(&b, "usage: %s arg0 arg1 ... opt0=value0 opt1=value1 ... -- ... (ignored args)\n\n", page.Program)
	fmt.Fprintf(&b, "  * Either '%s' triggers this help message. For more\n", strings.Join(resolver.HelpKeywords, "', '"))
	fmt.Fprintf(&b, "    information try: '%s'.\n\n", docHint)

	writeTable(&b, specs)

	if page.Appendix != "" {
		b.WriteString("\n")
		b.WriteString(page.Appendix)
	}
	return b.String()
}

// Failure renders the usage page followed by the condition that stopped
// resolution.
func Failure(page Page, specs []registry.Spec, err error) string {
	out := Format(page, specs)
	if !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	return out + fmt.Sprintf("\nerror: %v\n", err)
}

func writeTable(b *strings.Builder, specs []registry.Spec) {
	rows := make([][4]string, len(specs))
	for i, s := range specs {
		rows[i] = [4]string{s.Name, s.Coercer.TypeName(), s.DefaultString(), s.Description}
	}

	var widths [4]int
	for col, h := range headers {
		widths[col] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for col, cell := range row {
			widths[col] = max(widths[col], runewidth.StringWidth(cell))
		}
	}

	// Ordinal gutter, three separators and the four columns.
	total := len("       | ") + 3*len(cellSep)
	for _, w := range widths {
		total += w
	}

	b.WriteString("       | " + joinCells(headers, widths))
	b.WriteString("\n  ")
	b.WriteString(strings.Repeat("-", total-2))
	b.WriteString("\n")

	for i, row := range rows {
		fmt.Fprintf(b, "  %3d  | %s\n", specs[i].Ordinal, joinCells(row, widths))
	}
}

// joinCells pads every cell but the last to its column width.
func joinCells(cells [4]string, widths [4]int) string {
	parts := make([]string, len(cells))
	for i, cell := range cells {
		if i == len(cells)-1 {
			parts[i] = cell
			continue
		}
		parts[i] = runewidth.FillRight(cell, widths[i])
	}
	return strings.Join(parts, cellSep)
}
