package md

import (
	"bufio"
	"io"
	"strings"

	"github.com/iand/lifespan/render"
)

// Encoder builds a markdown document.
type Encoder struct {
	main strings.Builder
}

func (e *Encoder) Markdown() string {
	s := new(strings.Builder)
	e.WriteMarkdown(s)
	return s.String()
}

func (e *Encoder) WriteMarkdown(w io.Writer) error {
	bw := bufio.NewWriter(w)
	bw.WriteString(strings.TrimLeft(e.main.String(), "\n"))
	return bw.Flush()
}

func (e *Encoder) RawMarkdown(s string) {
	e.main.WriteString(s)
}

func (e *Encoder) Heading1(s string) {
	e.writeHeading(&e.main, "#", s)
}

func (e *Encoder) Heading2(s string) {
	e.writeHeading(&e.main, "##", s)
}

func (e *Encoder) writeHeading(buf io.StringWriter, marker string, s string) {
	buf.WriteString("\n")
	buf.WriteString(marker + " " + s)
	buf.WriteString("\n\n")
}

func (e *Encoder) Para(s string) {
	e.writePara(&e.main, s)
}

func (e *Encoder) EncodePara(s string) string {
	buf := new(strings.Builder)
	e.writePara(buf, s)
	return buf.String()
}

func (e *Encoder) writePara(buf io.StringWriter, s string) {
	buf.WriteString(s)
	buf.WriteString("\n\n")
}

func (e *Encoder) EncodeItalic(s string) string {
	return "_" + s + "_"
}

func (e *Encoder) EncodeBold(s string) string {
	return "**" + s + "**"
}

func (e *Encoder) UnorderedList(items []string) {
	for _, item := range items {
		e.main.WriteString(" - " + item + "\n")
	}
	e.main.WriteString("\n")
}

// Image embeds an image by relative path.
func (e *Encoder) Image(alt string, path string) {
	e.main.WriteString("![" + escapeText(alt) + "](" + path + ")\n\n")
}

// Table writes t as a pipe table preceded by its caption in italics.
func (e *Encoder) Table(t *render.Table) {
	e.main.WriteString(e.EncodeTable(t))
}

func (e *Encoder) EncodeTable(t *render.Table) string {
	buf := new(strings.Builder)
	if t.Caption != "" {
		e.writePara(buf, e.EncodeItalic(escapeText(t.Caption)))
	}
	if len(t.Columns) == 0 {
		return buf.String()
	}

	labels := make([]string, len(t.Columns))
	rules := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		labels[i] = escapeCell(c.Label)
		rules[i] = "---"
	}
	writeRow(buf, labels)
	writeRow(buf, rules)

	for _, row := range t.Rows {
		cells := make([]string, len(t.Columns))
		for i := range t.Columns {
			if i < len(row) {
				cells[i] = escapeCell(row[i])
			}
		}
		writeRow(buf, cells)
	}
	buf.WriteString("\n")
	return buf.String()
}

func writeRow(buf io.StringWriter, cells []string) {
	buf.WriteString("| " + strings.Join(cells, " | ") + " |\n")
}

var textEscaper = strings.NewReplacer("*", "\\*", "_", "\\_", "[", "\\[", "]", "\\]")

func escapeText(s string) string {
	return textEscaper.Replace(s)
}

func escapeCell(s string) string {
	return strings.ReplaceAll(escapeText(strings.ReplaceAll(s, "\n", " ")), "|", "\\|")
}
