package md

import (
	"fmt"
	"io"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"
)

// Text is a piece of markdown encoded text
type Text string

func (m Text) String() string { return string(m) }
func (m Text) IsZero() bool   { return m == "" }

func (m Text) ToHTML(w io.Writer) error {
	if err := md.Convert([]byte(m), w); err != nil {
		return fmt.Errorf("goldmark: %v", err)
	}

	return nil
}

var md = goldmark.New(
	goldmark.WithExtensions(extension.Table),
	goldmark.WithRendererOptions(
		html.WithUnsafe(),
	),
)

// WriteHTML writes the encoded document as a standalone HTML page.
func (e *Encoder) WriteHTML(w io.Writer, title string) error {
	if _, err := fmt.Fprintf(w, "<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<title>%s</title>\n</head>\n<body>\n", util.EscapeHTML([]byte(title))); err != nil {
		return err
	}
	if err := Text(e.Markdown()).ToHTML(w); err != nil {
		return err
	}
	_, err := io.WriteString(w, "</body>\n</html>\n")
	return err
}
