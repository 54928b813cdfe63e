package render

import (
	"fmt"
	"image/color"
	"io"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers"
)

// Column describes one column of a Table.
type Column struct {
	Label string
	Fill  color.Color // background of the column's data cells, nil for none
}

// Table is a captioned grid of text. Every row should have one cell per column;
// missing cells are drawn empty.
type Table struct {
	Caption string
	Columns []Column
	Rows    [][]string
}

// TableRenderer draws tables as PNG images.
type TableRenderer struct {
	FontFile     string
	BoldFontFile string
	FontSize     float64     // points
	Padding      float64     // space around cell text, in mm
	Resolution   float64     // dots per mm of the output image
	LineColor    color.Color // cell borders
	HeaderFill   color.Color // background of the header row
}

func NewTableRenderer(fontFile, boldFontFile string, fontSize float64) *TableRenderer {
	return &TableRenderer{
		FontFile:     fontFile,
		BoldFontFile: boldFontFile,
		FontSize:     fontSize,
		Padding:      1.5,
		Resolution:   8,
		LineColor:    color.RGBA{0xcc, 0xcc, 0xcc, 0xff},
		HeaderFill:   color.RGBA{0xf2, 0xf2, 0xf2, 0xff},
	}
}

// measureFunc reports the width and height in mm of a line of text.
type measureFunc func(s string, bold bool) (float64, float64)

type tableLayout struct {
	ColWidths     []float64
	RowHeight     float64
	CaptionHeight float64
	Width         float64
	Height        float64
}

func layoutTable(t *Table, measure measureFunc, padding float64) tableLayout {
	var lay tableLayout
	lay.ColWidths = make([]float64, len(t.Columns))

	fit := func(i int, s string, bold bool) {
		w, h := measure(s, bold)
		if w+2*padding > lay.ColWidths[i] {
			lay.ColWidths[i] = w + 2*padding
		}
		if h+2*padding > lay.RowHeight {
			lay.RowHeight = h + 2*padding
		}
	}

	for i, c := range t.Columns {
		fit(i, c.Label, true)
	}
	for _, row := range t.Rows {
		for i := range t.Columns {
			if i < len(row) {
				fit(i, row[i], false)
			}
		}
	}

	for _, w := range lay.ColWidths {
		lay.Width += w
	}

	if t.Caption != "" {
		w, h := measure(t.Caption, true)
		lay.CaptionHeight = h + 2*padding
		if w+2*padding > lay.Width {
			// widen the last column so the caption fits
			if n := len(lay.ColWidths); n > 0 {
				lay.ColWidths[n-1] += w + 2*padding - lay.Width
			}
			lay.Width = w + 2*padding
		}
	}

	lay.Height = lay.CaptionHeight + lay.RowHeight*float64(len(t.Rows)+1)
	return lay
}

// Render draws t and writes it to w as a PNG image.
func (tr *TableRenderer) Render(w io.Writer, t *Table) error {
	if len(t.Columns) == 0 {
		return fmt.Errorf("table has no columns")
	}

	ff, err := loadFontFamily("table", tr.FontFile, tr.BoldFontFile)
	if err != nil {
		return err
	}
	regular := ff.Face(tr.FontSize, canvas.Black, canvas.FontRegular, canvas.FontNormal)
	bold := ff.Face(tr.FontSize, canvas.Black, canvas.FontBold, canvas.FontNormal)

	measure := func(s string, isBold bool) (float64, float64) {
		face := regular
		if isBold {
			face = bold
		}
		// measure a full height line so empty cells keep the row height
		_, h := boundsOf(canvas.NewTextLine(face, "Ag", canvas.Left))
		w, _ := boundsOf(canvas.NewTextLine(face, s, canvas.Left))
		return w, h
	}

	lay := layoutTable(t, measure, tr.Padding)

	c := canvas.New(lay.Width, lay.Height)
	ctx := canvas.NewContext(c)

	ctx.SetFillColor(canvas.White)
	ctx.SetStrokeColor(canvas.Transparent)
	ctx.DrawPath(0, 0, canvas.Rectangle(lay.Width, lay.Height))

	drawCell := func(x, y, width float64, fill color.Color, face *canvas.FontFace, s string, align canvas.TextAlign) {
		ctx.Push()
		if fill == nil {
			fill = canvas.Transparent
		}
		ctx.SetFillColor(fill)
		ctx.SetStrokeColor(tr.LineColor)
		ctx.SetStrokeWidth(0.2)

		var p canvas.Path
		p.MoveTo(x, lay.Height-y)
		p.LineTo(x, lay.Height-(y+lay.RowHeight))
		p.LineTo(x+width, lay.Height-(y+lay.RowHeight))
		p.LineTo(x+width, lay.Height-y)
		p.Close()
		ctx.DrawPath(0, 0, &p)
		ctx.Pop()

		rt := canvas.NewRichText(face)
		rt.SetFace(face)
		rt.WriteString(s)
		ctx.DrawText(x+tr.Padding, lay.Height-(y+tr.Padding), rt.ToText(width-2*tr.Padding, 0, align, canvas.Top, 0.0, 0.0))
	}

	y := 0.0
	if t.Caption != "" {
		rt := canvas.NewRichText(bold)
		rt.SetFace(bold)
		rt.WriteString(t.Caption)
		ctx.DrawText(tr.Padding, lay.Height-(y+tr.Padding), rt.ToText(lay.Width-2*tr.Padding, 0, canvas.Center, canvas.Top, 0.0, 0.0))
		y += lay.CaptionHeight
	}

	x := 0.0
	for i, col := range t.Columns {
		drawCell(x, y, lay.ColWidths[i], tr.HeaderFill, bold, col.Label, canvas.Center)
		x += lay.ColWidths[i]
	}
	y += lay.RowHeight

	for _, row := range t.Rows {
		x = 0.0
		for i, col := range t.Columns {
			var s string
			if i < len(row) {
				s = row[i]
			}
			drawCell(x, y, lay.ColWidths[i], col.Fill, regular, s, canvas.Left)
			x += lay.ColWidths[i]
		}
		y += lay.RowHeight
	}

	if err := renderers.PNG(canvas.DPMM(tr.Resolution))(w, c); err != nil {
		return fmt.Errorf("write png: %w", err)
	}
	return nil
}

func boundsOf(t *canvas.Text) (float64, float64) {
	b := t.Bounds()
	return b.W, b.H
}
