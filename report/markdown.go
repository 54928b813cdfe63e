package report

import (
	"fmt"
	"io"

	"github.com/iand/lifespan/render/md"
	"github.com/iand/lifespan/text"
)

const markdownTitle = "U.S. Presidents' Longevity"

// Narrative summarises the extremes of the ranking in prose.
func Narrative(v *Views) string {
	if len(v.Ranked) == 0 {
		return ""
	}

	longest := v.Ranked[0]
	shortest := v.Ranked[len(v.Ranked)-1]

	s := fmt.Sprintf("%s lived the longest, %s.", longest.Name, text.CardinalWithUnit(longest.LivedYears, "year", "years"))
	if len(v.Ranked) > 1 {
		s = text.AppendSentence(s, fmt.Sprintf("%s lived the shortest, %s.", shortest.Name, text.CardinalWithUnit(shortest.LivedYears, "year", "years")))
	}

	if len(v.Living) > 0 {
		names := make([]string, len(v.Living))
		for i, r := range v.Living {
			names[i] = r.Name
		}
		verb := "is"
		if len(names) > 1 {
			verb = "are"
		}
		s = text.AppendSentence(s, fmt.Sprintf("%s %s still living.", text.JoinList(names), verb))
	}

	return s
}

// EncodeMarkdown writes the report as a markdown document. Images maps plot
// titles to image paths relative to the document.
func EncodeMarkdown(v *Views, images map[string]string) string {
	return encodeReport(v, images).Markdown()
}

// WriteHTML writes the markdown report converted to a standalone HTML page.
func WriteHTML(w io.Writer, v *Views, images map[string]string) error {
	return encodeReport(v, images).WriteHTML(w, markdownTitle)
}

func encodeReport(v *Views, images map[string]string) *md.Encoder {
	enc := new(md.Encoder)
	enc.Heading1(markdownTitle)

	if n := Narrative(v); n != "" {
		enc.Para(n)
	}

	enc.Table(v.All)
	enc.Table(v.Longest)
	enc.Table(v.Shortest)
	enc.Table(v.Measures)

	enc.Heading2(v.Distribution.Title)
	if path, ok := images[v.Distribution.Title]; ok {
		enc.Image(v.Distribution.Title, path)
	}
	var buckets []string
	for _, b := range v.Distribution.Buckets {
		buckets = append(buckets, fmt.Sprintf("%g-%g: %d", b.Lower, b.Upper, b.Count))
	}
	enc.UnorderedList(buckets)

	if len(v.Flagged) > 0 {
		enc.Heading2("Anomalies")
		var items []string
		for _, r := range v.Flagged {
			for _, a := range r.Anomalies {
				items = append(items, fmt.Sprintf("%s (%s): %s", enc.EncodeBold(a.Context), a.Category, a.Text))
			}
		}
		enc.UnorderedList(items)
	}

	return enc
}
