package md

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/iand/lifespan/render"
)

func TestEncodeTable(t *testing.T) {
	testCases := []struct {
		name  string
		table *render.Table
		want  string
	}{
		{
			name: "caption and rows",
			table: &render.Table{
				Caption: "Top 2",
				Columns: []render.Column{{Label: "NAME"}, {Label: "AGE (years)"}},
				Rows: [][]string{
					{"John Adams", "90"},
					{"A|B", "1"},
				},
			},
			want: "_Top 2_\n\n" +
				"| NAME | AGE (years) |\n" +
				"| --- | --- |\n" +
				"| John Adams | 90 |\n" +
				"| A\\|B | 1 |\n" +
				"\n",
		},
		{
			name: "short row",
			table: &render.Table{
				Columns: []render.Column{{Label: "A"}, {Label: "B"}},
				Rows:    [][]string{{"x"}},
			},
			want: "| A | B |\n" +
				"| --- | --- |\n" +
				"| x |  |\n" +
				"\n",
		},
		{
			name: "escapes markdown",
			table: &render.Table{
				Columns: []render.Column{{Label: "lived_days"}},
			},
			want: "| lived\\_days |\n" +
				"| --- |\n" +
				"\n",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var enc Encoder
			got := enc.EncodeTable(tc.table)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("EncodeTable mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMarkdown(t *testing.T) {
	var enc Encoder
	enc.Heading1("Presidents")
	enc.Para("Some text.")
	enc.UnorderedList([]string{"one", "two"})
	enc.Image("Distribution of Ages", "distribution-of-ages.png")

	want := "# Presidents\n\n" +
		"Some text.\n\n" +
		" - one\n - two\n\n" +
		"![Distribution of Ages](distribution-of-ages.png)\n\n"

	if diff := cmp.Diff(want, enc.Markdown()); diff != "" {
		t.Errorf("Markdown mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteHTML(t *testing.T) {
	var enc Encoder
	enc.Heading1("Presidents")
	enc.Table(&render.Table{
		Columns: []render.Column{{Label: "NAME"}},
		Rows:    [][]string{{"John Adams"}},
	})

	var buf strings.Builder
	if err := enc.WriteHTML(&buf, "A & B"); err != nil {
		t.Fatalf("got unexpected error: %v", err)
	}

	got := buf.String()
	for _, want := range []string{
		"<title>A &amp; B</title>",
		"<h1>Presidents</h1>",
		"<td>John Adams</td>",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("html missing %q\ngot:\n%s", want, got)
		}
	}
}
