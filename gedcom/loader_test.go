package gedcom

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/iand/lifespan/longevity"
)

const presidentsGedcom = `0 HEAD
1 CHAR UTF-8
0 @I2@ INDI
1 NAME Joe /Biden/
1 BIRT
2 DATE 20 NOV 1942
2 PLAC Scranton, Pennsylvania
0 @I1@ INDI
1 NAME George /Washington/
1 BIRT
2 DATE 22 FEB 1732
2 PLAC Westmoreland County, Virginia
1 DEAT
2 DATE 14 DEC 1799
2 PLAC Mount Vernon, Virginia
0 @I3@ INDI
1 NAME Martha /Dandridge/
0 TRLR
`

func TestLoad(t *testing.T) {
	l, err := NewLoaderFromReader("test", strings.NewReader(presidentsGedcom))
	if err != nil {
		t.Fatalf("got unexpected error: %v", err)
	}

	ps, err := l.Load()
	if err != nil {
		t.Fatalf("got unexpected error: %v", err)
	}

	type vitals struct {
		Name          string
		Birth         [3]int
		Death         [3]int
		Living        bool
		BirthPlace    string
		DeathLocation string
	}

	want := []vitals{
		{
			Name:          "George Washington",
			Birth:         [3]int{1732, 2, 22},
			Death:         [3]int{1799, 12, 14},
			BirthPlace:    "Westmoreland County, Virginia",
			DeathLocation: "Mount Vernon, Virginia",
		},
		{
			Name:       "Joe Biden",
			Birth:      [3]int{1942, 11, 20},
			Living:     true,
			BirthPlace: "Scranton, Pennsylvania",
		},
	}

	got := make([]vitals, len(ps))
	for i, p := range ps {
		got[i].Name = p.Name
		got[i].BirthPlace = p.BirthPlace
		got[i].DeathLocation = p.DeathLocation
		got[i].Living = p.IsLiving()
		y, m, d, _ := p.BirthDate.YMD()
		got[i].Birth = [3]int{y, m, d}
		if !p.IsLiving() {
			y, m, d, _ := p.DeathDate.YMD()
			got[i].Death = [3]int{y, m, d}
		}
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Load mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadImpreciseBirth(t *testing.T) {
	const data = `0 HEAD
0 @I1@ INDI
1 NAME John /Doe/
1 BIRT
2 DATE ABT 1800
0 TRLR
`
	l, err := NewLoaderFromReader("test", strings.NewReader(data))
	if err != nil {
		t.Fatalf("got unexpected error: %v", err)
	}

	_, err = l.Load()
	var perr *longevity.ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("got error %v, wanted *longevity.ParseError", err)
	}
	if perr.Column != "BIRT" {
		t.Errorf("got column %q, wanted BIRT", perr.Column)
	}
}
