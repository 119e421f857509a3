package service

import (
	"context"
	"github.com/ambrlytics/ecfr-analyzer/data"
	"github.com/ambrlytics/ecfr-analyzer/ecfrdata"
	"github.com/google/go-cmp/cmp"
	"strings"
	"testing"
)

func filler(n int) string {
	return strings.TrimSpace(strings.Repeat("word ", n))
}

func testRoster() map[string]*data.Agency {
	return map[string]*data.Agency{
		"A": {ShortName: "A", DisplayName: "Alpha Agency", NameVariations: []string{"Alpha"}, CfrTitles: []int{40}},
		"B": {ShortName: "B", DisplayName: "Beta Bureau", NameVariations: []string{"Beta"}, CfrTitles: []int{7, 40}},
		"C": {ShortName: "C", DisplayName: "Gamma Office", NameVariations: []string{"Gamma"}, CfrTitles: []int{12}},
	}
}

func TestAttributeIsProportional(t *testing.T) {
	// 3 mentions + 27 filler words = 30 words in one segment
	text := "Alpha Beta alpha " + filler(27)

	got := Attribute(text, testRoster(), 40)
	want := map[string]float64{"Alpha Agency": 20, "Beta Bureau": 10}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected attribution (-want +got):\n%s", diff)
	}
}

func TestAttributeAccumulatesAcrossSegments(t *testing.T) {
	text := "§ 1. Alpha " + filler(8) + " § 2. Beta Alpha " + filler(7) + " § 3. " + filler(10)

	got := Attribute(text, testRoster(), 40)
	// Section numbers count as words: segment 1 has 10 words all for Alpha,
	// segment 2 has 10 words split evenly, segment 3 has no mentions
	want := map[string]float64{"Alpha Agency": 15, "Beta Bureau": 5}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected attribution (-want +got):\n%s", diff)
	}
}

func TestAttributeFiltersByTitleAndWholeWords(t *testing.T) {
	text := "Gamma Alphabet Betamax " + filler(7)

	got := Attribute(text, testRoster(), 40)
	if len(got) != 0 {
		t.Fatalf("expected no attribution, got %v", got)
	}

	got = Attribute(text, testRoster(), 12)
	if diff := cmp.Diff(map[string]float64{"Gamma Office": 10}, got); diff != "" {
		t.Fatalf("unexpected attribution (-want +got):\n%s", diff)
	}
}

func TestAttributeEmptyText(t *testing.T) {
	if got := Attribute("", testRoster(), 40); len(got) != 0 {
		t.Fatalf("expected empty attribution, got %v", got)
	}
}

func TestSplitSections(t *testing.T) {
	got := SplitSections("Intro text § 1.1 First §2. Second")
	want := []string{"Intro text ", "§ 1.1 First ", "§2. Second"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected segments (-want +got):\n%s", diff)
	}

	if got := SplitSections("no markers"); len(got) != 1 {
		t.Fatalf("expected one segment, got %v", got)
	}
}

func TestCountWholeWord(t *testing.T) {
	cases := []struct {
		text      string
		variation string
		want      int
	}{
		{"EPA epa Epa", "EPA", 3},
		{"EPAs and theEPA", "EPA", 0},
		{"EPA_x EPA", "EPA", 1},
		{"Department of Agriculture and department of agriculture", "Department of Agriculture", 2},
		{"xa b a b", "a b", 1},
		{"Général Général", "général", 2},
	}
	for _, tc := range cases {
		pattern := variationPatterns([]string{tc.variation})[0]
		if got := CountWholeWord(tc.text, pattern); got != tc.want {
			t.Errorf("CountWholeWord(%q, %q) = %d, want %d", tc.text, tc.variation, got, tc.want)
		}
	}
}

func TestBuildRosterFlattensChildren(t *testing.T) {
	roster := BuildRoster([]ecfrdata.Agency{
		{
			Name:          "Environmental Protection Agency",
			ShortName:     "EPA",
			DisplayName:   "Environmental Protection Agency",
			CfrReferences: []ecfrdata.AgencyCfrRef{{Title: 40}},
			Children: []ecfrdata.Agency{
				{Name: "Office of Air", ShortName: "OAR", DisplayName: "Office of Air, EPA", CfrReferences: []ecfrdata.AgencyCfrRef{{Title: 40, Chapter: "I"}}},
			},
		},
		{Name: "Replacement", ShortName: "EPA", DisplayName: "Replacement"},
	})

	if len(roster) != 2 {
		t.Fatalf("expected 2 agencies, got %d", len(roster))
	}
	if got := roster["EPA"].DisplayName; got != "Replacement" {
		t.Errorf("expected later duplicate to win, got %q", got)
	}
	oar := roster["OAR"]
	if diff := cmp.Diff([]string{"Office of Air", "OAR", "Office of Air, EPA"}, oar.NameVariations); diff != "" {
		t.Errorf("unexpected variations (-want +got):\n%s", diff)
	}
	if !oar.ReferencesTitle(40) || oar.ReferencesTitle(41) {
		t.Errorf("unexpected title references %v", oar.CfrTitles)
	}
}

func TestWordCountsRoundsHalfToEven(t *testing.T) {
	client := &fakeClient{agencies: []ecfrdata.Agency{
		{Name: "Alpha", ShortName: "A-1", DisplayName: "Alpha Agency", CfrReferences: []ecfrdata.AgencyCfrRef{{Title: 40}}},
		{Name: "Beta", ShortName: "B-1", DisplayName: "Beta Bureau", CfrReferences: []ecfrdata.AgencyCfrRef{{Title: 40}}},
	}}
	service := &AgencyAttributionService{Client: client}

	// 5 words shared evenly: 2.5 each rounds to 2
	got := service.WordCounts(context.Background(), 40, "Alpha Beta "+filler(3))
	if diff := cmp.Diff(map[string]int{"Alpha Agency": 2, "Beta Bureau": 2}, got); diff != "" {
		t.Fatalf("unexpected counts (-want +got):\n%s", diff)
	}

	if got := service.WordCounts(context.Background(), 40, ""); got == nil || len(got) != 0 {
		t.Fatalf("expected empty counts for empty content, got %v", got)
	}
}

func TestAttributeSumsSharedDisplayName(t *testing.T) {
	roster := map[string]*data.Agency{
		"A": {ShortName: "A", DisplayName: "Shared Office", NameVariations: []string{"Alpha"}, CfrTitles: []int{40}},
		"B": {ShortName: "B", DisplayName: "Shared Office", NameVariations: []string{"Beta"}, CfrTitles: []int{40}},
	}

	got := Attribute("Alpha Beta "+filler(2), roster, 40)
	if diff := cmp.Diff(map[string]float64{"Shared Office": 4}, got); diff != "" {
		t.Fatalf("unexpected attribution (-want +got):\n%s", diff)
	}
}
