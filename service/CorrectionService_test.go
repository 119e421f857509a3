package service

import (
	"context"
	"github.com/ambrlytics/ecfr-analyzer/data"
	"github.com/ambrlytics/ecfr-analyzer/ecfrdata"
	"github.com/google/go-cmp/cmp"
	"testing"
)

func TestGetCorrectionsSortedNewestFirst(t *testing.T) {
	client := &fakeClient{corrections: []ecfrdata.Correction{
		{ErrorCorrected: "2022-03-01", CorrectiveAction: "Amended", CfrReferences: []ecfrdata.CorrectionCfrRef{{CfrReference: "40 CFR 50.1"}}, FrCitation: "87 FR 1", ErrorOccurred: "2022-01-01"},
		{ErrorCorrected: "2023-07-15", CorrectiveAction: "Removed", CfrReferences: []ecfrdata.CorrectionCfrRef{{CfrReference: "40 CFR 52.2"}, {CfrReference: "40 CFR 52.3"}}},
		{ErrorCorrected: "2021-11-30", CorrectiveAction: "Revised"},
	}}

	got := (&CorrectionService{Client: client}).GetCorrections(context.Background(), 40)
	want := []*data.Correction{
		{CorrectionDate: "2023-07-15", CorrectionText: "Removed - 40 CFR 52.2"},
		{CorrectionDate: "2022-03-01", CorrectionText: "Amended - 40 CFR 50.1", FrCitation: "87 FR 1", ErrorOccurred: "2022-01-01"},
		{CorrectionDate: "2021-11-30", CorrectionText: "Revised - "},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected corrections (-want +got):\n%s", diff)
	}
}

func TestSummarizeCorrectionsKeepsFive(t *testing.T) {
	var corrections []*data.Correction
	for i := 0; i < 7; i++ {
		corrections = append(corrections, &data.Correction{CorrectionDate: "2024-01-0" + string(rune('1'+i)), CorrectionText: "fix"})
	}

	summary := data.SummarizeCorrections(corrections)
	if summary.TotalCorrections != 7 || len(summary.RecentCorrections) != data.RecentCorrectionsLimit {
		t.Fatalf("unexpected summary %+v", summary)
	}
	if summary.RecentCorrections[0].Date != "2024-01-01" || summary.RecentCorrections[0].Description != "fix" {
		t.Fatalf("unexpected first correction %+v", summary.RecentCorrections[0])
	}
}
