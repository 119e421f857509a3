package data

import "fmt"

// RecentCorrectionsLimit is how many corrections the analysis lists
const RecentCorrectionsLimit = 5

// TitleAnalysis is the aggregate report for one title. It is built per request and never stored.
type TitleAnalysis struct {
	TitleNumber    int                 `json:"title_number"`
	Name           string              `json:"name"`
	Structure      *StructureSummary   `json:"structure"`
	Metrics        *Metrics            `json:"metrics"`
	HistoricalData *HistoricalSeries   `json:"historical_data"`
	Versions       *VersionsSummary    `json:"versions"`
	Corrections    *CorrectionsSummary `json:"corrections"`
	Error          string              `json:"error,omitempty"`
}

type StructureSummary struct {
	TotalParts    int     `json:"total_parts"`
	TotalSections int     `json:"total_sections"`
	Parts         []*Part `json:"parts"`
}

type Metrics struct {
	WordCount              int            `json:"word_count"`
	AverageWordsPerSection float64        `json:"average_words_per_section"`
	AgencyWordCounts       map[string]int `json:"agency_word_counts"`
}

type VersionsSummary struct {
	TotalVersions int     `json:"total_versions"`
	LatestUpdate  *string `json:"latest_update"`
}

type CorrectionsSummary struct {
	TotalCorrections  int                 `json:"total_corrections"`
	RecentCorrections []*RecentCorrection `json:"recent_corrections"`
}

// EmptyTitleAnalysis is the zero-valued report returned when analysis fails
func EmptyTitleAnalysis(titleNumber int, err error) *TitleAnalysis {
	analysis := &TitleAnalysis{
		TitleNumber: titleNumber,
		Name:        fmt.Sprintf("Title %d", titleNumber),
		Structure: &StructureSummary{
			Parts: []*Part{},
		},
		Metrics: &Metrics{
			AgencyWordCounts: map[string]int{},
		},
		HistoricalData: EmptyHistoricalSeries(),
		Versions:       &VersionsSummary{},
		Corrections: &CorrectionsSummary{
			RecentCorrections: []*RecentCorrection{},
		},
	}
	if err != nil {
		analysis.Error = err.Error()
	}
	return analysis
}

// SummarizeCorrections lists at most RecentCorrectionsLimit of the given corrections, which must be sorted newest first
func SummarizeCorrections(corrections []*Correction) *CorrectionsSummary {
	summary := &CorrectionsSummary{
		TotalCorrections:  len(corrections),
		RecentCorrections: []*RecentCorrection{},
	}
	for i, correction := range corrections {
		if i >= RecentCorrectionsLimit {
			break
		}
		summary.RecentCorrections = append(summary.RecentCorrections, &RecentCorrection{
			Date:        correction.CorrectionDate,
			Description: correction.CorrectionText,
		})
	}
	return summary
}
