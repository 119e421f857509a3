package data

// HistoricalPoint holds the counts of one structure snapshot
type HistoricalPoint struct {
	Date          string `json:"date"`
	TotalSections int    `json:"total_sections"`
	TotalParts    int    `json:"total_parts"`
}

// HistoricalSeries is a set of snapshots split into parallel series, ascending by date
type HistoricalSeries struct {
	Dates         []string          `json:"dates"`
	SectionCounts []int             `json:"section_counts"`
	PartCounts    []int             `json:"part_counts"`
	Change        *HistoricalChange `json:"change"`
}

// HistoricalChange is the difference between the first and last snapshot
type HistoricalChange struct {
	StartDate            string  `json:"start_date"`
	EndDate              string  `json:"end_date"`
	SectionCountChange   int     `json:"section_count_change"` // Positive = added, negative = removed
	PartCountChange      int     `json:"part_count_change"`
	PercentSectionChange float64 `json:"percent_section_change"`
	PercentPartChange    float64 `json:"percent_part_change"`
}

// NewHistoricalSeries splits points, which must already be sorted, into series
func NewHistoricalSeries(points []*HistoricalPoint) *HistoricalSeries {
	series := EmptyHistoricalSeries()
	for _, point := range points {
		series.Dates = append(series.Dates, point.Date)
		series.SectionCounts = append(series.SectionCounts, point.TotalSections)
		series.PartCounts = append(series.PartCounts, point.TotalParts)
	}
	return series
}

func EmptyHistoricalSeries() *HistoricalSeries {
	return &HistoricalSeries{
		Dates:         []string{},
		SectionCounts: []int{},
		PartCounts:    []int{},
		Change:        &HistoricalChange{},
	}
}

// Len is the number of snapshots in the series
func (s *HistoricalSeries) Len() int {
	return len(s.Dates)
}
