package service

import (
	"fmt"
	"github.com/ambrlytics/ecfr-analyzer/data"
	"github.com/gofiber/fiber/v2/log"
)

// ChangeTrackingService reduces a historical series to the change between its ends
type ChangeTrackingService struct{}

// Compute returns the change from the first to the last point of the series.
// Fewer than two points yield a zero change.
func (s *ChangeTrackingService) Compute(series *data.HistoricalSeries) *data.HistoricalChange {
	change := &data.HistoricalChange{}
	if series == nil || series.Len() < 2 {
		return change
	}

	first, last := 0, series.Len()-1
	change.StartDate = series.Dates[first]
	change.EndDate = series.Dates[last]
	change.SectionCountChange = series.SectionCounts[last] - series.SectionCounts[first]
	change.PartCountChange = series.PartCounts[last] - series.PartCounts[first]
	change.PercentSectionChange = percentChange(series.SectionCounts[first], change.SectionCountChange)
	change.PercentPartChange = percentChange(series.PartCounts[first], change.PartCountChange)

	s.logInfo(fmt.Sprintf("%s to %s: %d sections changed, %d parts changed",
		change.StartDate,
		change.EndDate,
		change.SectionCountChange,
		change.PartCountChange))

	return change
}

func percentChange(start int, delta int) float64 {
	if start <= 0 {
		return 0
	}
	return float64(delta) / float64(start) * 100
}

func (s *ChangeTrackingService) logInfo(message string) {
	log.Info(fmt.Sprintf("Change Tracking Process: %v", message))
}
