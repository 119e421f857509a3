package service

import (
	"context"
	"fmt"
	"github.com/ambrlytics/ecfr-analyzer/concurrent"
	"github.com/ambrlytics/ecfr-analyzer/data"
	"github.com/ambrlytics/ecfr-analyzer/parser"
	"github.com/gofiber/fiber/v2/log"
	"sort"
	"time"
)

// DefaultLookbackMonths is the history window when none is configured
const DefaultLookbackMonths = 60

const dateLayout = "2006-01-02"

// HistoricalService samples a title's structure at its recorded version dates
type HistoricalService struct {
	StructureService *StructureService
	LookbackMonths   int              // months of 30 days, DefaultLookbackMonths when 0
	Now              func() time.Time // time.Now when nil
}

// GetHistoricalChanges fetches a snapshot for every version date inside the
// lookback window and returns section and part counts ascending by date.
// Snapshots that cannot be fetched are skipped.
func (s *HistoricalService) GetHistoricalChanges(
	ctx context.Context,
	titleNumber int,
	versionDates []string,
) *data.HistoricalSeries {
	s.logInfo(fmt.Sprintf("Getting historical data for title %d", titleNumber))

	cutoff := s.Cutoff()
	var relevantDates []string
	for _, date := range versionDates {
		// ISO dates compare correctly as strings
		if date >= cutoff {
			relevantDates = append(relevantDates, date)
		}
	}
	s.logInfo(fmt.Sprintf("Found %d versions since %s", len(relevantDates), cutoff))

	runner := concurrent.NewRunner[string, *data.HistoricalPoint](concurrent.RunnerConfig{
		LogPrefix: fmt.Sprintf("Historical Snapshots (title %d)", titleNumber),
	})

	result := runner.Run(ctx, relevantDates, func(
		ctx context.Context,
		date string,
		report func(string),
	) (*data.HistoricalPoint, error) {
		snapshot, err := s.StructureService.GetStructure(ctx, titleNumber, date)
		if err != nil {
			report(fmt.Sprintf("Failed to get data for %s: %v", date, err))
			return nil, err
		}

		// Raw upstream totals, reserved nodes and empty parts included
		point := &data.HistoricalPoint{
			Date:          date,
			TotalSections: parser.CountAllSections(snapshot.Tree),
			TotalParts:    parser.CountAllParts(snapshot.Tree),
		}
		report(fmt.Sprintf("Got data for %s: %d sections, %d parts", date, point.TotalSections, point.TotalParts))
		return point, nil
	})

	points := result.Results
	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Date < points[j].Date
	})

	s.logInfo(fmt.Sprintf("Collected %d historical data points", len(points)))
	return data.NewHistoricalSeries(points)
}

// Cutoff is the earliest version date inside the lookback window
func (s *HistoricalService) Cutoff() string {
	months := s.LookbackMonths
	if months <= 0 {
		months = DefaultLookbackMonths
	}
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	return now().AddDate(0, 0, -30*months).Format(dateLayout)
}

func (s *HistoricalService) logInfo(message string) {
	log.Info(fmt.Sprintf("Historical Process: %v", message))
}
