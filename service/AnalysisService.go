package service

import (
	"context"
	"fmt"
	"github.com/ambrlytics/ecfr-analyzer/data"
	"github.com/ambrlytics/ecfr-analyzer/parser"
	"github.com/gofiber/fiber/v2/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"math"
	"runtime/debug"
)

// AnalysisService runs the whole per-title pipeline. Every step is sequential.
type AnalysisService struct {
	Client                   UpstreamClient
	TitleService             *TitleService
	StructureService         *StructureService
	ContentService           *ContentService
	AgencyAttributionService *AgencyAttributionService
	CorrectionService        *CorrectionService
	HistoricalService        *HistoricalService
	ChangeTrackingService    *ChangeTrackingService
	Tracer                   trace.Tracer // global tracer when nil
}

// Analyze builds the report of a title. It never fails: any error, including
// a panic, yields the zero-valued report carrying the error message.
func (s *AnalysisService) Analyze(
	ctx context.Context,
	titleNumber int,
) (analysis *data.TitleAnalysis) {
	ctx, span := s.tracer().Start(ctx, "AnalysisService.Analyze",
		trace.WithAttributes(attribute.Int("title.number", titleNumber)))
	defer span.End()

	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("unexpected failure analyzing title %d: %v", titleNumber, r)
			s.logError(fmt.Sprintf("%v\n%s", err, debug.Stack()))
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			analysis = data.EmptyTitleAnalysis(titleNumber, err)
		}
	}()

	s.logInfo(fmt.Sprintf("Starting analysis for title %d", titleNumber))

	analysis, err := s.analyze(ctx, span, titleNumber)
	if err != nil {
		s.logError(fmt.Sprintf("Error analyzing title %d: %v", titleNumber, err))
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return data.EmptyTitleAnalysis(titleNumber, err)
	}

	s.logInfo(fmt.Sprintf("Finished analysis for title %d", titleNumber))
	return analysis
}

func (s *AnalysisService) analyze(
	ctx context.Context,
	span trace.Span,
	titleNumber int,
) (*data.TitleAnalysis, error) {
	// Latest update date. A failed lookup only leaves the date empty here,
	// the structure step below turns it into a failure.
	var latestUpdate *string
	var versionDates []string
	title, lookupErr := s.TitleService.FindTitle(ctx, titleNumber)
	if lookupErr != nil {
		s.logInfo(fmt.Sprintf("Could not determine latest update date: %v", lookupErr))
	} else {
		if title.LatestIssueDate != "" {
			latestUpdate = &title.LatestIssueDate
		}
		versionDates = title.VersionDates
	}
	span.AddEvent("title.lookup")

	// Structure
	if latestUpdate == nil {
		if lookupErr != nil {
			return nil, fmt.Errorf("could not fetch title structure: %w", lookupErr)
		}
		return nil, fmt.Errorf("could not fetch title structure: no latest issue date for title %d", titleNumber)
	}
	snapshot, err := s.StructureService.GetStructure(ctx, titleNumber, *latestUpdate)
	if err != nil {
		return nil, fmt.Errorf("could not fetch title structure: %w", err)
	}
	structure := snapshot.Parsed
	span.AddEvent("structure.parsed", trace.WithAttributes(
		attribute.Int("structure.total_sections", structure.TotalSections),
		attribute.Int("structure.total_parts", structure.TotalParts),
	))

	// Content and word metrics
	content := s.ContentService.GetContent(ctx, titleNumber, *latestUpdate, snapshot.Tree)
	wordCount := parser.CountWords(content)
	averageWords := AverageWordsPerSection(wordCount, structure.TotalSections)
	span.AddEvent("content.counted", trace.WithAttributes(attribute.Int("content.word_count", wordCount)))

	// Agency attribution
	agencyCounts := s.AgencyAttributionService.WordCounts(ctx, titleNumber, content)
	span.AddEvent("agencies.attributed")

	s.logInfo(fmt.Sprintf("Word count: %d", wordCount))
	s.logInfo(fmt.Sprintf("Total sections: %d", structure.TotalSections))
	s.logInfo(fmt.Sprintf("Average words per section: %v", averageWords))

	// Versions must be reachable, the payload itself is not part of the report
	if _, err := s.Client.GetVersions(ctx, titleNumber); err != nil {
		return nil, err
	}
	span.AddEvent("versions.fetched")

	corrections := s.CorrectionService.GetCorrections(ctx, titleNumber)
	span.AddEvent("corrections.fetched")

	history := s.HistoricalService.GetHistoricalChanges(ctx, titleNumber, versionDates)
	history.Change = s.ChangeTrackingService.Compute(history)
	span.AddEvent("history.collected", trace.WithAttributes(attribute.Int("history.points", history.Len())))

	return &data.TitleAnalysis{
		TitleNumber: titleNumber,
		Name:        structure.Name,
		Structure: &data.StructureSummary{
			TotalParts:    structure.TotalParts,
			TotalSections: structure.TotalSections,
			Parts:         structure.Parts,
		},
		Metrics: &data.Metrics{
			WordCount:              wordCount,
			AverageWordsPerSection: averageWords,
			AgencyWordCounts:       agencyCounts,
		},
		HistoricalData: history,
		Versions: &data.VersionsSummary{
			TotalVersions: history.Len(),
			LatestUpdate:  latestUpdate,
		},
		Corrections: data.SummarizeCorrections(corrections),
	}, nil
}

// AverageWordsPerSection divides by the section count, treating 0 sections as 1,
// rounded to 2 decimals
func AverageWordsPerSection(wordCount int, totalSections int) float64 {
	if totalSections < 1 {
		totalSections = 1
	}
	return math.Round(float64(wordCount)/float64(totalSections)*100) / 100
}

func (s *AnalysisService) tracer() trace.Tracer {
	if s.Tracer != nil {
		return s.Tracer
	}
	return otel.Tracer("github.com/ambrlytics/ecfr-analyzer/service")
}

func (s *AnalysisService) logInfo(message string) {
	log.Info(fmt.Sprintf("Analysis Process: %v", message))
}

func (s *AnalysisService) logError(message string) {
	log.Error(fmt.Sprintf("Analysis Process: %v", message))
}
