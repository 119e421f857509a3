package service

import (
	"context"
	"fmt"
	"github.com/ambrlytics/ecfr-analyzer/data"
	"github.com/gofiber/fiber/v2/log"
	"sort"
)

type CorrectionService struct {
	Client UpstreamClient
}

// GetCorrections returns the corrections of a title, most recently corrected first
func (s *CorrectionService) GetCorrections(
	ctx context.Context,
	titleNumber int,
) []*data.Correction {
	s.logInfo(fmt.Sprintf("Fetching corrections for title %d", titleNumber))

	raw := s.Client.GetCorrections(ctx, titleNumber)
	sort.SliceStable(raw, func(i, j int) bool {
		return raw[i].ErrorCorrected > raw[j].ErrorCorrected
	})

	corrections := make([]*data.Correction, 0, len(raw))
	for _, correction := range raw {
		reference := ""
		if len(correction.CfrReferences) > 0 {
			reference = correction.CfrReferences[0].CfrReference
		}

		corrections = append(corrections, &data.Correction{
			CorrectionDate: correction.ErrorCorrected,
			CorrectionText: fmt.Sprintf("%s - %s", correction.CorrectiveAction, reference),
			FrCitation:     correction.FrCitation,
			ErrorOccurred:  correction.ErrorOccurred,
		})
	}

	s.logInfo(fmt.Sprintf("Found %d corrections", len(corrections)))
	return corrections
}

func (s *CorrectionService) logInfo(message string) {
	log.Info(fmt.Sprintf("Correction Process: %v", message))
}
