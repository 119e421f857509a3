package service

import (
	"context"
	"fmt"
	"github.com/ambrlytics/ecfr-analyzer/ecfrdata"
	"github.com/ambrlytics/ecfr-analyzer/parser"
	"github.com/gofiber/fiber/v2/log"
	"strings"
)

// Content sources
const (
	ContentSourceStructure = "structure"
	ContentSourceFull      = "full"
	ContentSourceJSON      = "json"
)

// ContentService produces the normalized text of a title
type ContentService struct {
	Client UpstreamClient
	Source string // ContentSourceStructure (default), ContentSourceFull or ContentSourceJSON
}

// GetContent returns the normalized text of a title. In full mode the full
// text XML is used, in json mode every text field of the raw structure body.
// Both fall back to the structure tree when they yield nothing.
func (s *ContentService) GetContent(
	ctx context.Context,
	titleNumber int,
	date string,
	tree *ecfrdata.StructureNode,
) string {
	if s.Source == ContentSourceFull {
		full := s.Client.GetFullXML(ctx, titleNumber, date)
		if full != "" {
			content, err := parser.ExtractXMLText(strings.NewReader(full))
			if err != nil {
				s.logInfo(fmt.Sprintf("Failed to extract full text for title %d: %v", titleNumber, err))
			} else if content != "" {
				return content
			}
		}
		s.logInfo(fmt.Sprintf("Falling back to structure text for title %d", titleNumber))
	}

	if s.Source == ContentSourceJSON {
		if raw := s.Client.GetStructureRaw(ctx, titleNumber, date); raw != nil {
			content, err := parser.ExtractJSONText(raw)
			if err != nil {
				s.logInfo(fmt.Sprintf("Failed to extract JSON text for title %d: %v", titleNumber, err))
			} else if content != "" {
				return content
			}
		}
		s.logInfo(fmt.Sprintf("Falling back to structure text for title %d", titleNumber))
	}

	content := parser.ExtractStructureText(tree)
	s.logInfo(fmt.Sprintf("Extracted %d words from title %d", parser.CountWords(content), titleNumber))
	return content
}

func (s *ContentService) logInfo(message string) {
	log.Info(fmt.Sprintf("Content Process: %v", message))
}
