package service

import (
	"context"
	"fmt"
	"github.com/ambrlytics/ecfr-analyzer/data"
	"github.com/ambrlytics/ecfr-analyzer/ecfrdata"
	"github.com/ambrlytics/ecfr-analyzer/parser"
)

type StructureService struct {
	Client UpstreamClient
}

// StructureSnapshot is a structure tree together with its summary
type StructureSnapshot struct {
	Date   string
	Tree   *ecfrdata.StructureNode
	Parsed *data.ParsedStructure
}

// GetStructure fetches and parses the structure of a title at a date
func (s *StructureService) GetStructure(
	ctx context.Context,
	titleNumber int,
	date string,
) (*StructureSnapshot, error) {
	if date == "" {
		return nil, fmt.Errorf("no valid date found for title %d", titleNumber)
	}

	tree := s.Client.GetStructure(ctx, titleNumber, date)
	if tree == nil {
		return nil, fmt.Errorf("no structure for title %d at %s", titleNumber, date)
	}

	return &StructureSnapshot{
		Date:   date,
		Tree:   tree,
		Parsed: parser.ParseStructure(tree),
	}, nil
}
