package service

import (
	"context"
	"fmt"
	"github.com/ambrlytics/ecfr-analyzer/ecfrdata"
)

type TitleService struct {
	Client UpstreamClient
}

// ListTitles returns the upstream titles list untouched
func (s *TitleService) ListTitles(ctx context.Context) ([]byte, error) {
	return s.Client.GetTitlesRaw(ctx)
}

// FindTitle looks a title up in the titles list
func (s *TitleService) FindTitle(
	ctx context.Context,
	titleNumber int,
) (*ecfrdata.Title, error) {
	titles, err := s.Client.GetTitles(ctx)
	if err != nil {
		return nil, err
	}

	title := titles.FindTitle(titleNumber)
	if title == nil {
		return nil, fmt.Errorf("title %d not found in titles data", titleNumber)
	}
	return title, nil
}
