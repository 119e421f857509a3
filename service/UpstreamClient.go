package service

import (
	"context"
	"github.com/ambrlytics/ecfr-analyzer/ecfrdata"
)

// UpstreamClient is the eCFR API as seen by the services. httpclient.ECFRClient implements it.
type UpstreamClient interface {
	GetTitlesRaw(ctx context.Context) ([]byte, error)
	GetTitles(ctx context.Context) (*ecfrdata.TitlesResponse, error)
	GetStructure(ctx context.Context, titleNumber int, date string) *ecfrdata.StructureNode
	GetStructureRaw(ctx context.Context, titleNumber int, date string) []byte
	GetVersions(ctx context.Context, titleNumber int) (*ecfrdata.VersionsResponse, error)
	GetCorrections(ctx context.Context, titleNumber int) []ecfrdata.Correction
	GetFullXML(ctx context.Context, titleNumber int, date string) string
	GetAgencies(ctx context.Context) []ecfrdata.Agency
}
