package service

import (
	"context"
	"errors"
	"github.com/ambrlytics/ecfr-analyzer/ecfrdata"
)

// fakeClient serves canned upstream data. Nil fields behave like failed requests.
type fakeClient struct {
	titles          *ecfrdata.TitlesResponse
	structures      map[string]*ecfrdata.StructureNode // keyed by date
	structureBodies map[string][]byte                  // raw structure bodies, keyed by date
	versions        *ecfrdata.VersionsResponse
	corrections     []ecfrdata.Correction
	fullXML         string
	agencies        []ecfrdata.Agency

	structureCalls []string
}

func (c *fakeClient) GetTitlesRaw(ctx context.Context) ([]byte, error) {
	if c.titles == nil {
		return nil, errors.New("failed to fetch titles: unavailable")
	}
	return []byte(`{"titles":[]}`), nil
}

func (c *fakeClient) GetTitles(ctx context.Context) (*ecfrdata.TitlesResponse, error) {
	if c.titles == nil {
		return nil, errors.New("failed to fetch titles: unavailable")
	}
	return c.titles, nil
}

func (c *fakeClient) GetStructure(ctx context.Context, titleNumber int, date string) *ecfrdata.StructureNode {
	c.structureCalls = append(c.structureCalls, date)
	return c.structures[date]
}

func (c *fakeClient) GetStructureRaw(ctx context.Context, titleNumber int, date string) []byte {
	if raw, ok := c.structureBodies[date]; ok {
		return raw
	}
	return nil
}

func (c *fakeClient) GetVersions(ctx context.Context, titleNumber int) (*ecfrdata.VersionsResponse, error) {
	if c.versions == nil {
		return nil, errors.New("failed to fetch title versions: unavailable")
	}
	return c.versions, nil
}

func (c *fakeClient) GetCorrections(ctx context.Context, titleNumber int) []ecfrdata.Correction {
	if c.corrections == nil {
		return []ecfrdata.Correction{}
	}
	return c.corrections
}

func (c *fakeClient) GetFullXML(ctx context.Context, titleNumber int, date string) string {
	return c.fullXML
}

func (c *fakeClient) GetAgencies(ctx context.Context) []ecfrdata.Agency {
	if c.agencies == nil {
		return []ecfrdata.Agency{}
	}
	return c.agencies
}

func sectionNode(reserved bool) *ecfrdata.StructureNode {
	return &ecfrdata.StructureNode{Type: ecfrdata.NodeTypeSection, Reserved: reserved}
}

func partNode(identifier string, children ...*ecfrdata.StructureNode) *ecfrdata.StructureNode {
	return &ecfrdata.StructureNode{Type: ecfrdata.NodeTypePart, Identifier: identifier, Children: children}
}

func titleNode(name string, children ...*ecfrdata.StructureNode) *ecfrdata.StructureNode {
	return &ecfrdata.StructureNode{Type: ecfrdata.NodeTypeTitle, LabelDescription: name, Children: children}
}
