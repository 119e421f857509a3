package httpclient

import (
	"context"
	"encoding/json"
	"fmt"
	"github.com/ambrlytics/ecfr-analyzer/ecfrdata"
	"github.com/gofiber/fiber/v2/log"
	"io"
	"net/http"
	"strings"
)

const (
	DefaultBaseURL   = "https://www.ecfr.gov/api"
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"
	defaultAccept    = "application/json, application/xml"
)

// ECFRClient issues one GET per upstream resource. Titles and versions
// failures are returned to the caller, every other resource degrades to an
// empty value.
type ECFRClient struct {
	HttpClient *http.Client
	BaseURL    string
	UserAgent  string
}

// NewECFRClient builds a client, falling back to the public API and a shared http.Client
func NewECFRClient(httpClient *http.Client, baseURL string, userAgent string) *ECFRClient {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	return &ECFRClient{
		HttpClient: httpClient,
		BaseURL:    strings.TrimRight(baseURL, "/"),
		UserAgent:  userAgent,
	}
}

// GetTitlesRaw returns the titles list body exactly as upstream sent it
func (c *ECFRClient) GetTitlesRaw(ctx context.Context) ([]byte, error) {
	body, err := c.getBytes(ctx, "/versioner/v1/titles.json")
	if err != nil {
		c.logError(fmt.Sprintf("Error fetching titles: %v", err))
		return nil, fmt.Errorf("failed to fetch titles: %w", err)
	}
	return body, nil
}

// GetTitles returns the decoded titles list
func (c *ECFRClient) GetTitles(ctx context.Context) (*ecfrdata.TitlesResponse, error) {
	body, err := c.GetTitlesRaw(ctx)
	if err != nil {
		return nil, err
	}

	var titles ecfrdata.TitlesResponse
	if err := json.Unmarshal(body, &titles); err != nil {
		return nil, fmt.Errorf("failed to fetch titles: unable to decode response: %w", err)
	}
	return &titles, nil
}

// GetStructure returns the structure tree of a title at a date, or nil
func (c *ECFRClient) GetStructure(
	ctx context.Context,
	titleNumber int,
	date string,
) *ecfrdata.StructureNode {
	body := c.GetStructureRaw(ctx, titleNumber, date)
	if body == nil {
		return nil
	}

	var structure ecfrdata.StructureNode
	if err := json.Unmarshal(body, &structure); err != nil {
		c.logError(fmt.Sprintf("Failed to decode structure for title %d at %s: %v", titleNumber, date, err))
		return nil
	}
	return &structure
}

// GetStructureRaw returns the structure body of a title at a date as sent, or nil
func (c *ECFRClient) GetStructureRaw(
	ctx context.Context,
	titleNumber int,
	date string,
) []byte {
	path := fmt.Sprintf("/versioner/v1/structure/%s/title-%d.json", date, titleNumber)

	body, err := c.getBytes(ctx, path)
	if err != nil {
		c.logError(fmt.Sprintf("Failed to get structure for title %d at %s: %v", titleNumber, date, err))
		return nil
	}
	return body
}

// GetVersions returns the section versions of a title
func (c *ECFRClient) GetVersions(
	ctx context.Context,
	titleNumber int,
) (*ecfrdata.VersionsResponse, error) {
	path := fmt.Sprintf("/versioner/v1/versions/title-%d.json", titleNumber)

	var versions ecfrdata.VersionsResponse
	if err := c.getJSON(ctx, path, &versions); err != nil {
		c.logError(fmt.Sprintf("Error fetching title versions: %v", err))
		return nil, fmt.Errorf("failed to fetch title versions: %w", err)
	}
	return &versions, nil
}

// GetCorrections returns the corrections recorded for a title, or an empty list
func (c *ECFRClient) GetCorrections(
	ctx context.Context,
	titleNumber int,
) []ecfrdata.Correction {
	path := fmt.Sprintf("/admin/v1/corrections/title/%d.json", titleNumber)

	var corrections ecfrdata.CorrectionsResponse
	if err := c.getJSON(ctx, path, &corrections); err != nil {
		c.logError(fmt.Sprintf("Failed to get corrections for title %d: %v", titleNumber, err))
		return []ecfrdata.Correction{}
	}
	if corrections.Corrections == nil {
		return []ecfrdata.Correction{}
	}
	return corrections.Corrections
}

// GetFullXML returns the full text XML of a title at a date, or an empty string
func (c *ECFRClient) GetFullXML(
	ctx context.Context,
	titleNumber int,
	date string,
) string {
	path := fmt.Sprintf("/versioner/v1/full/%s/title-%d.xml", date, titleNumber)

	body, err := c.getBytes(ctx, path)
	if err != nil {
		c.logError(fmt.Sprintf("Failed to get full content for title %d at %s: %v", titleNumber, date, err))
		return ""
	}
	return string(body)
}

// GetAgencies returns the agency roster, or an empty roster
func (c *ECFRClient) GetAgencies(ctx context.Context) []ecfrdata.Agency {
	var agencies ecfrdata.AgenciesResponse
	if err := c.getJSON(ctx, "/admin/v1/agencies.json", &agencies); err != nil {
		c.logError(fmt.Sprintf("Failed to get agencies: %v", err))
		return []ecfrdata.Agency{}
	}
	if agencies.Agencies == nil {
		return []ecfrdata.Agency{}
	}
	return agencies.Agencies
}

func (c *ECFRClient) getJSON(ctx context.Context, path string, target any) error {
	body, err := c.getBytes(ctx, path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, target); err != nil {
		return fmt.Errorf("unable to decode response from %s: %w", path, err)
	}
	return nil
}

func (c *ECFRClient) getBytes(ctx context.Context, path string) ([]byte, error) {
	resp, err := c.get(ctx, path)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("unable to read response from %s: %w", path, err)
	}
	return body, nil
}

func (c *ECFRClient) get(ctx context.Context, path string) (*http.Response, error) {
	url := c.BaseURL + path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("unable to build request for %s: %w", url, err)
	}
	req.Header.Set("User-Agent", c.UserAgent)
	req.Header.Set("Accept", defaultAccept)

	resp, err := c.HttpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request to %s failed: %w", url, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, fmt.Errorf("request to %s returned status %d", url, resp.StatusCode)
	}

	return resp, nil
}

func (c *ECFRClient) logError(message string) {
	log.Warn(fmt.Sprintf("eCFR Client: %v", message))
}
