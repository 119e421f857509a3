package api

import (
	"encoding/json"
	"github.com/ambrlytics/ecfr-analyzer/httpclient"
	"github.com/ambrlytics/ecfr-analyzer/httpresponse"
	"github.com/ambrlytics/ecfr-analyzer/service"
	"github.com/gofiber/fiber/v2"
	"github.com/google/go-cmp/cmp"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

const titlesBody = `{"titles":[{"number":7,"name":"Agriculture","latest_issue_date":"2024-03-01","version_dates":[]}]}`

func newTestApp(t *testing.T, titlesStatus int) *fiber.App {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/versioner/v1/titles.json":
			if titlesStatus != http.StatusOK {
				w.WriteHeader(titlesStatus)
				return
			}
			_, _ = w.Write([]byte(titlesBody))
		case strings.HasPrefix(r.URL.Path, "/versioner/v1/structure/"):
			_, _ = w.Write([]byte(`{"type":"title","label_description":"Agriculture","children":[{"type":"part","identifier":"1","children":[{"type":"section","label_description":"Farm rules"}]}]}`))
		case r.URL.Path == "/versioner/v1/versions/title-7.json":
			_, _ = w.Write([]byte(`{"content_versions":[]}`))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)

	client := httpclient.NewECFRClient(srv.Client(), srv.URL, "")
	structureService := &service.StructureService{Client: client}
	titleService := &service.TitleService{Client: client}

	app := fiber.New(fiber.Config{ErrorHandler: httpresponse.ErrorHandler})
	titleAPI := &TitleAPI{
		Router:       app,
		TitleService: titleService,
		AnalysisService: &service.AnalysisService{
			Client:                   client,
			TitleService:             titleService,
			StructureService:         structureService,
			ContentService:           &service.ContentService{Client: client},
			AgencyAttributionService: &service.AgencyAttributionService{Client: client},
			CorrectionService:        &service.CorrectionService{Client: client},
			HistoricalService:        &service.HistoricalService{StructureService: structureService},
			ChangeTrackingService:    &service.ChangeTrackingService{},
		},
	}
	titleAPI.Register()
	healthAPI := &HealthAPI{Router: app}
	healthAPI.Register()
	return app
}

func get(t *testing.T, app *fiber.App, path string) (int, []byte) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil), -1)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	return resp.StatusCode, body
}

func TestListTitlesPassesThrough(t *testing.T) {
	status, body := get(t, newTestApp(t, http.StatusOK), "/titles")
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if string(body) != titlesBody {
		t.Fatalf("expected verbatim titles, got %s", body)
	}
}

func TestListTitlesUpstreamFailure(t *testing.T) {
	status, body := get(t, newTestApp(t, http.StatusBadGateway), "/titles")
	if status != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", status)
	}

	var decoded map[string]string
	if err := json.Unmarshal(body, &decoded); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(decoded["error"], "failed to fetch titles") || decoded["traceback"] == "" {
		t.Fatalf("unexpected error body %v", decoded)
	}
}

func TestAnalysisRoute(t *testing.T) {
	status, body := get(t, newTestApp(t, http.StatusOK), "/titles/7/analysis")
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}

	var decoded struct {
		TitleNumber int    `json:"title_number"`
		Name        string `json:"name"`
		Structure   struct {
			TotalSections int `json:"total_sections"`
		} `json:"structure"`
		Error *string `json:"error"`
	}
	if err := json.Unmarshal(body, &decoded); err != nil {
		t.Fatal(err)
	}
	if decoded.TitleNumber != 7 || decoded.Name != "Agriculture" || decoded.Structure.TotalSections != 1 {
		t.Fatalf("unexpected analysis %s", body)
	}
	if decoded.Error != nil {
		t.Fatalf("unexpected error field %q", *decoded.Error)
	}
}

func TestAnalysisRouteUnknownTitleIsZeroReport(t *testing.T) {
	status, body := get(t, newTestApp(t, http.StatusOK), "/titles/99/analysis")
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}

	var decoded map[string]any
	if err := json.Unmarshal(body, &decoded); err != nil {
		t.Fatal(err)
	}
	if decoded["name"] != "Title 99" {
		t.Errorf("unexpected name %v", decoded["name"])
	}
	if errorMessage, _ := decoded["error"].(string); !strings.Contains(errorMessage, "not found") {
		t.Errorf("unexpected error %v", decoded["error"])
	}
}

func TestAnalysisRouteRejectsNonInteger(t *testing.T) {
	status, body := get(t, newTestApp(t, http.StatusOK), "/titles/abc/analysis")
	if status != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", status)
	}

	var decoded map[string]any
	if err := json.Unmarshal(body, &decoded); err != nil {
		t.Fatal(err)
	}
	if decoded["title_number"] != "abc" {
		t.Errorf("unexpected title number %v", decoded["title_number"])
	}
}

func TestHealth(t *testing.T) {
	status, body := get(t, newTestApp(t, http.StatusOK), "/health")
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}

	var decoded map[string]string
	if err := json.Unmarshal(body, &decoded); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(map[string]string{"status": "ok"}, decoded); diff != "" {
		t.Fatalf("unexpected body (-want +got):\n%s", diff)
	}
}
