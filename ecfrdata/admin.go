package ecfrdata

// VersionsResponse is the body of versioner/v1/versions/title-{n}.json
type VersionsResponse struct {
	ContentVersions []ContentVersion `json:"content_versions"`
	Meta            *VersionsMeta    `json:"meta,omitempty"`
}

type ContentVersion struct {
	Date          string `json:"date"`
	AmendmentDate string `json:"amendment_date"`
	IssueDate     string `json:"issue_date"`
	Identifier    string `json:"identifier"`
	Name          string `json:"name"`
	Part          string `json:"part"`
	Substantive   bool   `json:"substantive"`
	Removed       bool   `json:"removed"`
	Subpart       string `json:"subpart"`
	Title         string `json:"title"`
	Type          string `json:"type"`
}

type VersionsMeta struct {
	TotalCount          int    `json:"total_count"`
	LatestAmendmentDate string `json:"latest_amendment_date"`
	LatestIssueDate     string `json:"latest_issue_date"`
}

// CorrectionsResponse is the body of admin/v1/corrections/title/{n}.json
type CorrectionsResponse struct {
	Corrections []Correction `json:"ecfr_corrections"`
}

type Correction struct {
	Id               int                `json:"id"`
	CfrReferences    []CorrectionCfrRef `json:"cfr_references"`
	CorrectiveAction string             `json:"corrective_action"`
	ErrorCorrected   string             `json:"error_corrected"`
	ErrorOccurred    string             `json:"error_occurred"`
	FrCitation       string             `json:"fr_citation"`
	Position         int                `json:"position"`
	DisplayInToc     bool               `json:"display_in_toc"`
	Title            int                `json:"title"`
	Year             int                `json:"year"`
	LastModified     string             `json:"last_modified"`
}

type CorrectionCfrRef struct {
	CfrReference string `json:"cfr_reference"`
}

// AgenciesResponse is the body of admin/v1/agencies.json
type AgenciesResponse struct {
	Agencies []Agency `json:"agencies"`
}

type Agency struct {
	Name          string         `json:"name"`
	ShortName     string         `json:"short_name"`
	DisplayName   string         `json:"display_name"`
	SortableName  string         `json:"sortable_name"`
	Slug          string         `json:"slug"`
	Children      []Agency       `json:"children"`
	CfrReferences []AgencyCfrRef `json:"cfr_references"`
}

type AgencyCfrRef struct {
	Title    int    `json:"title"`
	Subtitle string `json:"subtitle,omitempty"`
	Chapter  string `json:"chapter,omitempty"`
	Part     string `json:"part,omitempty"`
}
