package ecfrdata

// TitlesResponse is the body of versioner/v1/titles.json
type TitlesResponse struct {
	Titles []Title     `json:"titles"`
	Meta   *TitlesMeta `json:"meta,omitempty"`
}

type TitlesMeta struct {
	Date             string `json:"date"`
	ImportInProgress bool   `json:"import_in_progress"`
}

// Title is a single entry of the titles list
type Title struct {
	Number          int      `json:"number"`
	Name            string   `json:"name"`
	LatestAmendedOn string   `json:"latest_amended_on"`
	LatestIssueDate string   `json:"latest_issue_date"`
	UpToDateAsOf    string   `json:"up_to_date_as_of"`
	Reserved        bool     `json:"reserved"`
	VersionDates    []string `json:"version_dates"`
}

// FindTitle returns the entry for the given number, or nil
func (r *TitlesResponse) FindTitle(number int) *Title {
	if r == nil {
		return nil
	}
	for i := range r.Titles {
		if r.Titles[i].Number == number {
			return &r.Titles[i]
		}
	}
	return nil
}
