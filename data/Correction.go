package data

// Correction is a recorded fix to published text of a title
type Correction struct {
	CorrectionDate string `json:"correction_date"`
	CorrectionText string `json:"correction_text"`
	FrCitation     string `json:"fr_citation"`
	ErrorOccurred  string `json:"error_occurred"`
}

// RecentCorrection is the summary of a correction shown by the front-end
type RecentCorrection struct {
	Date        string `json:"date"`
	Description string `json:"description"`
}
