package data

// Agency is a roster entry flattened for attribution
type Agency struct {
	ShortName      string   `json:"shortName"`
	DisplayName    string   `json:"displayName"`
	NameVariations []string `json:"nameVariations"`
	CfrTitles      []int    `json:"cfrTitles"`
}

// ReferencesTitle reports whether the agency has a CFR reference into the given title
func (a *Agency) ReferencesTitle(titleNumber int) bool {
	for _, title := range a.CfrTitles {
		if title == titleNumber {
			return true
		}
	}
	return false
}
