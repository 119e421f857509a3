package data

// ParsedStructure is the flat summary of a title's structure tree
type ParsedStructure struct {
	Name          string  `json:"name"`
	Parts         []*Part `json:"parts"`
	TotalParts    int     `json:"total_parts"`    // parts with at least one section
	TotalSections int     `json:"total_sections"` // sum of all parts' sections
}

// Part is a non-reserved part with its non-reserved section count
type Part struct {
	Number   string `json:"number"`
	Name     string `json:"name"`
	Sections int    `json:"sections"`
}

// EmptyParsedStructure is the summary of a missing tree
func EmptyParsedStructure() *ParsedStructure {
	return &ParsedStructure{
		Name:  "",
		Parts: []*Part{},
	}
}
