package ecfrdata

// Node types that carry meaning for the analysis. Anything else is a container.
const (
	NodeTypeTitle   = "title"
	NodeTypePart    = "part"
	NodeTypeSection = "section"
)

// StructureNode is one element of versioner/v1/structure/{date}/title-{n}.json
type StructureNode struct {
	Type             string           `json:"type"`
	Identifier       string           `json:"identifier"`
	Label            string           `json:"label"`
	LabelLevel       string           `json:"label_level,omitempty"`
	LabelDescription string           `json:"label_description"`
	Reserved         bool             `json:"reserved"`
	Text             string           `json:"text,omitempty"`
	Content          string           `json:"content,omitempty"`
	Children         []*StructureNode `json:"children"`
}

// IsSection reports whether the node is a section that is not reserved
func (n *StructureNode) IsSection() bool {
	return n != nil && n.Type == NodeTypeSection && !n.Reserved
}

// IsPart reports whether the node is a part that is not reserved
func (n *StructureNode) IsPart() bool {
	return n != nil && n.Type == NodeTypePart && !n.Reserved
}
