package parser

import (
	"github.com/ambrlytics/ecfr-analyzer/data"
	"github.com/ambrlytics/ecfr-analyzer/ecfrdata"
)

// ParseStructure reduces a structure tree into its flat summary
func ParseStructure(root *ecfrdata.StructureNode) *data.ParsedStructure {
	result := data.EmptyParsedStructure()
	if root == nil {
		return result
	}

	result.Name = root.LabelDescription
	result.Parts = append(result.Parts, GetParts(root)...)

	for _, part := range result.Parts {
		// Only parts that actually hold sections count towards the total
		if part.Sections > 0 {
			result.TotalParts++
		}
		result.TotalSections += part.Sections
	}

	return result
}

// CountSections counts the non-reserved sections at or below node
func CountSections(node *ecfrdata.StructureNode) int {
	if node == nil {
		return 0
	}
	if node.IsSection() {
		return 1
	}

	count := 0
	for _, child := range node.Children {
		count += CountSections(child)
	}
	return count
}

// GetParts collects the outermost non-reserved parts at or below node in
// document order. A part's own subtree is not searched further, so every
// section belongs to at most one part.
func GetParts(node *ecfrdata.StructureNode) []*data.Part {
	if node == nil {
		return nil
	}

	if node.IsPart() {
		return []*data.Part{{
			Number:   node.Identifier,
			Name:     node.LabelDescription,
			Sections: CountSections(node),
		}}
	}

	var parts []*data.Part
	for _, child := range node.Children {
		parts = append(parts, GetParts(child)...)
	}
	return parts
}

// CountAllSections counts section nodes, reserved or not
func CountAllSections(node *ecfrdata.StructureNode) int {
	return countType(node, ecfrdata.NodeTypeSection)
}

// CountAllParts counts part nodes, reserved or not
func CountAllParts(node *ecfrdata.StructureNode) int {
	return countType(node, ecfrdata.NodeTypePart)
}

func countType(node *ecfrdata.StructureNode, nodeType string) int {
	if node == nil {
		return 0
	}

	count := 0
	if node.Type == nodeType {
		count++
	}
	for _, child := range node.Children {
		count += countType(child, nodeType)
	}
	return count
}
