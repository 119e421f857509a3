package parser

import (
	"encoding/json"
	"encoding/xml"
	"fmt"
	"github.com/ambrlytics/ecfr-analyzer/ecfrdata"
	"io"
	"regexp"
	"strings"
)

var (
	wordPattern        = regexp.MustCompile(`[\p{L}\p{N}_]+`)
	punctuationPattern = regexp.MustCompile(`[^\p{L}\p{N}_\s]`)
	whitespacePattern  = regexp.MustCompile(`\s+`)
)

// JSONTextFields are the string fields collected from JSON documents, in order
var JSONTextFields = []string{"label", "label_description", "text", "content", "subject", "title"}

// XMLTextTags are the elements whose text is collected from XML documents
var XMLTextTags = []string{"content", "title", "subject", "text"}

// ExtractStructureText flattens the text of a structure tree into one normalized string
func ExtractStructureText(root *ecfrdata.StructureNode) string {
	var texts []string
	collectStructureText(root, &texts)
	return Normalize(strings.Join(texts, " "))
}

func collectStructureText(node *ecfrdata.StructureNode, texts *[]string) {
	if node == nil {
		return
	}

	for _, value := range []string{node.Label, node.LabelDescription, node.Text, node.Content} {
		if value != "" {
			*texts = append(*texts, value)
		}
	}

	for _, child := range node.Children {
		collectStructureText(child, texts)
	}
}

// ExtractJSONText flattens an arbitrary hierarchical JSON document.
// Nodes are objects, their children live under "children".
func ExtractJSONText(raw []byte) (string, error) {
	var document any
	if err := json.Unmarshal(raw, &document); err != nil {
		return "", fmt.Errorf("error parsing JSON: %w", err)
	}

	var texts []string
	collectJSONText(document, &texts)
	return Normalize(strings.Join(texts, " ")), nil
}

func collectJSONText(node any, texts *[]string) {
	switch value := node.(type) {
	case []any:
		for _, item := range value {
			collectJSONText(item, texts)
		}
	case map[string]any:
		for _, field := range JSONTextFields {
			if text, ok := value[field].(string); ok && text != "" {
				*texts = append(*texts, text)
			}
		}
		if children, ok := value["children"].([]any); ok {
			collectJSONText(children, texts)
		}
	}
}

// ExtractXMLText collects the text of every XMLTextTags element in document
// order. An element nested in another collected element is reported on its own
// after its parent, whose text already contains it.
func ExtractXMLText(reader io.Reader) (string, error) {
	decoder := xml.NewDecoder(reader)
	decoder.Strict = false
	decoder.AutoClose = xml.HTMLAutoClose
	decoder.Entity = xml.HTMLEntity

	var collected []*strings.Builder
	var open []*strings.Builder
	var openNames []string

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("error parsing XML: %w", err)
		}

		switch element := token.(type) {
		case xml.StartElement:
			if isTextTag(element.Name.Local) {
				builder := &strings.Builder{}
				collected = append(collected, builder)
				open = append(open, builder)
				openNames = append(openNames, strings.ToLower(element.Name.Local))
			}
		case xml.EndElement:
			if n := len(openNames); n > 0 && openNames[n-1] == strings.ToLower(element.Name.Local) {
				open = open[:n-1]
				openNames = openNames[:n-1]
			}
		case xml.CharData:
			for _, builder := range open {
				builder.Write(element)
			}
		}
	}

	texts := make([]string, 0, len(collected))
	for _, builder := range collected {
		if text := strings.TrimSpace(builder.String()); text != "" {
			texts = append(texts, text)
		}
	}
	return Normalize(strings.Join(texts, " ")), nil
}

func isTextTag(name string) bool {
	for _, tag := range XMLTextTags {
		if strings.EqualFold(tag, name) {
			return true
		}
	}
	return false
}

// Normalize replaces punctuation with spaces and collapses whitespace.
// Normalize(Normalize(s)) == Normalize(s).
func Normalize(text string) string {
	text = punctuationPattern.ReplaceAllString(text, " ")
	text = whitespacePattern.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// CountWords counts the runs of word characters in text
func CountWords(text string) int {
	if text == "" {
		return 0
	}
	return len(wordPattern.FindAllStringIndex(text, -1))
}
