package service

import (
	"context"
	"fmt"
	"github.com/ambrlytics/ecfr-analyzer/data"
	"github.com/ambrlytics/ecfr-analyzer/ecfrdata"
	"github.com/ambrlytics/ecfr-analyzer/parser"
	"github.com/gofiber/fiber/v2/log"
	"math"
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

var sectionMarkerPattern = regexp.MustCompile(`§\s*\d+\.`)

// AgencyAttributionService estimates how many words of a title each agency is
// responsible for. Attribution is not explicit in the text, so the words of
// every section are shared among the agencies it names, in proportion to how
// often each one is named. The result is a heuristic, not an exact count.
type AgencyAttributionService struct {
	Client UpstreamClient
}

// WordCounts fetches the agency roster and returns the attributed words per
// agency display name, rounded half to even
func (s *AgencyAttributionService) WordCounts(
	ctx context.Context,
	titleNumber int,
	content string,
) map[string]int {
	s.logInfo(fmt.Sprintf("Fetching agencies for title %d", titleNumber))

	roster := BuildRoster(s.Client.GetAgencies(ctx))
	if content == "" || len(roster) == 0 {
		s.logInfo("No content or agencies found")
		return map[string]int{}
	}

	counts := make(map[string]int)
	for name, words := range Attribute(content, roster, titleNumber) {
		counts[name] = int(math.RoundToEven(words))
	}

	s.logInfo(fmt.Sprintf("Found word counts for %d agencies", len(counts)))
	return counts
}

// BuildRoster flattens the agency tree into a mapping keyed by short name.
// A later agency with the same short name replaces the earlier one.
func BuildRoster(agencies []ecfrdata.Agency) map[string]*data.Agency {
	roster := make(map[string]*data.Agency)

	var add func(agency ecfrdata.Agency)
	add = func(agency ecfrdata.Agency) {
		var variations []string
		for _, variation := range []string{agency.Name, agency.ShortName, agency.DisplayName} {
			if variation != "" {
				variations = append(variations, variation)
			}
		}

		titles := make([]int, 0, len(agency.CfrReferences))
		for _, reference := range agency.CfrReferences {
			titles = append(titles, reference.Title)
		}

		roster[agency.ShortName] = &data.Agency{
			ShortName:      agency.ShortName,
			DisplayName:    agency.DisplayName,
			NameVariations: variations,
			CfrTitles:      titles,
		}

		for _, child := range agency.Children {
			add(child)
		}
	}

	for _, agency := range agencies {
		add(agency)
	}
	return roster
}

// Attribute distributes the words of text among the roster agencies that
// reference titleNumber. Agencies that are never mentioned are left out.
// Result keys are display names; when several agencies share one, their
// attributions are added together rather than the last one winning.
func Attribute(
	text string,
	roster map[string]*data.Agency,
	titleNumber int,
) map[string]float64 {
	candidates := relevantAgencies(roster, titleNumber)
	patterns := make(map[string][]*regexp.Regexp, len(candidates))
	for _, agency := range candidates {
		patterns[agency.ShortName] = variationPatterns(agency.NameVariations)
	}

	attributed := make(map[string]float64)
	for _, segment := range SplitSections(text) {
		segmentWords := parser.CountWords(segment)
		if segmentWords == 0 {
			continue
		}

		mentions := make(map[string]int)
		totalMentions := 0
		for _, agency := range candidates {
			count := 0
			for _, pattern := range patterns[agency.ShortName] {
				count += CountWholeWord(segment, pattern)
			}
			if count > 0 {
				mentions[agency.ShortName] = count
				totalMentions += count
			}
		}
		if totalMentions == 0 {
			continue
		}

		for _, agency := range candidates {
			if count := mentions[agency.ShortName]; count > 0 {
				attributed[agency.DisplayName] += float64(count) / float64(totalMentions) * float64(segmentWords)
			}
		}
	}

	return attributed
}

// relevantAgencies returns the agencies referencing the title, ordered by short name
func relevantAgencies(roster map[string]*data.Agency, titleNumber int) []*data.Agency {
	var agencies []*data.Agency
	for _, agency := range roster {
		if agency.ReferencesTitle(titleNumber) {
			agencies = append(agencies, agency)
		}
	}
	sort.Slice(agencies, func(i, j int) bool {
		return agencies[i].ShortName < agencies[j].ShortName
	})
	return agencies
}

func variationPatterns(variations []string) []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, 0, len(variations))
	for _, variation := range variations {
		if strings.TrimSpace(variation) == "" {
			continue
		}
		patterns = append(patterns, regexp.MustCompile(`(?i)`+regexp.QuoteMeta(variation)))
	}
	return patterns
}

// SplitSections cuts text in front of every "§ <number>." marker. The text
// before the first marker is its own segment.
func SplitSections(text string) []string {
	var segments []string
	start := 0
	for _, loc := range sectionMarkerPattern.FindAllStringIndex(text, -1) {
		if loc[0] > start {
			segments = append(segments, text[start:loc[0]])
		}
		start = loc[0]
	}
	if start < len(text) {
		segments = append(segments, text[start:])
	}
	return segments
}

// CountWholeWord counts non-overlapping matches of pattern that are not
// glued to a word character on either side
func CountWholeWord(text string, pattern *regexp.Regexp) int {
	count := 0
	position := 0
	for position <= len(text) {
		loc := pattern.FindStringIndex(text[position:])
		if loc == nil {
			break
		}
		matchStart, matchEnd := position+loc[0], position+loc[1]

		if matchEnd > matchStart && isBoundary(text, matchStart) && isBoundary(text, matchEnd) {
			count++
			position = matchEnd
			continue
		}

		// Retry one rune after the rejected match start
		_, size := utf8.DecodeRuneInString(text[matchStart:])
		if size == 0 {
			break
		}
		position = matchStart + size
	}
	return count
}

// isBoundary reports whether a word boundary sits at byte offset i of text
func isBoundary(text string, i int) bool {
	before, after := false, false
	if i > 0 {
		r, _ := utf8.DecodeLastRuneInString(text[:i])
		before = isWordRune(r)
	}
	if i < len(text) {
		r, _ := utf8.DecodeRuneInString(text[i:])
		after = isWordRune(r)
	}
	return before != after
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}

func (s *AgencyAttributionService) logInfo(message string) {
	log.Info(fmt.Sprintf("Agency Attribution Process: %v", message))
}
