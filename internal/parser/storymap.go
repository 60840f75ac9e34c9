package parser

import (
	"fmt"
	"strings"
)

// Section identifies the part of a story map a line belongs to.
type Section int

const (
	// SectionNone is any part of the document outside the tracked sections.
	SectionNone Section = iota
	// SectionBackbone holds the activity header table.
	SectionBackbone
	// SectionSkeleton is the walking skeleton (MVP) slice.
	SectionSkeleton
	// SectionRelease1 is the first release after the skeleton.
	SectionRelease1
	// SectionFuture collects everything deferred past release 1.
	SectionFuture
)

// String returns the label used for the section in records and output.
func (s Section) String() string {
	switch s {
	case SectionBackbone:
		return "backbone"
	case SectionSkeleton:
		return "skeleton"
	case SectionRelease1:
		return "release1"
	case SectionFuture:
		return "future"
	default:
		return "none"
	}
}

// MarshalText renders the section by name for JSON and YAML output.
func (s Section) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Story is a single card from the story map.
type Story struct {
	Activity string  `json:"activity" yaml:"activity"`
	Title    string  `json:"title" yaml:"title"`
	Section  Section `json:"section" yaml:"section"`
}

// sectionHeadings maps heading prefixes to the section they open. Order
// matters only for readability; the prefixes do not overlap.
var sectionHeadings = []struct {
	prefix  string
	section Section
}{
	{"## Backbone", SectionBackbone},
	{"## Walking Skeleton", SectionSkeleton},
	{"### Release 1", SectionRelease1},
	{"### Future", SectionFuture},
}

// sectionTransition returns the section opened by a heading line. Any
// other first or second level heading closes the current section.
func sectionTransition(line string) (Section, bool) {
	for _, h := range sectionHeadings {
		if strings.HasPrefix(line, h.prefix) {
			return h.section, true
		}
	}
	if l := headingLevel(line); l == 1 || l == 2 {
		return SectionNone, true
	}
	return SectionNone, false
}

// ParseStoryMap extracts the stories of a STORY_MAP.md document in
// document order. Placeholder cells (leading underscore) never become
// stories, and a missing or partial backbone falls back to "Activity N"
// labels.
func ParseStoryMap(content string) []Story {
	stories := make([]Story, 0)

	var (
		section      = SectionNone
		activities   []string
		haveBackbone bool
		inData       bool
	)

	for _, raw := range splitLines(content) {
		line := strings.TrimSpace(raw)

		if next, ok := sectionTransition(line); ok {
			section = next
			inData = false
			continue
		}

		if !isTableRow(line) {
			inData = false
			continue
		}
		if section == SectionNone {
			continue
		}
		if isSeparatorRow(line) {
			inData = true
			continue
		}
		if !inData {
			continue
		}

		cells := SplitRow(line)
		if len(cells) == 0 {
			continue
		}

		if section == SectionBackbone {
			if !haveBackbone {
				activities = backboneActivities(cells)
				haveBackbone = true
			}
			continue
		}

		for i, cell := range cells {
			if isPlaceholder(cell) {
				continue
			}
			stories = append(stories, Story{
				Activity: activityAt(activities, i),
				Title:    cell,
				Section:  section,
			})
		}
	}

	return stories
}

// backboneActivities turns the first backbone data row into activity
// labels. A row holding template guidance yields synthesized labels.
func backboneActivities(cells []string) []string {
	for _, c := range cells {
		if isPlaceholder(c) {
			synth := make([]string, len(cells))
			for i := range cells {
				synth[i] = syntheticActivity(i)
			}
			return synth
		}
	}
	out := make([]string, len(cells))
	copy(out, cells)
	return out
}

func activityAt(activities []string, i int) string {
	if i < len(activities) {
		return activities[i]
	}
	return syntheticActivity(i)
}

func syntheticActivity(i int) string {
	return fmt.Sprintf("Activity %d", i+1)
}
