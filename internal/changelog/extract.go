package changelog

import (
	"regexp"
	"strings"
)

// Substring markers for the two canonical reference URLs.
const (
	keepAChangelogMarker = "keepachangelog.com"
	semverMarker         = "semver.org"
)

var (
	// versionHeaderRe matches "## [label]" optionally followed by
	// " - <token>". The token is captured raw; it may not be a date.
	versionHeaderRe = regexp.MustCompile(`^## \[([^\]]+)\](?:\s+-\s+(\S+))?`)

	// categoryHeaderRe matches "### Word" and captures the first word.
	categoryHeaderRe = regexp.MustCompile(`^### (\w+)`)

	// entryRe matches a dash bullet with non-space content.
	entryRe = regexp.MustCompile(`^- \S`)

	// altMarkerRe matches the alternate Markdown bullet forms.
	altMarkerRe = regexp.MustCompile(`^[*+] `)

	// unreleasedLinkRe matches the Unreleased comparison-link definition.
	unreleasedLinkRe = regexp.MustCompile(`^\[Unreleased\]: https?://`)
)

// Parse splits raw changelog text into a Document. It is total: malformed
// or empty input yields a Document with fewer populated fields, and the
// rule engine reports the absences.
func Parse(content string) *Document {
	lines := strings.Split(content, "\n")

	doc := &Document{
		HasChangelogRef: strings.Contains(content, keepAChangelogMarker),
		HasSemverRef:    strings.Contains(content, semverMarker),
	}
	if len(lines) > 0 {
		doc.HeaderLine = lines[0]
	}

	var section *VersionSection
	var category *CategoryBlock

	flushCategory := func() {
		if section != nil && category != nil {
			section.Categories = append(section.Categories, *category)
		}
		category = nil
	}
	flushSection := func() {
		flushCategory()
		if section != nil {
			doc.Versions = append(doc.Versions, *section)
		}
		section = nil
	}

	for _, line := range lines {
		if altMarkerRe.MatchString(line) {
			doc.HasAltListMarker = true
		}
		if unreleasedLinkRe.MatchString(line) {
			doc.HasUnreleasedLink = true
		}

		if m := versionHeaderRe.FindStringSubmatch(line); m != nil {
			flushSection()
			section = &VersionSection{Label: m[1], Date: m[2]}
			continue
		}
		if section == nil {
			continue
		}
		if m := categoryHeaderRe.FindStringSubmatch(line); m != nil {
			flushCategory()
			category = &CategoryBlock{Name: m[1]}
			continue
		}
		if category != nil && entryRe.MatchString(line) {
			category.Entries = append(category.Entries, strings.TrimPrefix(line, "- "))
		}
	}
	flushSection()

	return doc
}
