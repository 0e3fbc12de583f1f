package changelog

// Document is the parsed form of one changelog file. It is built once per
// validation run, consumed read-only by the rule engine, and discarded.
type Document struct {
	// HeaderLine is the first line of the file, verbatim.
	HeaderLine string

	// Versions holds the version sections in file order, newest first.
	Versions []VersionSection

	// HasChangelogRef and HasSemverRef record whether the canonical
	// keepachangelog.com and semver.org reference URLs appear anywhere
	// in the text.
	HasChangelogRef bool
	HasSemverRef    bool

	// HasUnreleasedLink records whether a "[Unreleased]: http(s)://..."
	// link-reference definition exists. Links for released versions are
	// not tracked; the comparison-link rule only inspects Unreleased.
	HasUnreleasedLink bool

	// HasAltListMarker records whether any line uses the "* " or "+ "
	// bullet forms instead of "- ".
	HasAltListMarker bool
}

// VersionSection is one "## [label]" block grouping changes for a release
// or for the upcoming Unreleased state.
type VersionSection struct {
	// Label is the bracketed text, e.g. "Unreleased" or "1.2.0".
	Label string

	// Date is the raw token captured after " - ", empty when absent.
	// Format checking is the rule engine's job, not the extractor's.
	Date string

	// Categories holds the "### Name" sub-blocks in file order.
	Categories []CategoryBlock
}

// CategoryBlock is one "### Name" sub-block with its bullet entries.
// Entries may be empty when the block has headers but no bullets.
type CategoryBlock struct {
	Name    string
	Entries []string
}

const unreleasedLabel = "Unreleased"

// IsUnreleased reports whether this section is the [Unreleased] section.
// The match is exact and case-sensitive.
func (v VersionSection) IsUnreleased() bool {
	return v.Label == unreleasedLabel
}

// HasEntries reports whether any category block in the section carries at
// least one bullet entry.
func (v VersionSection) HasEntries() bool {
	for _, c := range v.Categories {
		if len(c.Entries) > 0 {
			return true
		}
	}
	return false
}

// Unreleased returns the first section labeled "Unreleased", or nil when
// no such section exists. A duplicate Unreleased section is not diagnosed;
// only the first one is inspected by the content rules.
func (d *Document) Unreleased() *VersionSection {
	for i := range d.Versions {
		if d.Versions[i].IsUnreleased() {
			return &d.Versions[i]
		}
	}
	return nil
}

// ValidCategories returns the fixed Keep a Changelog category vocabulary
// in its standard order. Category matching is case-sensitive.
func ValidCategories() []string {
	return []string{"Added", "Changed", "Deprecated", "Removed", "Fixed", "Security"}
}
