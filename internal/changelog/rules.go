package changelog

import (
	"fmt"
	"regexp"
	"strings"
)

// datePrefixRe checks the YYYY-MM-DD shape at the start of the captured
// token. It validates digit layout only, not calendar correctness, so
// "2024-13-45" passes.
var datePrefixRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}`)

// validCategorySet is the immutable category vocabulary, indexed for rule
// lookups. Initialized once at startup from ValidCategories.
var validCategorySet = func() map[string]bool {
	set := make(map[string]bool, len(ValidCategories()))
	for _, c := range ValidCategories() {
		set[c] = true
	}
	return set
}()

// Report carries the outcome of one rule evaluation run. Errors violate
// mandatory structural rules and fail validation; warnings are stylistic
// and never affect the verdict.
type Report struct {
	Errors   []string
	Warnings []string
}

// Valid reports whether the document passed all mandatory rules.
func (r *Report) Valid() bool {
	return len(r.Errors) == 0
}

func (r *Report) errorf(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

func (r *Report) warnf(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// Evaluate runs the full rule set against the document. Every rule is
// evaluated independently with no short-circuiting, and evaluation is
// total: malformed structure produces diagnostics, never a failure.
func Evaluate(doc *Document) *Report {
	rep := &Report{}

	checkHeader(doc, rep)
	checkReferences(doc, rep)
	checkSections(doc, rep)
	checkUnreleasedContent(doc, rep)
	checkListMarkers(doc, rep)
	checkComparisonLink(doc, rep)

	return rep
}

// checkHeader requires the first line to start with "# Changelog".
func checkHeader(doc *Document, rep *Report) {
	if !strings.HasPrefix(doc.HeaderLine, "# Changelog") {
		rep.errorf("First line must be '# Changelog'")
	}
}

// checkReferences warns when the convention reference URLs are absent.
func checkReferences(doc *Document, rep *Report) {
	if !doc.HasChangelogRef {
		rep.warnf("Missing Keep a Changelog reference")
	}
	if !doc.HasSemverRef {
		rep.warnf("Missing Semantic Versioning reference")
	}
}

// checkSections requires at least one version section and an Unreleased
// section, and checks per-version dates. Released versions without a date
// get a warning; a date token that does not start with the YYYY-MM-DD
// shape is an error.
func checkSections(doc *Document, rep *Report) {
	if len(doc.Versions) == 0 {
		rep.errorf("No version sections found (expected at least ## [Unreleased])")
		return
	}

	if doc.Unreleased() == nil {
		rep.errorf("Missing ## [Unreleased] section")
	}

	for _, v := range doc.Versions {
		if v.IsUnreleased() {
			continue
		}
		if v.Date == "" {
			rep.warnf("Version [%s] is missing a date", v.Label)
			continue
		}
		if !datePrefixRe.MatchString(v.Date) {
			rep.errorf("Version [%s] has invalid date format: %s (expected YYYY-MM-DD)", v.Label, v.Date)
		}
	}
}

// checkUnreleasedContent inspects the Unreleased section: it should have
// category blocks from the fixed vocabulary and at least one bullet entry.
func checkUnreleasedContent(doc *Document, rep *Report) {
	u := doc.Unreleased()
	if u == nil {
		return
	}

	if len(u.Categories) == 0 {
		rep.warnf("[Unreleased] section has no categories (Added/Changed/Fixed/etc.)")
		return
	}

	var invalid []string
	for _, c := range u.Categories {
		if !validCategorySet[c.Name] {
			invalid = append(invalid, c.Name)
		}
	}
	if len(invalid) > 0 {
		rep.warnf("Invalid categories in [Unreleased]: %s", strings.Join(invalid, ", "))
		rep.warnf("Valid categories: %s", strings.Join(ValidCategories(), ", "))
	}

	if !u.HasEntries() {
		rep.warnf("[Unreleased] section appears to be empty (no bullet points)")
	}
}

// checkListMarkers warns when alternate bullet markers appear anywhere.
func checkListMarkers(doc *Document, rep *Report) {
	if doc.HasAltListMarker {
		rep.warnf("Use '- ' for lists, not '* ' or '+ '")
	}
}

// checkComparisonLink warns when the Unreleased comparison link is absent.
// Only evaluated with two or more sections, and only the Unreleased link
// is checked; per-version links are out of scope.
func checkComparisonLink(doc *Document, rep *Report) {
	if len(doc.Versions) > 1 && !doc.HasUnreleasedLink {
		rep.warnf("Missing comparison link for [Unreleased]")
	}
}
