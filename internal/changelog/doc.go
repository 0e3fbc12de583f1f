// Package changelog validates Markdown changelogs against the Keep a
// Changelog convention (https://keepachangelog.com/en/1.0.0/).
//
// This package implements:
//   - Line-oriented extraction of the document model (Parse)
//   - Rule evaluation producing errors and warnings (Evaluate)
//
// Validation is a strict two-pass pipeline: Parse builds an immutable
// Document from raw text and never fails; Evaluate consumes the Document
// read-only and reports missing structure as diagnostics. The model is
// built fresh for every run, so concurrent runs over different files are
// safe without coordination.
package changelog
