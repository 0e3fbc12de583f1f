package config

// GetDefaults returns the default configuration values.
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		// changelog_path: File validated when no argument is given.
		// Relative to the invocation directory, matching the convention
		// of keeping the change history at the repository root.
		"changelog_path": "CHANGELOG.md",
		// plain: Text severity prefixes instead of colors and glyphs.
		"plain": false,
		// serve_addr: Listen address for the demo web service fixture.
		"serve_addr": ":8080",
	}
}
