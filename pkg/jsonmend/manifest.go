package jsonmend

import (
	"regexp"
	"strings"
)

// ManifestConstraint is the static rule set RemediateManifest applies to a
// parsed package manifest.
type ManifestConstraint struct {
	// RequiredFields must be present; string fields other than "version"
	// must also be non-empty.
	RequiredFields []string
	// VersionPattern is matched against the "version" field when present.
	VersionPattern *regexp.Regexp
}

// DefaultManifestConstraint returns the package.json rules: name and version
// required, version starting with a major.minor.patch triple.
func DefaultManifestConstraint() ManifestConstraint {
	return ManifestConstraint{
		RequiredFields: []string{"name", "version"},
		VersionPattern: semverPrefixRe,
	}
}

// checkManifest runs every rule independently and returns all failures.
// These are semantic problems, not syntax: they are reported, never fixed.
func checkManifest(value any, c ManifestConstraint) []string {
	obj, ok := value.(map[string]any)
	if !ok {
		return []string{"Manifest root is not a JSON object"}
	}
	var reasons []string
	for _, field := range c.RequiredFields {
		v, present := obj[field]
		// Presence is enough for version: an empty string is a format
		// problem, reported by the pattern check below.
		empty := false
		if s, isStr := v.(string); present && isStr && field != "version" {
			empty = strings.TrimSpace(s) == ""
		}
		if !present || empty {
			reasons = append(reasons, "Missing required field: "+field)
		}
	}
	if v, present := obj["version"]; present && c.VersionPattern != nil {
		s, isStr := v.(string)
		if !isStr || !c.VersionPattern.MatchString(s) {
			reasons = append(reasons, "Invalid version format. Expected semantic version (e.g., 1.0.0)")
		}
	}
	return reasons
}
