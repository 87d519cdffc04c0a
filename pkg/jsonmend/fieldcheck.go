package jsonmend

import "regexp"

// Stateless format checks for individual manifest fields. These are plain
// lookups with no iteration or convergence behavior; the manifest checker
// uses them and they are exported for callers that validate fields directly.

var (
	semverPrefixRe = regexp.MustCompile(`^\d+\.\d+\.\d+`)
	packageNameRe  = regexp.MustCompile(`^(@[a-z0-9][a-z0-9._-]*/)?[a-z0-9][a-z0-9._-]*$`)
)

// ValidSemver reports whether s begins with a major.minor.patch triple.
// Pre-release and build suffixes after the numeric prefix are accepted.
func ValidSemver(s string) bool {
	return semverPrefixRe.MatchString(s)
}

// ValidPackageName reports whether s is a plausible npm package name:
// lowercase, URL-safe, optionally scoped, at most 214 characters.
func ValidPackageName(s string) bool {
	return s != "" && len(s) <= 214 && packageNameRe.MatchString(s)
}
