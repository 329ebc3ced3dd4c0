package version

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// coerceRe finds the first run of up to three dot-separated numeric
// components that is not preceded by another digit.
var coerceRe = regexp.MustCompile(`(?:^|[^\d])(\d{1,16})(?:\.(\d{1,16}))?(?:\.(\d{1,16}))?(?:$|[^\d])`)

// Coerce extracts a concrete major.minor.patch version from a loose version
// or range string. Missing minor/patch parts become 0; prerelease and build
// metadata are dropped. "^16.5.2" → "16.5.2", "~1.2" → "1.2.0", "v3" → "3.0.0".
func Coerce(s string) (*semver.Version, error) {
	m := coerceRe.FindStringSubmatch(s)
	if m == nil {
		return nil, fmt.Errorf("no version found in %q", s)
	}

	var nums [3]uint64
	for i, part := range m[1:4] {
		if part == "" {
			continue
		}
		n, err := strconv.ParseUint(part, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("coercing %q: %w", s, err)
		}
		nums[i] = n
	}

	return semver.New(nums[0], nums[1], nums[2], "", ""), nil
}

// CoerceString is Coerce rendered back to "major.minor.patch".
func CoerceString(s string) (string, error) {
	v, err := Coerce(s)
	if err != nil {
		return "", err
	}
	return v.String(), nil
}

// Satisfies reports whether version meets constraint, e.g.
// Satisfies("1.19.0", ">=1.19.0"). A leading "v" on version is tolerated.
func Satisfies(version, constraint string) (bool, error) {
	v, err := parseSemver(version)
	if err != nil {
		return false, fmt.Errorf("parsing version %q: %w", version, err)
	}
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return false, fmt.Errorf("parsing constraint %q: %w", constraint, err)
	}
	return c.Check(v), nil
}

// parseSemver strips a leading "v" and parses the version string.
func parseSemver(version string) (*semver.Version, error) {
	version = strings.TrimPrefix(version, "v")
	return semver.NewVersion(version)
}
