// Package version carries the framework release identity and helpers for
// embedders that want to assert a minimum framework version.
package version

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// Version is the current framework release.
const Version = "1.2.0"

// Satisfies reports whether the current release meets the given semver
// constraint, for example ">= 1.1".
func Satisfies(constraint string) (bool, error) {
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return false, fmt.Errorf("invalid constraint %q: %w", constraint, err)
	}
	v := semver.MustParse(Version)
	return c.Check(v), nil
}

// Require is Satisfies turned into an error: it fails when the current
// release does not meet the constraint.
func Require(constraint string) error {
	ok, err := Satisfies(constraint)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("version %s does not satisfy %q", Version, constraint)
	}
	return nil
}
