package memmanager

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// FormatVersion tags the binary layout of the hole snapshot (§4.3) and
// bitmap (§4.4) formats. It never changes the wire bytes themselves;
// CheckFormatCompatibility compares it against a caller's constraint
// (memmanager-cli's -min-format flag). The /holes and /bitmap responses
// of internal/inspect do not carry it.
const FormatVersion = "1.0.0"

// CheckFormatCompatibility reports whether FormatVersion satisfies the
// given semver constraint (e.g. "^1.0.0", ">=1.0.0, <2.0.0").
func CheckFormatCompatibility(constraint string) (bool, error) {
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return false, fmt.Errorf("parse constraint %q: %w", constraint, err)
	}

	v, err := semver.NewVersion(FormatVersion)
	if err != nil {
		return false, fmt.Errorf("parse format version %q: %w", FormatVersion, err)
	}

	return c.Check(v), nil
}
