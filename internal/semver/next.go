package semver

import (
	"fmt"
	"strconv"
	"strings"
)

// NextMinor computes the next minor tag from a minor tag, keeping whatever
// prefix the repository uses, e.g. v1.4.0 -> v1.5.0. The caller is expected
// to degrade to manual input when this fails.
func NextMinor(tag string) (string, error) {
	parts := strings.Split(tag, ".")
	if len(parts) != 3 {
		return "", fmt.Errorf("minor release %q not in semver", tag)
	}

	minor, err := strconv.Atoi(parts[1])
	if err != nil {
		return "", fmt.Errorf("unable to parse release %q as semver", tag)
	}

	return fmt.Sprintf("%s.%d.0", parts[0], minor+1), nil
}
