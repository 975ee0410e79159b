// Package phpver models PHP language versions in PHP_VERSION_ID form
// (major*10000 + minor*100 + patch) and the monotone version gate the
// rewrite rules share during one file pass.
package phpver

import (
	"fmt"
	"strconv"
	"strings"
)

// ID is a PHP version in PHP_VERSION_ID form, e.g. 70100 for 7.1.0.
type ID int

// Version floors for the constructs the rewriter can emit.
const (
	// PHP70 introduced scalar parameter type declarations.
	PHP70 ID = 70000
	// PHP71 introduced nullable types and iterable.
	PHP71 ID = 70100
	// PHP72 introduced the object type.
	PHP72 ID = 70200
	// PHP74 introduced typed properties and arrow functions.
	PHP74 ID = 70400
	// PHP80 introduced union types and constructor promotion.
	PHP80 ID = 80000
)

// Parse converts "7", "7.1", or "7.1.3" into an ID.
func Parse(s string) (ID, error) {
	parts := strings.Split(strings.TrimSpace(s), ".")
	if len(parts) == 0 || len(parts) > 3 {
		return 0, fmt.Errorf("phpver: malformed version %q", s)
	}
	nums := [3]int{}
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return 0, fmt.Errorf("phpver: malformed version %q", s)
		}
		if i > 0 && n > 99 {
			return 0, fmt.Errorf("phpver: component out of range in %q", s)
		}
		nums[i] = n
	}
	return ID(nums[0]*10000 + nums[1]*100 + nums[2]), nil
}

// String renders the ID as "major.minor" or "major.minor.patch" when the
// patch component is non-zero.
func (id ID) String() string {
	major := int(id) / 10000
	minor := (int(id) / 100) % 100
	patch := int(id) % 100
	if patch == 0 {
		return fmt.Sprintf("%d.%d", major, minor)
	}
	return fmt.Sprintf("%d.%d.%d", major, minor, patch)
}
