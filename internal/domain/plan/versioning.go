package plan

import "fmt"

// VersioningPolicy decides what identity a duplicated plan takes. The
// duplication machinery itself only copies rows; the policy names the
// caller's intent explicitly instead of leaving canonical-id handling
// implicit.
type VersioningPolicy int

const (
	// AsNewVersion keeps the source plan's canonical id. The source row is
	// stamped with the next version number for that canonical id and the
	// copy becomes the current version.
	AsNewVersion VersioningPolicy = iota

	// AsNewPlan gives the copy a fresh canonical id. The source plan is
	// left untouched and the copy starts its own version lineage.
	AsNewPlan
)

func (p VersioningPolicy) String() string {
	switch p {
	case AsNewVersion:
		return "new_version"
	case AsNewPlan:
		return "new_plan"
	default:
		return fmt.Sprintf("VersioningPolicy(%d)", int(p))
	}
}

// Valid reports whether p is a known policy.
func (p VersioningPolicy) Valid() bool {
	return p == AsNewVersion || p == AsNewPlan
}
