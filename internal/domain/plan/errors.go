package plan

import "errors"

var (
	// ErrNotFound is returned when a plan, or a row inside its subtree,
	// cannot be resolved. Current-version lookup also degrades storage
	// failures to this error so callers branch on one condition.
	ErrNotFound = errors.New("plan not found")

	// ErrInconsistentGraph is returned when a cross-branch reference inside
	// a plan graph cannot be resolved, e.g. a grazing-schedule entry
	// pointing at a pasture the plan does not own.
	ErrInconsistentGraph = errors.New("plan graph is inconsistent")
)
