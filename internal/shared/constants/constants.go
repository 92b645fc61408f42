// Package constants defines shared application constants.
package constants

// Environment names
const (
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"
)

// Context keys used to pass authenticated user information through gin
const (
	ContextKeyUserID   = "user_id"
	ContextKeyUserRole = "user_role"
)

// User roles
const (
	RoleAdmin           = "myra_admin"
	RoleRangeOfficer    = "myra_range_officer"
	RoleAgreementHolder = "myra_client"
)

// PurposeOfAction is the allow-list for a plant community's purpose of action.
var PurposeOfAction = []string{"establish", "maintain", "none"}

// PlantCommunityCriteria is the allow-list for indicator plant criteria.
var PlantCommunityCriteria = []string{"rangereadiness", "stubbleheight", "shrubuse"}

// PlanVersionCurrent marks the live, editable version of a plan. All other
// versions carry a positive, monotonically increasing number.
const PlanVersionCurrent = -1

// Contains reports whether list holds value. Small helper for the
// enumerated-field allow-lists above.
func Contains(list []string, value string) bool {
	for _, v := range list {
		if v == value {
			return true
		}
	}
	return false
}
