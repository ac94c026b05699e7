// Package rbac defines the console's three-level role hierarchy and the
// total mapping from role strings to numeric privilege levels. The mapping
// is closed: role strings outside the enumerated domain map to LevelNone
// and never satisfy a gating requirement, so a typo in a nav configuration
// hides the affordance instead of exposing it.
package rbac

// Role strings in ascending order of privilege.
const (
	RoleViewer = "viewer"
	RoleEditor = "editor"
	RoleAdmin  = "admin"
)

// Privilege levels. LevelNone is the bucket for unknown or missing role
// strings; no real role resolves to it.
const (
	LevelNone   = 0
	LevelViewer = 1
	LevelEditor = 2
	LevelAdmin  = 3
)

var roleLevels = map[string]int{
	RoleViewer: LevelViewer,
	RoleEditor: LevelEditor,
	RoleAdmin:  LevelAdmin,
}

// Level returns the privilege level for a role string. Unknown strings
// return LevelNone.
func Level(role string) int {
	return roleLevels[role]
}

// Known reports whether role is one of the enumerated role strings.
func Known(role string) bool {
	_, ok := roleLevels[role]
	return ok
}

// Roles returns the enumerated role strings in ascending privilege order.
func Roles() []string {
	return []string{RoleViewer, RoleEditor, RoleAdmin}
}

// HighestLevel returns the maximum privilege level across a set of role
// strings. Unknown strings contribute nothing. An empty or all-unknown set
// yields LevelNone.
func HighestLevel(roles []string) int {
	highest := LevelNone
	for _, r := range roles {
		if l := Level(r); l > highest {
			highest = l
		}
	}
	return highest
}

// Satisfies reports whether a user holding userLevel meets the requirement
// expressed by minRole. Requirements outside the enumerated domain are never
// satisfied, erring toward hiding rather than exposing.
func Satisfies(userLevel int, minRole string) bool {
	req, ok := roleLevels[minRole]
	if !ok {
		return false
	}
	return userLevel >= req
}
