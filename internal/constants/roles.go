package constants

type UserRole string

const (
	RoleRecruit   UserRole = "RECRUIT"
	RoleVolunteer UserRole = "VOLUNTEER"
	RoleAdmin     UserRole = "ADMIN"
)

func (r UserRole) String() string {
	return string(r)
}

// RoleRank orders roles for permission checks. Higher rank implies
// every lower-ranked permission.
var RoleRank = map[UserRole]int{
	RoleRecruit:   1,
	RoleVolunteer: 2,
	RoleAdmin:     3,
}

func RoleAtLeast(role string, min UserRole) bool {
	return RoleRank[UserRole(role)] >= RoleRank[min]
}
