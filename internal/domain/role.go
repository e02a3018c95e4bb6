package domain

// Role classifies a player for salary analysis.
type Role string

const (
	RolePitcher Role = "pitcher"
	RoleBatter  Role = "batter"
)

// Roles lists roles in report order.
var Roles = []Role{RolePitcher, RoleBatter}
