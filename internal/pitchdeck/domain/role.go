package domain

// Role is the coarse permission a user holds. Authorization compares the
// role string carried in the session token for equality.
type Role string

const (
	RoleFounder   Role = "founder"
	RoleInvestor  Role = "investor"
	RoleCommunity Role = "community"
)

// DefaultRole is assigned when signup omits a role.
const DefaultRole = RoleFounder

func (r Role) Valid() bool {
	switch r {
	case RoleFounder, RoleInvestor, RoleCommunity:
		return true
	}
	return false
}

func (r Role) String() string { return string(r) }
