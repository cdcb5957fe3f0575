package authorization

// UserRole is the coarse role carried in JWT claims. There are exactly two:
// the configured super-admin identity and everyone else.
type UserRole string

const (
	RoleOperator   UserRole = "operator"
	RoleSuperAdmin UserRole = "super_admin"
)

func (r UserRole) IsValid() bool {
	return r == RoleOperator || r == RoleSuperAdmin
}

func (r UserRole) IsSuperAdmin() bool {
	return r == RoleSuperAdmin
}

// ContextKeyUserRole is the gin context key the auth middleware sets.
const ContextKeyUserRole = "user_role"
