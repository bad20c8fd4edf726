package routes

// Role names as issued by the backend in the token's role claim. Matching is
// case-sensitive.
const (
	RoleAdmin       = "Admin"
	RoleSupervisor  = "Supervisor"
	RoleManager     = "Manager"
	RoleOperasional = "Operasional"
	RoleMekanik     = "Mekanik"
)

// AllRoles lists every known role in display order.
var AllRoles = []string{RoleAdmin, RoleSupervisor, RoleManager, RoleOperasional, RoleMekanik}
