package types

// User roles. The set is closed; every stored user carries exactly one.
const (
	RoleCustomer = "customer"
	RoleEmployee = "employee"
	RoleManager  = "manager"
)

// validRoles is the set of recognized role values.
var validRoles = map[string]bool{
	RoleCustomer: true,
	RoleEmployee: true,
	RoleManager:  true,
}

// ValidRole reports whether role is one of the recognized role values.
func ValidRole(role string) bool {
	return validRoles[role]
}

// Roles returns the role values in menu presentation order.
func Roles() []string {
	return []string{RoleCustomer, RoleEmployee, RoleManager}
}
