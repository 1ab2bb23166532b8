package types

// Session identifies the authenticated user for the duration of one
// login. It is created by authentication, passed explicitly through the
// menu flows, and dropped on logout. There is no global session state.
type Session struct {
	Login string
	Role  string
}

// CanManageTracking reports whether the session may edit tracking
// records. Employees and managers may; customers may not.
func (s Session) CanManageTracking() bool {
	return s.Role == RoleEmployee || s.Role == RoleManager
}

// CanAdminister reports whether the session may edit catalog entries and
// other users' accounts. Only managers may.
func (s Session) CanAdminister() bool {
	return s.Role == RoleManager
}
