package types

// Principal is the authenticated caller, set on the gin context by the auth middleware.
type Principal struct {
	ID        uint   `json:"id"`
	Email     string `json:"email"`
	RoleID    uint   `json:"roleId"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

func (p Principal) HasRole(ids ...uint) bool {
	for _, id := range ids {
		if p.RoleID == id {
			return true
		}
	}
	return false
}
