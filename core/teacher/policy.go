package teacher

// RolePolicy is an allow-list of roles for an endpoint. The admin role
// passes every policy; an empty allow-list therefore means admin-only.
type RolePolicy struct {
	Allowed []string
}

func (p RolePolicy) Permits(role string) bool {
	if role == RoleAdmin {
		return true
	}
	for _, allowed := range p.Allowed {
		if role == allowed {
			return true
		}
	}
	return false
}
