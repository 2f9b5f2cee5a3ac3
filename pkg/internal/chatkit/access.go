package chatkit

// Capability is a single grant in a member's permission set. Role grants are
// derived from the raw role label without normalization, so role checks stay
// exact and case-sensitive.
type Capability string

const CapabilityAdmin = Capability("admin")

func RoleCapability(roleName string) Capability {
	return Capability("role:" + roleName)
}

// Grants is the capability set derived once per principal and checked by a
// single gate, instead of string comparisons scattered across call sites.
type Grants map[Capability]struct{}

func NewGrants(caps ...Capability) Grants {
	g := make(Grants, len(caps))
	for _, c := range caps {
		g[c] = struct{}{}
	}
	return g
}

// GrantsFor derives the capability set for a user with the given role label.
// Admins additionally receive the admin capability, which escalates past
// role scoping.
func GrantsFor(roleName string, admin bool) Grants {
	g := NewGrants(RoleCapability(roleName))
	if admin {
		g[CapabilityAdmin] = struct{}{}
	}
	return g
}

func (g Grants) Has(c Capability) bool {
	_, ok := g[c]
	return ok
}

// CanAccessRole reports whether the grant set admits a role-scoped channel.
func (g Grants) CanAccessRole(roleName string) bool {
	return g.Has(CapabilityAdmin) || g.Has(RoleCapability(roleName))
}

// RoleMatches is the bare membership check: exact string equality, no
// case folding, no hierarchy.
func RoleMatches(channelRole, userRole string) bool {
	return channelRole == userRole
}
