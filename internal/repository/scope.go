package repository

// ScopeKind selects how a query restricts its visible rows.
type ScopeKind int

const (
	// ScopeUnrestricted places no ownership restriction (admin, no target).
	ScopeUnrestricted ScopeKind = iota
	// ScopeIdentity restricts rows to the profile owned by IdentityID
	// (subcontractor role, always).
	ScopeIdentity
	// ScopeProfile restricts rows to the explicit profile ProfileID
	// (admin drill-down).
	ScopeProfile
)

// Scope is the row-visibility descriptor produced by the access scope
// resolver and consumed by the listing queries.
type Scope struct {
	Kind       ScopeKind
	IdentityID string
	ProfileID  string
}

// apply appends the ownership predicate for this scope. identityColumn is the
// column holding the owning identity id, profileColumn the owning profile id.
func (s Scope) apply(b *WhereBuilder, identityColumn, profileColumn string) {
	switch s.Kind {
	case ScopeIdentity:
		b.Compare(identityColumn, "=", s.IdentityID)
	case ScopeProfile:
		b.Compare(profileColumn, "=", s.ProfileID)
	}
}
