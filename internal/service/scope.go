package service

import (
	"github.com/buildzy/be-workforce/internal/auth"
	"github.com/buildzy/be-workforce/internal/repository"
)

// ResolveScope derives the row-visibility restriction for a principal.
//
// A subcontractor is always restricted to the profile owned by its own
// identity; any requested target profile is overridden, so no combination of
// parameters lets one subcontractor read another's rows. An admin is
// unrestricted unless it supplies an explicit target profile for drill-down.
func ResolveScope(p auth.Principal, targetProfileID string) repository.Scope {
	if p.Role == auth.RoleSubcontractor {
		return repository.Scope{Kind: repository.ScopeIdentity, IdentityID: p.ID}
	}
	if targetProfileID != "" {
		return repository.Scope{Kind: repository.ScopeProfile, ProfileID: targetProfileID}
	}
	return repository.Scope{Kind: repository.ScopeUnrestricted}
}
