package service

import (
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/buildzy/be-workforce/internal/auth"
	"github.com/buildzy/be-workforce/internal/repository"
)

func TestResolveScope(t *testing.T) {
	c := qt.New(t)

	admin := auth.Principal{ID: "admin-1", Role: auth.RoleAdmin}
	sub := auth.Principal{ID: "user-7", Role: auth.RoleSubcontractor}

	tests := []struct {
		name   string
		p      auth.Principal
		target string
		want   repository.Scope
	}{
		{
			name: "admin without target is unrestricted",
			p:    admin,
			want: repository.Scope{Kind: repository.ScopeUnrestricted},
		},
		{
			name:   "admin with target drills into one profile",
			p:      admin,
			target: "sub-3",
			want:   repository.Scope{Kind: repository.ScopeProfile, ProfileID: "sub-3"},
		},
		{
			name: "subcontractor is restricted to own identity",
			p:    sub,
			want: repository.Scope{Kind: repository.ScopeIdentity, IdentityID: "user-7"},
		},
		{
			name:   "subcontractor cannot widen scope with a target",
			p:      sub,
			target: "sub-3",
			want:   repository.Scope{Kind: repository.ScopeIdentity, IdentityID: "user-7"},
		},
	}

	for _, tt := range tests {
		c.Run(tt.name, func(c *qt.C) {
			c.Assert(ResolveScope(tt.p, tt.target), qt.Equals, tt.want)
		})
	}
}
