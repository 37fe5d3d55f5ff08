package repository

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestWhereBuilderEmpty(t *testing.T) {
	c := qt.New(t)

	b := NewWhere()
	c.Assert(b.SQL(), qt.Equals, "")
	c.Assert(b.Args(), qt.HasLen, 0)
}

func TestWhereBuilderPlaceholderOrder(t *testing.T) {
	c := qt.New(t)

	b := NewWhere()
	b.Compare("s.user_id", "=", "id-1")
	b.Compare("m.name", "ILIKE", "%crane%")
	b.Compare("m.approval_status", "=", "approved")

	c.Assert(b.SQL(), qt.Equals,
		" WHERE s.user_id = $1 AND m.name ILIKE $2 AND m.approval_status = $3")
	c.Assert(b.Args(), qt.DeepEquals, []any{"id-1", "%crane%", "approved"})
}

func TestWhereBuilderClauseBindsNothing(t *testing.T) {
	c := qt.New(t)

	b := NewWhere()
	b.Compare("m.approval_status", "=", "pending")
	b.Clause("a.status IS NULL")
	b.Compare("s.user_id", "=", "id-2")

	// The raw clause must not consume a placeholder index.
	c.Assert(b.SQL(), qt.Equals,
		" WHERE m.approval_status = $1 AND a.status IS NULL AND s.user_id = $2")
	c.Assert(b.Args(), qt.DeepEquals, []any{"pending", "id-2"})
}

func TestScopeApply(t *testing.T) {
	c := qt.New(t)

	tests := []struct {
		name     string
		scope    Scope
		wantSQL  string
		wantArgs []any
	}{
		{
			name:     "unrestricted adds nothing",
			scope:    Scope{Kind: ScopeUnrestricted},
			wantSQL:  "",
			wantArgs: nil,
		},
		{
			name:     "identity scope filters on identity column",
			scope:    Scope{Kind: ScopeIdentity, IdentityID: "user-9"},
			wantSQL:  " WHERE s.user_id = $1",
			wantArgs: []any{"user-9"},
		},
		{
			name:     "profile scope filters on profile column",
			scope:    Scope{Kind: ScopeProfile, ProfileID: "sub-3"},
			wantSQL:  " WHERE m.subcontractor_id = $1",
			wantArgs: []any{"sub-3"},
		},
	}

	for _, tt := range tests {
		c.Run(tt.name, func(c *qt.C) {
			b := NewWhere()
			tt.scope.apply(b, "s.user_id", "m.subcontractor_id")
			c.Assert(b.SQL(), qt.Equals, tt.wantSQL)
			if tt.wantArgs == nil {
				c.Assert(b.Args(), qt.HasLen, 0)
			} else {
				c.Assert(b.Args(), qt.DeepEquals, tt.wantArgs)
			}
		})
	}
}
