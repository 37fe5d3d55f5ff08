package service

import (
	"context"
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/rs/zerolog"

	"github.com/buildzy/be-workforce/internal/apperr"
	"github.com/buildzy/be-workforce/internal/auth"
)

// Validation failures short-circuit before any storage access, so these
// services run against nil repositories.

func TestManpowerSetApprovalRejectsInvalidStatus(t *testing.T) {
	c := qt.New(t)
	s := NewManpowerService(nil, nil, zerolog.Nop())

	for _, status := range []string{"", "pending", "maybe", "all"} {
		err := s.SetApproval(context.Background(), "m-1", status)
		c.Assert(apperr.CodeOf(err), qt.Equals, apperr.CodeValidation, qt.Commentf("status %q", status))
	}
}

func TestMarkAttendanceRejectsInvalidStatus(t *testing.T) {
	c := qt.New(t)
	s := NewManpowerService(nil, nil, zerolog.Nop())
	p := auth.Principal{ID: "u-1", Role: auth.RoleSubcontractor}

	for _, status := range []string{"", "not_marked", "deployed", "all"} {
		err := s.MarkAttendance(context.Background(), p, "m-1", status)
		c.Assert(apperr.CodeOf(err), qt.Equals, apperr.CodeValidation, qt.Commentf("status %q", status))
	}
}

func TestEquipmentSetStatusRejectsInvalidStatus(t *testing.T) {
	c := qt.New(t)
	s := NewEquipmentService(nil, nil, zerolog.Nop())
	p := auth.Principal{ID: "u-1", Role: auth.RoleSubcontractor}

	for _, status := range []string{"", "present", "repairing", "all"} {
		err := s.SetStatus(context.Background(), p, "e-1", status)
		c.Assert(apperr.CodeOf(err), qt.Equals, apperr.CodeValidation, qt.Commentf("status %q", status))
	}
}

func TestCreateRequiresName(t *testing.T) {
	c := qt.New(t)
	p := auth.Principal{ID: "u-1", Role: auth.RoleSubcontractor}

	_, err := NewManpowerService(nil, nil, zerolog.Nop()).Create(context.Background(), p, "")
	c.Assert(apperr.CodeOf(err), qt.Equals, apperr.CodeValidation)

	_, err = NewEquipmentService(nil, nil, zerolog.Nop()).Create(context.Background(), p, "", "")
	c.Assert(apperr.CodeOf(err), qt.Equals, apperr.CodeValidation)
}

func TestProvisionRequiredFields(t *testing.T) {
	c := qt.New(t)
	s := NewSubcontractorService(nil, zerolog.Nop())

	tests := []struct {
		name     string
		username string
		password string
		company  string
	}{
		{"missing username", "", "pw", "ACME"},
		{"missing password", "acme", "", "ACME"},
		{"missing company", "acme", "pw", ""},
	}

	for _, tt := range tests {
		c.Run(tt.name, func(c *qt.C) {
			_, err := s.Provision(context.Background(), tt.username, tt.password, tt.company, nil, nil)
			c.Assert(apperr.CodeOf(err), qt.Equals, apperr.CodeValidation)
		})
	}
}

func TestLoginRequiredFields(t *testing.T) {
	c := qt.New(t)
	s := NewAuthService(nil, nil, zerolog.Nop())

	_, _, err := s.Login(context.Background(), "", "pw")
	c.Assert(apperr.CodeOf(err), qt.Equals, apperr.CodeValidation)

	_, _, err = s.Login(context.Background(), "admin", "")
	c.Assert(apperr.CodeOf(err), qt.Equals, apperr.CodeValidation)
}
