package apperr

import (
	"errors"
	"fmt"
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestCodeOf(t *testing.T) {
	c := qt.New(t)

	c.Assert(CodeOf(NotFound("manpower", "m-1")), qt.Equals, CodeNotFound)
	c.Assert(CodeOf(Conflict("Username already exists")), qt.Equals, CodeConflict)
	c.Assert(CodeOf(errors.New("plain")), qt.Equals, CodeInternal)

	// Classification survives wrapping with %w.
	wrapped := fmt.Errorf("failed to provision: %w", Conflict("Username already exists"))
	c.Assert(CodeOf(wrapped), qt.Equals, CodeConflict)
}

func TestMessageOf(t *testing.T) {
	c := qt.New(t)

	c.Assert(MessageOf(Validation("Name is required")), qt.Equals, "Name is required")
	c.Assert(MessageOf(NotFound("subcontractor", "s-1")), qt.Equals, "subcontractor s-1 not found")

	// Internal detail never reaches the caller.
	internal := Wrap(errors.New("connection refused"), CodeInternal, "failed to list manpower")
	c.Assert(MessageOf(internal), qt.Equals, "Internal server error")
	c.Assert(MessageOf(errors.New("boom")), qt.Equals, "Internal server error")
}

func TestUnwrap(t *testing.T) {
	c := qt.New(t)

	cause := errors.New("connection refused")
	err := Wrap(cause, CodeInternal, "failed to list manpower")
	c.Assert(errors.Is(err, cause), qt.IsTrue)
}
