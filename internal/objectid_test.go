package internal

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestObjectID(t *testing.T) {
	c := qt.New(t)
	id := NewObjectID()
	c.Assert(id.IsZero(), qt.IsFalse)
	c.Assert(id.String(), qt.HasLen, 24)
	c.Assert(NilObjectID.IsZero(), qt.IsTrue)

	parsed, err := ObjectIDFromHex(id.String())
	c.Assert(err, qt.IsNil)
	c.Assert(parsed, qt.Equals, id)

	_, err = ObjectIDFromHex("not-a-hex-id")
	c.Assert(err, qt.IsNotNil)
}
