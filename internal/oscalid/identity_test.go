package oscalid

import (
	"testing"

	"gotest.tools/v3/assert"

	"github.com/upbound/oscal/internal/oscalfield"
)

// testRoot is a minimal RootObject stand-in, carrying one piece of
// content (Title) plus a nested uuid field (a NestedID, mirroring a
// block's own uuid) so structural equality can be exercised against
// both the ignored root uuid and a nested uuid that must still count.
type testRoot struct {
	UUID     oscalfield.UUID
	Title    string
	NestedID oscalfield.UUID
}

func (r *testRoot) GetUUID() oscalfield.UUID { return r.UUID }
func (r *testRoot) SetUUID(u oscalfield.UUID) { r.UUID = u }

func TestStructuralEqualIgnoringRootUUID(t *testing.T) {
	a := &testRoot{UUID: "00000000-0000-4000-8000-000000000001", Title: "same", NestedID: "00000000-0000-4000-8000-0000000000aa"}
	b := &testRoot{UUID: "00000000-0000-4000-8000-000000000002", Title: "same", NestedID: "00000000-0000-4000-8000-0000000000aa"}
	assert.Equal(t, StructuralEqualIgnoringRootUUID(a, b), true)

	c := &testRoot{UUID: "00000000-0000-4000-8000-000000000001", Title: "same", NestedID: "00000000-0000-4000-8000-0000000000bb"}
	assert.Equal(t, StructuralEqualIgnoringRootUUID(a, c), false)

	d := &testRoot{UUID: "00000000-0000-4000-8000-000000000001", Title: "different", NestedID: "00000000-0000-4000-8000-0000000000aa"}
	assert.Equal(t, StructuralEqualIgnoringRootUUID(a, d), false)
}

func TestRefreshNoChangeLeavesUUID(t *testing.T) {
	baseline := &testRoot{UUID: "00000000-0000-4000-8000-000000000001", Title: "same"}
	current := &testRoot{UUID: "00000000-0000-4000-8000-000000000001", Title: "same"}
	Refresh(current, baseline, V4)
	assert.Equal(t, current.UUID, oscalfield.UUID("00000000-0000-4000-8000-000000000001"))
}

func TestRefreshV4AssignsFreshRandomUUID(t *testing.T) {
	baseline := &testRoot{UUID: "00000000-0000-4000-8000-000000000001", Title: "before"}
	current := &testRoot{UUID: "00000000-0000-4000-8000-000000000001", Title: "after"}
	Refresh(current, baseline, V4)
	assert.Assert(t, current.UUID != baseline.UUID)
	assert.NilError(t, current.UUID.Validate())
}

func TestRefreshV5AssignsFixedDeterministicUUID(t *testing.T) {
	baseline := &testRoot{UUID: "00000000-0000-4000-8000-000000000001", Title: "before"}
	first := &testRoot{UUID: "00000000-0000-4000-8000-000000000001", Title: "after"}
	Refresh(first, baseline, V5)

	second := &testRoot{UUID: "00000000-0000-4000-8000-000000000001", Title: "after, again"}
	Refresh(second, baseline, V5)

	assert.Equal(t, first.UUID, second.UUID)
	assert.NilError(t, first.UUID.Validate())
}
