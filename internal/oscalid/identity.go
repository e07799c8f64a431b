// Package oscalid implements the identity-refresh engine: the
// content-sensitive replacement of a model root's uuid field on
// merge, grounded on roscal_lib/src/uuid_impl.rs's UpdateUuid trait
// and its generic impl_update_uuid! macro over all seven root types.
// Go has no trait macros, so the same generic behavior is expressed
// once via reflection plus a small RootObject accessor interface that
// each root Class type implements.
package oscalid

import (
	"reflect"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"

	"github.com/upbound/oscal/internal/oscalfield"
)

// oscalNamespaceName is the fixed name roscal_lib hashes under
// uuid.NAMESPACE_URL for every V5 identity refresh. Because the name
// never varies, a V5 refresh always produces the same uuid,
// regardless of what changed in the content; this mirrors the
// original engine exactly.
const oscalNamespaceName = "http://csrc.nist.gov/ns/oscal"

// RootObject is implemented by every model's root Class type so the
// identity engine can read and replace its uuid field generically.
type RootObject interface {
	GetUUID() oscalfield.UUID
	SetUUID(oscalfield.UUID)
}

// Version selects the replacement uuid's generation scheme.
type Version int

const (
	V4 Version = iota
	V5
)

// StructuralEqualIgnoringRootUUID reports whether newRoot and
// baselineRoot are equal in every field except the root uuid. Nested
// uuid fields (inside blocks) are compared as ordinary content.
func StructuralEqualIgnoringRootUUID(newRoot, baselineRoot RootObject) bool {
	newClone := cloneWithZeroUUID(newRoot)
	baselineClone := cloneWithZeroUUID(baselineRoot)
	return cmp.Equal(newClone, baselineClone)
}

// cloneWithZeroUUID makes a shallow copy of root's struct and zeroes
// its top-level uuid field so the clone can be compared for structural
// equality without the root identifier itself participating. Nested
// slices and pointers are shared with root, which is safe because only
// the top-level uuid is modified.
func cloneWithZeroUUID(root RootObject) any {
	v := reflect.ValueOf(root)
	if v.Kind() != reflect.Ptr {
		return root
	}
	clone := reflect.New(v.Elem().Type())
	clone.Elem().Set(v.Elem())
	if setter, ok := clone.Interface().(RootObject); ok {
		setter.SetUUID("")
	}
	return clone.Interface()
}

// Refresh implements the contract:
//
//	if newRoot is structurally equal to baselineRoot (ignoring the
//	root uuid), leave newRoot's uuid unchanged; otherwise assign a
//	fresh V4 or fixed-name V5 uuid per version.
//
// The caller is responsible for only invoking Refresh when the merge
// operation was invoked with an identity-refresh request; Refresh
// itself performs no such gating.
func Refresh(newRoot, baselineRoot RootObject, version Version) {
	if StructuralEqualIgnoringRootUUID(newRoot, baselineRoot) {
		return
	}
	switch version {
	case V4:
		newRoot.SetUUID(oscalfield.UUID(uuid.New().String()))
	case V5:
		newRoot.SetUUID(oscalfield.UUID(uuid.NewSHA1(uuid.NameSpaceURL, []byte(oscalNamespaceName)).String()))
	}
}
