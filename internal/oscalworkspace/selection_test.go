package oscalworkspace

import (
	"testing"

	"gotest.tools/v3/assert"

	"github.com/upbound/oscal/internal/oscalmodel"
)

func TestExpandBlockSelectionAllExpands(t *testing.T) {
	out, err := ExpandBlockSelection(oscalmodel.ModelCatalog, []string{"all"})
	assert.NilError(t, err)
	assert.DeepEqual(t, out, oscalmodel.BlockNames(oscalmodel.ModelCatalog))
}

func TestExpandBlockSelectionDedupesPreservingOrder(t *testing.T) {
	out, err := ExpandBlockSelection(oscalmodel.ModelCatalog, []string{"groups", "params", "groups"})
	assert.NilError(t, err)
	assert.DeepEqual(t, out, []string{"groups", "params"})
}

func TestExpandBlockSelectionRejectsAllCombinedWithOther(t *testing.T) {
	_, err := ExpandBlockSelection(oscalmodel.ModelCatalog, []string{"all", "groups"})
	assert.ErrorContains(t, err, "cannot be combined")
	var wsErr *Error
	assert.Assert(t, asError(err, &wsErr))
	assert.Equal(t, wsErr.Kind, ErrBlockSelection)
}

func TestExpandBlockSelectionRejectsUnknownBlock(t *testing.T) {
	_, err := ExpandBlockSelection(oscalmodel.ModelCatalog, []string{"not-a-block"})
	assert.ErrorContains(t, err, "unknown block")
}

func TestExpandBlockSelectionRejectsUnknownModel(t *testing.T) {
	_, err := ExpandBlockSelection(oscalmodel.ModelTag("not-a-model"), []string{"all"})
	assert.ErrorContains(t, err, "unknown model")
}

func asError(err error, target **Error) bool {
	e, ok := err.(*Error)
	if !ok {
		return false
	}
	*target = e
	return true
}
