package oscalworkspace

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"gotest.tools/v3/assert"

	"github.com/upbound/oscal/internal/oscalid"
	"github.com/upbound/oscal/internal/oscalmodel"
)

func dissectTestCatalog(t *testing.T, fs afero.Fs) *DissectManifest {
	t.Helper()
	manifest, err := Dissect(fs, "source.yaml", []byte(testCatalogYAML), oscalmodel.FormatYAML, oscalmodel.ModelCatalog, []string{"groups"}, "/out")
	assert.NilError(t, err)
	return manifest
}

func TestMergeRoundTripUnchangedContent(t *testing.T) {
	fs := afero.NewMemMapFs()
	manifest := dissectTestCatalog(t, fs)

	mergeManifest, merged, err := Merge(fs, manifest.Root, "/merged", oscalmodel.FormatYAML, RefreshRequest{})
	assert.NilError(t, err)
	assert.Assert(t, len(merged) > 0)

	exists, err := afero.Exists(fs, filepath.Join("/merged", "merged.yaml"))
	assert.NilError(t, err)
	assert.Assert(t, exists)

	exists, err = afero.Exists(fs, filepath.Join("/merged", "merge_manifest.yaml"))
	assert.NilError(t, err)
	assert.Assert(t, exists)

	assert.Equal(t, mergeManifest.DissectWorkspaceRef.Model, oscalmodel.ModelCatalog)
}

func TestMergeRejectsTamperedBackup(t *testing.T) {
	fs := afero.NewMemMapFs()
	manifest := dissectTestCatalog(t, fs)

	backupPath := filepath.Join(manifest.Backup, "backup")
	assert.NilError(t, afero.WriteFile(fs, backupPath, []byte("tampered"), 0o644))

	_, _, err := Merge(fs, manifest.Root, "/merged", oscalmodel.FormatYAML, RefreshRequest{})
	assert.Assert(t, err != nil)
	wsErr, ok := err.(*Error)
	assert.Assert(t, ok)
	assert.Equal(t, wsErr.Kind, ErrIntegrity)
}

func TestMergeOverlaysEditedBlockAndRefreshesUUIDOnChange(t *testing.T) {
	fs := afero.NewMemMapFs()
	manifest := dissectTestCatalog(t, fs)

	editedGroups := `- id: grp1
  title: Group 1 Renamed
  controls:
    - id: ctrl1
      title: Control 1
`
	groupsPath := filepath.Join(manifest.Modifiable, "groups.yaml")
	assert.NilError(t, afero.WriteFile(fs, groupsPath, []byte(editedGroups), 0o644))

	_, merged, err := Merge(fs, manifest.Root, "/merged", oscalmodel.FormatYAML, RefreshRequest{Requested: true, Version: oscalid.V4})
	assert.NilError(t, err)

	envelope, err := oscalmodel.Parse(oscalmodel.ModelCatalog, merged, oscalmodel.FormatYAML)
	assert.NilError(t, err)
	root, err := oscalmodel.Root(oscalmodel.ModelCatalog, envelope)
	assert.NilError(t, err)
	rootObj := root.(oscalid.RootObject)
	assert.Assert(t, string(rootObj.GetUUID()) != "00000000-0000-4000-8000-000000000001")
}

func TestMergeLeavesUUIDWhenBlockUnedited(t *testing.T) {
	fs := afero.NewMemMapFs()
	manifest := dissectTestCatalog(t, fs)

	_, merged, err := Merge(fs, manifest.Root, "/merged", oscalmodel.FormatYAML, RefreshRequest{Requested: true, Version: oscalid.V4})
	assert.NilError(t, err)

	envelope, err := oscalmodel.Parse(oscalmodel.ModelCatalog, merged, oscalmodel.FormatYAML)
	assert.NilError(t, err)
	root, err := oscalmodel.Root(oscalmodel.ModelCatalog, envelope)
	assert.NilError(t, err)
	rootObj := root.(oscalid.RootObject)
	assert.Equal(t, string(rootObj.GetUUID()), "00000000-0000-4000-8000-000000000001")
}
