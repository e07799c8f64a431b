package oscalworkspace

import (
	"testing"

	"github.com/spf13/afero"
	"gotest.tools/v3/assert"

	"github.com/upbound/oscal/internal/oscalmodel"
)

const testCatalogYAML = `catalog:
  uuid: 00000000-0000-4000-8000-000000000001
  metadata:
    title: Test Catalog
    last-modified: 2024-01-01T00:00:00Z
    version: "1.0.0"
    oscal-version: "1.1.2"
  groups:
    - id: grp1
      title: Group 1
      controls:
        - id: ctrl1
          title: Control 1
`

func TestDissectWritesManifestAndFragments(t *testing.T) {
	fs := afero.NewMemMapFs()
	manifest, err := Dissect(fs, "source.yaml", []byte(testCatalogYAML), oscalmodel.FormatYAML, oscalmodel.ModelCatalog, []string{"groups"}, "/out")
	assert.NilError(t, err)

	exists, err := afero.Exists(fs, manifest.Root+"/dissect_manifest.yaml")
	assert.NilError(t, err)
	assert.Assert(t, exists)

	exists, err = afero.Exists(fs, manifest.Modifiable+"/groups.yaml")
	assert.NilError(t, err)
	assert.Assert(t, exists)

	exists, err = afero.Exists(fs, manifest.Backup+"/backup")
	assert.NilError(t, err)
	assert.Assert(t, exists)

	assert.DeepEqual(t, manifest.Blocks, []string{"groups"})
}

func TestDissectRemovesRootOnParseFailure(t *testing.T) {
	fs := afero.NewMemMapFs()
	_, err := Dissect(fs, "source.yaml", []byte("not: [valid"), oscalmodel.FormatYAML, oscalmodel.ModelCatalog, []string{"all"}, "/out")
	assert.Assert(t, err != nil)

	entries, err := afero.ReadDir(fs, "/out")
	assert.NilError(t, err)
	assert.Equal(t, len(entries), 0)
}

func TestDissectRejectsBadBlockSelection(t *testing.T) {
	fs := afero.NewMemMapFs()
	_, err := Dissect(fs, "source.yaml", []byte(testCatalogYAML), oscalmodel.FormatYAML, oscalmodel.ModelCatalog, []string{"all", "groups"}, "/out")
	assert.ErrorContains(t, err, "cannot be combined")

	_, err = afero.ReadDir(fs, "/out")
	assert.Assert(t, err != nil)
}
