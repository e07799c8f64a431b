package oscaldriver

import (
	"os"
	"testing"

	"github.com/spf13/afero"
	"gotest.tools/v3/assert"

	"github.com/upbound/oscal/internal/oscalmodel"
)

const driverTestCatalogYAML = `catalog:
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

func TestWithMarkupModeSetsAndRestoresEnv(t *testing.T) {
	t.Setenv(markupRenderModeEnv, "DISABLED")

	err := withMarkupMode(true, func() error {
		assert.Equal(t, os.Getenv(markupRenderModeEnv), "ENABLED")
		return nil
	})
	assert.NilError(t, err)
	assert.Equal(t, os.Getenv(markupRenderModeEnv), "DISABLED")
}

func TestWithMarkupModeUnsetsWhenPreviouslyAbsent(t *testing.T) {
	assert.NilError(t, os.Unsetenv(markupRenderModeEnv))

	_ = withMarkupMode(false, func() error { return nil })

	_, had := os.LookupEnv(markupRenderModeEnv)
	assert.Assert(t, !had)
}

func TestDriverValidateAcceptsWellFormedDocument(t *testing.T) {
	fs := afero.NewMemMapFs()
	assert.NilError(t, afero.WriteFile(fs, "catalog.yaml", []byte(driverTestCatalogYAML), 0o644))

	d := &Driver{FS: fs, Spinner: DefaultSpinner}
	err := d.Validate(ValidateOptions{
		SourcePath: "catalog.yaml",
		Model:      oscalmodel.ModelCatalog,
		Format:     oscalmodel.FormatYAML,
	})
	assert.NilError(t, err)
}

func TestDriverValidateRejectsUnknownField(t *testing.T) {
	fs := afero.NewMemMapFs()
	bad := driverTestCatalogYAML + "not-a-real-field: true\n"
	assert.NilError(t, afero.WriteFile(fs, "catalog.yaml", []byte(bad), 0o644))

	d := &Driver{FS: fs, Spinner: DefaultSpinner}
	err := d.Validate(ValidateOptions{
		SourcePath: "catalog.yaml",
		Model:      oscalmodel.ModelCatalog,
		Format:     oscalmodel.FormatYAML,
	})
	assert.Assert(t, err != nil)
}

func TestShowDissectListsAllSevenModels(t *testing.T) {
	out := ShowDissect()
	assert.Equal(t, len(out), len(oscalmodel.AllModelTags))
	for _, tag := range oscalmodel.AllModelTags {
		assert.Assert(t, len(out[tag]) > 0)
	}
}
