package oscalmodel

import (
	"testing"

	"gotest.tools/v3/assert"
)

const roundTripCatalogYAML = `catalog:
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

func TestNormalizeModelTag(t *testing.T) {
	assert.Equal(t, NormalizeModelTag("ComponentDefinition"), ModelComponentDefinition)
	assert.Equal(t, NormalizeModelTag("component_definition"), ModelComponentDefinition)
	assert.Equal(t, NormalizeModelTag("component-definition"), ModelComponentDefinition)
	assert.Equal(t, NormalizeModelTag("ssp"), ModelSsp)
}

func TestParseCatalogRoundTrip(t *testing.T) {
	envelope, err := Parse(ModelCatalog, []byte(roundTripCatalogYAML), FormatYAML)
	assert.NilError(t, err)

	root, err := Root(ModelCatalog, envelope)
	assert.NilError(t, err)
	catalog, ok := root.(*CatalogClass)
	assert.Assert(t, ok)
	assert.Equal(t, string(catalog.UUID), "00000000-0000-4000-8000-000000000001")
	assert.Equal(t, len(catalog.Groups), 1)

	out, err := Emit(envelope, FormatYAML)
	assert.NilError(t, err)
	assert.Assert(t, len(out) > 0)

	roundTripped, err := Parse(ModelCatalog, out, FormatYAML)
	assert.NilError(t, err)
	roundTrippedRoot, err := Root(ModelCatalog, roundTripped)
	assert.NilError(t, err)
	assert.DeepEqual(t, roundTrippedRoot, root)
}

func TestParseRejectsUnknownField(t *testing.T) {
	bad := roundTripCatalogYAML + "not-a-real-field: true\n"
	_, err := Parse(ModelCatalog, []byte(bad), FormatYAML)
	assert.Assert(t, err != nil)
}

func TestParseRejectsMalformedOscalVersion(t *testing.T) {
	bad := `catalog:
  uuid: 00000000-0000-4000-8000-000000000001
  metadata:
    title: Test Catalog
    last-modified: 2024-01-01T00:00:00Z
    version: "1.0.0"
    oscal-version: "not-a-semver"
`
	_, err := Parse(ModelCatalog, []byte(bad), FormatYAML)
	assert.ErrorContains(t, err, "oscal-version")
}

func TestParseRejectsInvalidClosedSumEnum(t *testing.T) {
	bad := `profile:
  uuid: 00000000-0000-4000-8000-000000000001
  metadata:
    title: Test Profile
    last-modified: 2024-01-01T00:00:00Z
    version: "1.0.0"
    oscal-version: "1.1.2"
  imports:
    - href: https://example.com/catalog.json
      include-controls:
        - with-child-controls: maybe
`
	_, err := Parse(ModelProfile, []byte(bad), FormatYAML)
	assert.Assert(t, err != nil)
}

func TestGetBlockReturnsNilForUnsetOptionalBlock(t *testing.T) {
	envelope, err := Parse(ModelCatalog, []byte(roundTripCatalogYAML), FormatYAML)
	assert.NilError(t, err)
	root, err := Root(ModelCatalog, envelope)
	assert.NilError(t, err)

	value, err := GetBlock(root, "back_matter")
	assert.NilError(t, err)
	assert.Assert(t, value == nil)
}

func TestBlockNamesMatchesFixedOrderPerModel(t *testing.T) {
	assert.DeepEqual(t, BlockNames(ModelCatalog), []string{"uuid", "metadata", "params", "controls", "groups", "back_matter"})
	assert.Assert(t, IsValidBlock(ModelCatalog, "groups"))
	assert.Assert(t, !IsValidBlock(ModelCatalog, "tasks"))
}
