// Package oscalmodel also implements the model schema contract:
// parsing and emitting whole documents and individual blocks by name,
// grounded on roscal_cli/src/models/model.rs's per-model dispatch over
// a Block enum. Go's reflection plus the `oscal:"<block>"` struct tag
// on each root Class type plays the same role as that hand-written
// dispatch, without needing seven bespoke Get/Set implementations.
package oscalmodel

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/crossplane/crossplane-runtime/pkg/errors"
	"github.com/iancoleman/strcase"
	"sigs.k8s.io/yaml"
)

// ModelTag names one of the seven document variants.
type ModelTag string

const (
	ModelAssessmentPlan       ModelTag = "assessment-plan"
	ModelAssessmentResults    ModelTag = "assessment-results"
	ModelPoam                 ModelTag = "poam"
	ModelCatalog              ModelTag = "catalog"
	ModelProfile              ModelTag = "profile"
	ModelComponentDefinition  ModelTag = "component-definition"
	ModelSsp                  ModelTag = "ssp"
)

// AllModelTags lists the seven model tags in the order they appear in
// show-dissect output.
var AllModelTags = []ModelTag{
	ModelAssessmentPlan,
	ModelAssessmentResults,
	ModelPoam,
	ModelCatalog,
	ModelProfile,
	ModelComponentDefinition,
	ModelSsp,
}

// blockOrder is the authoritative, fixed block order per model.
var blockOrder = map[ModelTag][]string{
	ModelAssessmentPlan: {"uuid", "metadata", "import_ssp", "local_definitions", "terms_and_conditions", "reviewed_controls", "assessment_subjects", "assessment_assets", "tasks", "back_matter"},
	ModelAssessmentResults: {"uuid", "metadata", "import_ap", "local_definitions", "results", "back_matter"},
	ModelPoam: {"uuid", "metadata", "import_ssp", "system_id", "local_definitions", "observations", "risks", "findings", "poam_items", "back_matter"},
	ModelCatalog: {"uuid", "metadata", "params", "controls", "groups", "back_matter"},
	ModelProfile: {"uuid", "metadata", "imports", "merge", "modify", "back_matter"},
	ModelComponentDefinition: {"uuid", "metadata", "import_component_definitions", "components", "capabilities", "back_matter"},
	ModelSsp: {"uuid", "metadata", "import_profile", "system_characteristics", "system_implementation", "control_implementation", "back_matter"},
}

// requiredBlocks lists, per model, the blocks that must always
// serialize (even when empty) rather than being omittable.
var requiredBlocks = map[ModelTag]map[string]bool{
	ModelAssessmentPlan:      {"uuid": true, "metadata": true, "import_ssp": true, "reviewed_controls": true},
	ModelAssessmentResults:   {"uuid": true, "metadata": true, "import_ap": true, "results": true},
	ModelPoam:                {"uuid": true, "metadata": true, "poam_items": true},
	ModelCatalog:             {"uuid": true, "metadata": true},
	ModelProfile:             {"uuid": true, "metadata": true, "imports": true},
	ModelComponentDefinition: {"uuid": true, "metadata": true},
	ModelSsp:                 {"uuid": true, "metadata": true, "system_characteristics": true, "system_implementation": true, "control_implementation": true},
}

// BlockNames returns the fixed, ordered block names for a model tag.
// Returns nil for an unrecognized tag.
func BlockNames(tag ModelTag) []string {
	names, ok := blockOrder[tag]
	if !ok {
		return nil
	}
	out := make([]string, len(names))
	copy(out, names)
	return out
}

// IsRequiredBlock reports whether a named block must always serialize
// for the given model.
func IsRequiredBlock(tag ModelTag, block string) bool {
	return requiredBlocks[tag][block]
}

// IsValidModel reports whether tag names one of the seven models.
func IsValidModel(tag ModelTag) bool {
	_, ok := blockOrder[tag]
	return ok
}

// NormalizeModelTag accepts a model name in any common casing
// (ComponentDefinition, component_definition, component-definition)
// and returns its canonical lisp-case ModelTag, for CLI ergonomics
// around the --model flag.
func NormalizeModelTag(s string) ModelTag {
	return ModelTag(strcase.ToKebab(s))
}

// IsValidBlock reports whether block is one of tag's declared blocks.
func IsValidBlock(tag ModelTag, block string) bool {
	for _, b := range blockOrder[tag] {
		if b == block {
			return true
		}
	}
	return false
}

// envelopeFor allocates the wire envelope for a model tag, with the
// root Class pointer field itself allocated so callers can parse
// directly into it.
func envelopeFor(tag ModelTag) (envelope any, root any, err error) {
	switch tag {
	case ModelAssessmentPlan:
		e := &AssessmentPlan{AssessmentPlan: &SecurityAssessmentPlanClass{}}
		return e, e.AssessmentPlan, nil
	case ModelAssessmentResults:
		e := &AssessmentResults{AssessmentResults: &SecurityAssessmentResultsClass{}}
		return e, e.AssessmentResults, nil
	case ModelPoam:
		e := &Poam{PlanOfActionAndMilestones: &PlanOfActionAndMilestonesClass{}}
		return e, e.PlanOfActionAndMilestones, nil
	case ModelCatalog:
		e := &Catalog{Catalog: &CatalogClass{}}
		return e, e.Catalog, nil
	case ModelProfile:
		e := &Profile{Profile: &ProfileClass{}}
		return e, e.Profile, nil
	case ModelComponentDefinition:
		e := &ComponentDefinition{ComponentDefinition: &ComponentDefinitionClass{}}
		return e, e.ComponentDefinition, nil
	case ModelSsp:
		e := &Ssp{SystemSecurityPlan: &SystemSecurityPlanClass{}}
		return e, e.SystemSecurityPlan, nil
	default:
		return nil, nil, errors.Errorf("unknown model tag %q", tag)
	}
}

// Format names a wire serialization.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// Parse decodes a whole document of the given model and format,
// rejecting unknown wire keys at every level.
func Parse(tag ModelTag, data []byte, format Format) (any, error) {
	envelope, _, err := envelopeFor(tag)
	if err != nil {
		return nil, err
	}
	if err := unmarshalStrict(data, envelope, format); err != nil {
		return nil, err
	}
	root, err := Root(tag, envelope)
	if err != nil {
		return nil, err
	}
	if err := validateMetadata(root); err != nil {
		return nil, err
	}
	return envelope, nil
}

// validator is satisfied by Metadata's Validate method; matched by
// interface rather than importing ozzo-validation here to keep this
// file's only validation dependency scoped to what it actually calls.
type validator interface {
	Validate() error
}

// validateMetadata runs Metadata.Validate (oscal-version semver check)
// against the metadata block of a freshly parsed root.
func validateMetadata(root any) error {
	field, err := blockField(root, "metadata")
	if err != nil {
		return err
	}
	v, ok := field.Interface().(validator)
	if !ok {
		return nil
	}
	if err := v.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	return nil
}

// Emit encodes a whole document (the envelope returned by Parse) in
// the given format.
func Emit(envelope any, format Format) ([]byte, error) {
	return marshal(envelope, format)
}

// Root returns the root Class object in tag's envelope (unwrapping
// the wire envelope's $schema/named-key layer).
func Root(tag ModelTag, envelope any) (any, error) {
	v := reflect.ValueOf(envelope)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil, errors.Errorf("envelope for %q is not a struct", tag)
	}
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		if t.Field(i).Name == "Schema" {
			continue
		}
		return v.Field(i).Interface(), nil
	}
	return nil, errors.Errorf("envelope for %q has no root field", tag)
}

// blockField locates the reflect.Value of a named block on a root
// Class pointer, by its `oscal:"<block>"` struct tag.
func blockField(root any, block string) (reflect.Value, error) {
	v := reflect.ValueOf(root)
	if v.Kind() != reflect.Ptr || v.IsNil() {
		return reflect.Value{}, errors.New("root must be a non-nil pointer")
	}
	elem := v.Elem()
	t := elem.Type()
	for i := 0; i < t.NumField(); i++ {
		if t.Field(i).Tag.Get("oscal") == block {
			return elem.Field(i), nil
		}
	}
	return reflect.Value{}, errors.Errorf("block %q not found on %s", block, t.Name())
}

// ParseBlock decodes a single block's fragment bytes as the
// schema-declared type of that block for the given model, returning
// the decoded value (nil if data is empty, meaning the block is
// treated as absent).
func ParseBlock(tag ModelTag, block string, data []byte, format Format) (any, error) {
	if !IsValidBlock(tag, block) {
		return nil, errors.Errorf("block %q is not defined for model %q", block, tag)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}
	_, root, err := envelopeFor(tag)
	if err != nil {
		return nil, err
	}
	field, err := blockField(root, block)
	if err != nil {
		return nil, err
	}
	// Allocate a fresh addressable value of the field's underlying
	// (non-pointer) type so strict unmarshal has something to decode
	// into, then store it back in whatever shape the field expects.
	fieldType := field.Type()
	isPtr := fieldType.Kind() == reflect.Ptr
	targetType := fieldType
	if isPtr {
		targetType = fieldType.Elem()
	}
	target := reflect.New(targetType)
	if err := unmarshalStrict(data, target.Interface(), format); err != nil {
		return nil, err
	}
	if isPtr {
		return target.Interface(), nil
	}
	return target.Elem().Interface(), nil
}

// EmitBlock encodes one block's current value (the parsed type
// returned by ParseBlock, or the value read from a root's field)
// into fragment bytes. A nil value (absent optional block) emits an
// empty byte slice.
func EmitBlock(value any, format Format) ([]byte, error) {
	if value == nil {
		return nil, nil
	}
	v := reflect.ValueOf(value)
	if v.Kind() == reflect.Ptr && v.IsNil() {
		return nil, nil
	}
	if v.Kind() == reflect.Slice && v.IsNil() {
		return nil, nil
	}
	return marshal(value, format)
}

// GetBlock reads a named block's current value off a root Class
// pointer. For an unset optional pointer/slice block, returns nil.
func GetBlock(root any, block string) (any, error) {
	field, err := blockField(root, block)
	if err != nil {
		return nil, err
	}
	if (field.Kind() == reflect.Ptr || field.Kind() == reflect.Slice) && field.IsNil() {
		return nil, nil
	}
	return field.Interface(), nil
}

// SetBlock writes a parsed block value onto a root Class pointer. A
// nil value clears an optional block; required blocks must not be
// set to nil.
func SetBlock(root any, block string, value any) error {
	field, err := blockField(root, block)
	if err != nil {
		return err
	}
	if !field.CanSet() {
		return errors.Errorf("block %q is not settable", block)
	}
	if value == nil {
		switch field.Kind() {
		case reflect.Ptr, reflect.Slice:
			field.Set(reflect.Zero(field.Type()))
			return nil
		default:
			return errors.Errorf("block %q is required and cannot be cleared", block)
		}
	}
	vv := reflect.ValueOf(value)
	if !vv.Type().AssignableTo(field.Type()) {
		return errors.Errorf("block %q: cannot assign %s to %s", block, vv.Type(), field.Type())
	}
	field.Set(vv)
	return nil
}

func unmarshalStrict(data []byte, out any, format Format) error {
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(out); err != nil {
			return errors.Wrap(err, "parse: json")
		}
		return nil
	case FormatYAML:
		if err := yaml.UnmarshalStrict(data, out); err != nil {
			return errors.Wrap(err, "parse: yaml")
		}
		return nil
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

func marshal(in any, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		b, err := json.MarshalIndent(in, "", "  ")
		if err != nil {
			return nil, errors.Wrap(err, "emit: json")
		}
		return b, nil
	case FormatYAML:
		b, err := yaml.Marshal(in)
		if err != nil {
			return nil, errors.Wrap(err, "emit: yaml")
		}
		return b, nil
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
}
