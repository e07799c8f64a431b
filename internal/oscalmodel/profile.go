package oscalmodel

import (
	"encoding/json"

	"github.com/upbound/oscal/internal/oscalfield"
)

// IncludeAll marks "all available items" in a selection; it carries no
// fields, mirroring roscal_lib's empty IncludeAll struct.
type IncludeAll struct{}

// IncludeContainedControlsWithControl is a closed sum controlling
// whether child controls are pulled in alongside a selected control.
type IncludeContainedControlsWithControl string

const (
	IncludeContainedNo  IncludeContainedControlsWithControl = "no"
	IncludeContainedYes IncludeContainedControlsWithControl = "yes"
)

func (v IncludeContainedControlsWithControl) Validate() error {
	return oscalfield.ClosedSum("with-child-controls", string(v), string(IncludeContainedNo), string(IncludeContainedYes))
}

func (v *IncludeContainedControlsWithControl) UnmarshalJSON(b []byte) error {
	d, err := oscalfield.DecodeClosedSum[IncludeContainedControlsWithControl](b, "with-child-controls", string(IncludeContainedNo), string(IncludeContainedYes))
	if err != nil {
		return err
	}
	*v = d
	return nil
}

func (v IncludeContainedControlsWithControl) MarshalJSON() ([]byte, error) {
	if err := v.Validate(); err != nil {
		return nil, err
	}
	return json.Marshal(string(v))
}

// MatchControlsByPattern selects controls by a glob-like pattern.
type MatchControlsByPattern struct {
	Pattern *string `json:"pattern,omitempty"`
}

// SelectControl names or matches one or more controls for inclusion or
// exclusion from a profile import.
type SelectControl struct {
	WithIDs           []oscalfield.Token                   `json:"with-ids,omitempty"`
	Matching          []MatchControlsByPattern             `json:"matching,omitempty"`
	WithChildControls *IncludeContainedControlsWithControl `json:"with-child-controls,omitempty"`
}

// ImportResource pulls controls from one external catalog or profile.
type ImportResource struct {
	Href            oscalfield.URIReference `json:"href"`
	IncludeAll      *IncludeAll             `json:"include-all,omitempty"`
	IncludeControls []SelectControl         `json:"include-controls,omitempty"`
	ExcludeControls []SelectControl         `json:"exclude-controls,omitempty"`
}

// CombinationMethod is a closed sum describing how imported groups
// combine.
type CombinationMethod string

const (
	CombinationKeep     CombinationMethod = "keep"
	CombinationMerge    CombinationMethod = "merge"
	CombinationUseFirst CombinationMethod = "use-first"
)

func (c CombinationMethod) Validate() error {
	return oscalfield.ClosedSum("method", string(c), string(CombinationKeep), string(CombinationMerge), string(CombinationUseFirst))
}

func (c *CombinationMethod) UnmarshalJSON(b []byte) error {
	d, err := oscalfield.DecodeClosedSum[CombinationMethod](b, "method", string(CombinationKeep), string(CombinationMerge), string(CombinationUseFirst))
	if err != nil {
		return err
	}
	*c = d
	return nil
}

func (c CombinationMethod) MarshalJSON() ([]byte, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return json.Marshal(string(c))
}

// CombinationRule selects the CombinationMethod for a merge.
type CombinationRule struct {
	Method *CombinationMethod `json:"method,omitempty"`
}

// Order is a closed sum controlling insertion ordering.
type Order string

const (
	OrderKeep       Order = "keep"
	OrderAscending  Order = "ascending"
	OrderDescending Order = "descending"
)

func (o Order) Validate() error {
	return oscalfield.ClosedSum("order", string(o), string(OrderKeep), string(OrderAscending), string(OrderDescending))
}

func (o *Order) UnmarshalJSON(b []byte) error {
	d, err := oscalfield.DecodeClosedSum[Order](b, "order", string(OrderKeep), string(OrderAscending), string(OrderDescending))
	if err != nil {
		return err
	}
	*o = d
	return nil
}

func (o Order) MarshalJSON() ([]byte, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	return json.Marshal(string(o))
}

// InsertControls inserts a selection of controls at a position during
// a custom grouping merge.
type InsertControls struct {
	Order           *Order          `json:"order,omitempty"`
	IncludeAll      *IncludeAll     `json:"include-all,omitempty"`
	IncludeControls []SelectControl `json:"include-controls,omitempty"`
	ExcludeControls []SelectControl `json:"exclude-controls,omitempty"`
}

// ControlGroup is a recursive grouping of controls assembled by a
// profile's custom merge.
type ControlGroup struct {
	ID             *oscalfield.Token `json:"id,omitempty"`
	Class          *oscalfield.Token `json:"class,omitempty"`
	Title          oscalfield.Markup `json:"title"`
	Props          []Property        `json:"props,omitempty"`
	Links          []Link            `json:"links,omitempty"`
	Params         []Parameter       `json:"params,omitempty"`
	Parts          []Part            `json:"parts,omitempty"`
	Groups         []ControlGroup    `json:"groups,omitempty"`
	InsertControls []InsertControls  `json:"insert-controls,omitempty"`
}

// CustomGrouping assembles groups explicitly for a profile merge.
type CustomGrouping struct {
	Groups         []ControlGroup   `json:"groups,omitempty"`
	InsertControls []InsertControls `json:"insert-controls,omitempty"`
}

// FlatWithoutGrouping requests a flat (ungrouped) merge result; it
// carries no fields.
type FlatWithoutGrouping struct{}

// MergeControls governs how a profile combines its imports.
type MergeControls struct {
	Combine *CombinationRule     `json:"combine,omitempty"`
	AsIs    *bool                `json:"as-is,omitempty"`
	Custom  *CustomGrouping      `json:"custom,omitempty"`
	Flat    *FlatWithoutGrouping `json:"flat,omitempty"`
}

// Position is a closed sum for where an Addition is inserted relative
// to a control.
type Position string

const (
	PositionBefore   Position = "before"
	PositionAfter    Position = "after"
	PositionStarting Position = "starting"
	PositionEnding   Position = "ending"
)

func (p Position) Validate() error {
	return oscalfield.ClosedSum("position", string(p), string(PositionBefore), string(PositionAfter), string(PositionStarting), string(PositionEnding))
}

func (p *Position) UnmarshalJSON(b []byte) error {
	d, err := oscalfield.DecodeClosedSum[Position](b, "position", string(PositionBefore), string(PositionAfter), string(PositionStarting), string(PositionEnding))
	if err != nil {
		return err
	}
	*p = d
	return nil
}

func (p Position) MarshalJSON() ([]byte, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return json.Marshal(string(p))
}

// Addition inserts new content into a control during modification.
type Addition struct {
	Position *Position          `json:"position,omitempty"`
	ByID     *oscalfield.Token  `json:"by-id,omitempty"`
	Title    *oscalfield.Markup `json:"title,omitempty"`
	Props    []Property         `json:"props,omitempty"`
	Links    []Link             `json:"links,omitempty"`
	Params   []Parameter        `json:"params,omitempty"`
	Parts    []Part             `json:"parts,omitempty"`
}

// ItemNameReference is a closed sum naming the kind of item a Removal
// targets.
type ItemNameReference string

const (
	ItemParam   ItemNameReference = "param"
	ItemProp    ItemNameReference = "prop"
	ItemPart    ItemNameReference = "part"
	ItemLink    ItemNameReference = "link"
	ItemMapping ItemNameReference = "mapping"
	ItemMap     ItemNameReference = "map"
)

func (i ItemNameReference) Validate() error {
	return oscalfield.ClosedSum("by-item-name", string(i), string(ItemParam), string(ItemProp), string(ItemPart), string(ItemLink), string(ItemMapping), string(ItemMap))
}

func (i *ItemNameReference) UnmarshalJSON(b []byte) error {
	d, err := oscalfield.DecodeClosedSum[ItemNameReference](b, "by-item-name", string(ItemParam), string(ItemProp), string(ItemPart), string(ItemLink), string(ItemMapping), string(ItemMap))
	if err != nil {
		return err
	}
	*i = d
	return nil
}

func (i ItemNameReference) MarshalJSON() ([]byte, error) {
	if err := i.Validate(); err != nil {
		return nil, err
	}
	return json.Marshal(string(i))
}

// Removal strips content from a control during modification.
type Removal struct {
	ByName     *oscalfield.Token  `json:"by-name,omitempty"`
	ByClass    *oscalfield.Token  `json:"by-class,omitempty"`
	ByID       *oscalfield.Token  `json:"by-id,omitempty"`
	ByItemName *ItemNameReference `json:"by-item-name,omitempty"`
	ByNs       *string            `json:"by-ns,omitempty"`
}

// Alteration is one control's set of additions and removals.
type Alteration struct {
	ControlID oscalfield.Token `json:"control-id"`
	Adds      []Addition       `json:"adds,omitempty"`
	Removes   []Removal        `json:"removes,omitempty"`
}

// ModifyControls is the top-level set of control alterations and
// parameter overrides applied by a profile.
type ModifyControls struct {
	SetParameters []ParameterSetting `json:"set-parameters,omitempty"`
	Alters        []Alteration       `json:"alters,omitempty"`
}

// ProfileClass is Profile's root object.
type ProfileClass struct {
	UUID       oscalfield.UUID  `json:"uuid" oscal:"uuid"`
	Metadata   Metadata         `json:"metadata" oscal:"metadata"`
	Imports    []ImportResource `json:"imports" oscal:"imports"`
	Merge      *MergeControls   `json:"merge,omitempty" oscal:"merge"`
	Modify     *ModifyControls  `json:"modify,omitempty" oscal:"modify"`
	BackMatter *BackMatter      `json:"back-matter,omitempty" oscal:"back_matter"`
}

func (c *ProfileClass) GetUUID() oscalfield.UUID { return c.UUID }
func (c *ProfileClass) SetUUID(u oscalfield.UUID) { c.UUID = u }

// Profile is the wire envelope for a Profile document.
type Profile struct {
	Schema  *string       `json:"$schema,omitempty"`
	Profile *ProfileClass `json:"profile"`
}
