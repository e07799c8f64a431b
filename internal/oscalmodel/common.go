// Package oscalmodel implements the typed document tree for the seven
// document models and the shared substructures they are built from.
//
// Shared types (Metadata, Party, Link, Property, Part, Resource,
// BackMatter, Parameter, Constraint, Selection, and so on) are ported
// from roscal_lib/src/control/profile.rs, which is the one model file
// present in the retrieval pack in full; the model-specific types for
// the other six models follow the same conventions against OSCAL's own
// fixed per-model block ordering.
package oscalmodel

import (
	"encoding/json"

	"github.com/Masterminds/semver/v3"
	"github.com/crossplane/crossplane-runtime/pkg/errors"

	"github.com/upbound/oscal/internal/oscalfield"
)

// Property is a generic name/value annotation attachable to many
// objects in the tree.
type Property struct {
	Name    oscalfield.Token   `json:"name"`
	UUID    *oscalfield.UUID   `json:"uuid,omitempty"`
	Ns      *oscalfield.URI    `json:"ns,omitempty"`
	Value   string             `json:"value"`
	Class   *oscalfield.Token  `json:"class,omitempty"`
	Group   *oscalfield.Token  `json:"group,omitempty"`
	Remarks *oscalfield.Markup `json:"remarks,omitempty"`
}

// Link is a typed reference to an external or internal resource.
type Link struct {
	Href             oscalfield.URIReference `json:"href"`
	Rel              *oscalfield.Token       `json:"rel,omitempty"`
	MediaType        *string                 `json:"media-type,omitempty"`
	ResourceFragment *string                 `json:"resource-fragment,omitempty"`
	Text             *oscalfield.Markup      `json:"text,omitempty"`
}

// Hash is a cryptographic hash value with its algorithm label.
type Hash struct {
	Algorithm string          `json:"algorithm"`
	Value     oscalfield.Hash `json:"value"`
}

// Base64Datatype is a base64-encoded payload carried inline.
type Base64Datatype struct {
	Filename  *oscalfield.Token `json:"filename,omitempty"`
	MediaType *string           `json:"media-type,omitempty"`
	Value     oscalfield.Base64 `json:"value"`
}

// DocumentIdentifier is an externally-assigned identifier for a
// document, scoped by an optional scheme URI.
type DocumentIdentifier struct {
	Scheme     *oscalfield.URI `json:"scheme,omitempty"`
	Identifier string          `json:"identifier"`
}

// ResourceLink points at the (possibly remote) content behind a
// back-matter resource.
type ResourceLink struct {
	Href      oscalfield.URIReference `json:"href"`
	MediaType *string                 `json:"media-type,omitempty"`
	Hashes    []Hash                  `json:"hashes,omitempty"`
}

// Citation attributes a resource to its source.
type Citation struct {
	Text  oscalfield.Markup `json:"text"`
	Props []Property        `json:"props,omitempty"`
	Links []Link            `json:"links,omitempty"`
}

// Resource is one entry in a document's back matter.
type Resource struct {
	UUID        oscalfield.UUID      `json:"uuid"`
	Title       *oscalfield.Markup   `json:"title,omitempty"`
	Description *oscalfield.Markup   `json:"description,omitempty"`
	Props       []Property           `json:"props,omitempty"`
	DocumentIDs []DocumentIdentifier `json:"document-ids,omitempty"`
	Citation    *Citation            `json:"citation,omitempty"`
	Rlinks      []ResourceLink       `json:"rlinks,omitempty"`
	Base64      *Base64Datatype      `json:"base64,omitempty"`
	Remarks     *oscalfield.Markup   `json:"remarks,omitempty"`
}

// BackMatter is the trailing resource catalog shared by every model.
type BackMatter struct {
	Resources []Resource `json:"resources,omitempty"`
}

// Part is a recursive labelled sub-section of prose, used by controls,
// groups, and modification additions.
type Part struct {
	ID    *oscalfield.Token  `json:"id,omitempty"`
	Name  oscalfield.Token   `json:"name"`
	Ns    *oscalfield.URI    `json:"ns,omitempty"`
	Class *oscalfield.Token  `json:"class,omitempty"`
	Title *oscalfield.Markup `json:"title,omitempty"`
	Props []Property         `json:"props,omitempty"`
	Prose *oscalfield.Markup `json:"prose,omitempty"`
	Parts []Part             `json:"parts,omitempty"`
	Links []Link             `json:"links,omitempty"`
}

// ConstraintTest is one executable expression backing a Constraint.
type ConstraintTest struct {
	Expression string             `json:"expression"`
	Remarks    *oscalfield.Markup `json:"remarks,omitempty"`
}

// Constraint restricts the values a Parameter may take.
type Constraint struct {
	Description *oscalfield.Markup `json:"description,omitempty"`
	Tests       []ConstraintTest   `json:"tests,omitempty"`
}

// Guideline is free-form guidance attached to a Parameter.
type Guideline struct {
	Prose oscalfield.Markup `json:"prose"`
}

// ParameterCardinality is a closed sum: how many values a Selection may
// admit.
type ParameterCardinality string

const (
	CardinalityOne        ParameterCardinality = "one"
	CardinalityOneOrMore  ParameterCardinality = "one-or-more"
)

func (c ParameterCardinality) Validate() error {
	return oscalfield.ClosedSum("how-many", string(c), string(CardinalityOne), string(CardinalityOneOrMore))
}

func (c *ParameterCardinality) UnmarshalJSON(b []byte) error {
	v, err := oscalfield.DecodeClosedSum[ParameterCardinality](b, "how-many", string(CardinalityOne), string(CardinalityOneOrMore))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

func (c ParameterCardinality) MarshalJSON() ([]byte, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return json.Marshal(string(c))
}

// Selection is the set of allowed choices for a Parameter.
type Selection struct {
	HowMany *ParameterCardinality `json:"how-many,omitempty"`
	Choice  []string              `json:"choice,omitempty"`
}

// Parameter is a named placeholder whose value is supplied later in
// the control-implementation lifecycle.
type Parameter struct {
	ID          oscalfield.Token   `json:"id"`
	Class       *oscalfield.Token  `json:"class,omitempty"`
	DependsOn   *oscalfield.Token  `json:"depends-on,omitempty"`
	Props       []Property         `json:"props,omitempty"`
	Links       []Link             `json:"links,omitempty"`
	Label       *oscalfield.Markup `json:"label,omitempty"`
	Usage       *oscalfield.Markup `json:"usage,omitempty"`
	Constraints []Constraint       `json:"constraints,omitempty"`
	Guidelines  []Guideline        `json:"guidelines,omitempty"`
	Values      []string           `json:"values,omitempty"`
	Select      *Selection         `json:"select,omitempty"`
	Remarks     *oscalfield.Markup `json:"remarks,omitempty"`
}

// ParameterSetting overrides a Parameter's value during profile
// modification or control implementation.
type ParameterSetting struct {
	ParamID     oscalfield.Token `json:"param-id"`
	Class       *string          `json:"class,omitempty"`
	DependsOn   *string          `json:"depends-on,omitempty"`
	Props       []Property       `json:"props,omitempty"`
	Links       []Link           `json:"links,omitempty"`
	Label       *string          `json:"label,omitempty"`
	Usage       *string          `json:"usage,omitempty"`
	Constraints []Constraint     `json:"constraints,omitempty"`
	Guidelines  []Guideline      `json:"guidelines,omitempty"`
	Values      []string         `json:"values,omitempty"`
	Select      *Selection       `json:"select,omitempty"`
}

// AddressType is a closed sum tagging an Address as home or work.
type AddressType string

const (
	AddressHome AddressType = "home"
	AddressWork AddressType = "work"
)

func (a AddressType) Validate() error {
	return oscalfield.ClosedSum("type", string(a), string(AddressHome), string(AddressWork))
}

func (a *AddressType) UnmarshalJSON(b []byte) error {
	v, err := oscalfield.DecodeClosedSum[AddressType](b, "type", string(AddressHome), string(AddressWork))
	if err != nil {
		return err
	}
	*a = v
	return nil
}

func (a AddressType) MarshalJSON() ([]byte, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return json.Marshal(string(a))
}

// Address is a physical or mailing address.
type Address struct {
	Type       *AddressType `json:"type,omitempty"`
	AddrLines  []string     `json:"addr-lines,omitempty"`
	City       *string      `json:"city,omitempty"`
	State      *string      `json:"state,omitempty"`
	PostalCode *string      `json:"postal-code,omitempty"`
	Country    *string      `json:"country,omitempty"`
}

// TelephoneNumber is a contact phone number with an optional type tag.
type TelephoneNumber struct {
	Type   *string `json:"type,omitempty"`
	Number string  `json:"number"`
}

// Location is a physical place referenced by parties or components.
type Location struct {
	UUID             oscalfield.UUID    `json:"uuid"`
	Title            *oscalfield.Markup `json:"title,omitempty"`
	Address          *Address           `json:"address,omitempty"`
	EmailAddresses   []oscalfield.Email `json:"email-addresses,omitempty"`
	TelephoneNumbers []TelephoneNumber  `json:"telephone-numbers,omitempty"`
	Urls             []oscalfield.URI   `json:"urls,omitempty"`
	Props            []Property         `json:"props,omitempty"`
	Links            []Link             `json:"links,omitempty"`
	Remarks          *oscalfield.Markup `json:"remarks,omitempty"`
}

// PartyType is a closed sum: a Party is either an organization or a
// person.
type PartyType string

const (
	PartyOrganization PartyType = "organization"
	PartyPerson       PartyType = "person"
)

func (p PartyType) Validate() error {
	return oscalfield.ClosedSum("type", string(p), string(PartyOrganization), string(PartyPerson))
}

func (p *PartyType) UnmarshalJSON(b []byte) error {
	v, err := oscalfield.DecodeClosedSum[PartyType](b, "type", string(PartyOrganization), string(PartyPerson))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

func (p PartyType) MarshalJSON() ([]byte, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return json.Marshal(string(p))
}

// PartyExternalIdentifier binds a Party to an identifier scheme.
type PartyExternalIdentifier struct {
	Scheme oscalfield.URI `json:"scheme"`
	ID     string         `json:"id"`
}

// Party is a person or organization referenced by the document.
type Party struct {
	UUID                  oscalfield.UUID           `json:"uuid"`
	Type                  PartyType                 `json:"type"`
	Name                  *string                   `json:"name,omitempty"`
	ShortName             *string                   `json:"short-name,omitempty"`
	ExternalIDs           []PartyExternalIdentifier `json:"external-ids,omitempty"`
	Props                 []Property                `json:"props,omitempty"`
	Links                 []Link                    `json:"links,omitempty"`
	EmailAddresses        []oscalfield.Email        `json:"email-addresses,omitempty"`
	TelephoneNumbers      []TelephoneNumber         `json:"telephone-numbers,omitempty"`
	Addresses             []Address                 `json:"addresses,omitempty"`
	LocationUUIDs         []oscalfield.UUID         `json:"location-uuids,omitempty"`
	MemberOfOrganizations []oscalfield.UUID         `json:"member-of-organizations,omitempty"`
	Remarks               *oscalfield.Markup        `json:"remarks,omitempty"`
}

// ResponsibleParty associates one or more parties with a role.
type ResponsibleParty struct {
	RoleID     oscalfield.Token   `json:"role-id"`
	PartyUUIDs []oscalfield.UUID  `json:"party-uuids"`
	Props      []Property         `json:"props,omitempty"`
	Links      []Link             `json:"links,omitempty"`
	Remarks    *oscalfield.Markup `json:"remarks,omitempty"`
}

// ResponsibleRole associates parties with a role on a component or
// implementation (distinct shape from ResponsibleParty: party-uuids
// are optional here, matching OSCAL's implementation-layer schema).
type ResponsibleRole struct {
	RoleID     oscalfield.Token   `json:"role-id"`
	PartyUUIDs []oscalfield.UUID  `json:"party-uuids,omitempty"`
	Props      []Property         `json:"props,omitempty"`
	Links      []Link             `json:"links,omitempty"`
	Remarks    *oscalfield.Markup `json:"remarks,omitempty"`
}

// Role is a function performed by one or more parties.
type Role struct {
	ID          oscalfield.Token   `json:"id"`
	Title       oscalfield.Markup  `json:"title"`
	ShortName   *string            `json:"short-name,omitempty"`
	Description *oscalfield.Markup `json:"description,omitempty"`
	Props       []Property         `json:"props,omitempty"`
	Links       []Link             `json:"links,omitempty"`
	Remarks     *oscalfield.Markup `json:"remarks,omitempty"`
}

// Action records a lifecycle event applied to the document.
type Action struct {
	UUID               oscalfield.UUID        `json:"uuid"`
	Date               *oscalfield.DateTimeTz `json:"date,omitempty"`
	Type               oscalfield.Token       `json:"type"`
	System             string                 `json:"system"`
	Props              []Property             `json:"props,omitempty"`
	Links              []Link                 `json:"links,omitempty"`
	ResponsibleParties []ResponsibleParty     `json:"responsible-parties,omitempty"`
	Remarks            *oscalfield.Markup     `json:"remarks,omitempty"`
}

// RevisionHistoryEntry is one entry in a document's edit history.
type RevisionHistoryEntry struct {
	Title        *oscalfield.Markup     `json:"title,omitempty"`
	Published    *oscalfield.DateTimeTz `json:"published,omitempty"`
	LastModified *oscalfield.DateTimeTz `json:"last-modified,omitempty"`
	Version      string                 `json:"version"`
	OscalVersion *string                `json:"oscal-version,omitempty"`
	Props        []Property             `json:"props,omitempty"`
	Links        []Link                 `json:"links,omitempty"`
	Remarks      *oscalfield.Markup     `json:"remarks,omitempty"`
}

// Metadata is the required metadata block shared by all seven models.
type Metadata struct {
	Title              oscalfield.Markup      `json:"title"`
	Published          *oscalfield.DateTimeTz `json:"published,omitempty"`
	LastModified       oscalfield.DateTimeTz  `json:"last-modified"`
	Version            string                 `json:"version"`
	OscalVersion       string                 `json:"oscal-version"`
	Revisions          []RevisionHistoryEntry `json:"revisions,omitempty"`
	DocumentIDs        []DocumentIdentifier   `json:"document-ids,omitempty"`
	Props              []Property             `json:"props,omitempty"`
	Links              []Link                 `json:"links,omitempty"`
	Roles              []Role                 `json:"roles,omitempty"`
	Locations          []Location             `json:"locations,omitempty"`
	Parties            []Party                `json:"parties,omitempty"`
	ResponsibleParties []ResponsibleParty     `json:"responsible-parties,omitempty"`
	Actions            []Action               `json:"actions,omitempty"`
	Remarks            *oscalfield.Markup     `json:"remarks,omitempty"`
}

// Validate checks OscalVersion against the schema version line OSCAL
// actually publishes (semantic versioning), catching a malformed or
// pre-release-typo'd version string that the plain Token/string wire
// type alone would let through.
func (m Metadata) Validate() error {
	if _, err := semver.NewVersion(m.OscalVersion); err != nil {
		return errors.Wrapf(err, "oscal-version %q is not a valid semantic version", m.OscalVersion)
	}
	return nil
}
