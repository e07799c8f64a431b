package oscalmodel

import "github.com/upbound/oscal/internal/oscalfield"

// Statement is one control statement satisfied by an implemented
// requirement.
type Statement struct {
	StatementID      oscalfield.Token   `json:"statement-id"`
	UUID             oscalfield.UUID    `json:"uuid"`
	Description      *oscalfield.Markup `json:"description,omitempty"`
	Props            []Property         `json:"props,omitempty"`
	Links            []Link             `json:"links,omitempty"`
	ResponsibleRoles []ResponsibleRole  `json:"responsible-roles,omitempty"`
	Remarks          *oscalfield.Markup `json:"remarks,omitempty"`
}

// ImplementedRequirement describes how a component satisfies one
// control.
type ImplementedRequirement struct {
	UUID             oscalfield.UUID    `json:"uuid"`
	ControlID        oscalfield.Token   `json:"control-id"`
	Description      *oscalfield.Markup `json:"description,omitempty"`
	Props            []Property         `json:"props,omitempty"`
	Links            []Link             `json:"links,omitempty"`
	SetParameters    []ParameterSetting `json:"set-parameters,omitempty"`
	ResponsibleRoles []ResponsibleRole  `json:"responsible-roles,omitempty"`
	Statements       []Statement        `json:"statements,omitempty"`
	Remarks          *oscalfield.Markup `json:"remarks,omitempty"`
}

// ControlImplementation records how a component or system implements
// a set of controls from a source catalog or profile.
type ControlImplementation struct {
	UUID                    *oscalfield.UUID         `json:"uuid,omitempty"`
	Source                  oscalfield.URIReference  `json:"source"`
	Description             oscalfield.Markup        `json:"description"`
	SetParameters           []ParameterSetting       `json:"set-parameters,omitempty"`
	ImplementedRequirements []ImplementedRequirement `json:"implemented-requirements"`
}

// PortRange is an inclusive port interval exposed by a Protocol.
type PortRange struct {
	Start     *oscalfield.PositiveInt `json:"start,omitempty"`
	End       *oscalfield.PositiveInt `json:"end,omitempty"`
	Transport *oscalfield.Token       `json:"transport,omitempty"`
}

// Protocol is a network protocol exposed by a component.
type Protocol struct {
	UUID       *oscalfield.UUID   `json:"uuid,omitempty"`
	Name       string             `json:"name"`
	Title      *oscalfield.Markup `json:"title,omitempty"`
	PortRanges []PortRange        `json:"port-ranges,omitempty"`
}

// DefinedComponent is one reusable, implementation-agnostic component.
type DefinedComponent struct {
	UUID                   oscalfield.UUID         `json:"uuid"`
	Type                   oscalfield.Token        `json:"type"`
	Title                  oscalfield.Markup       `json:"title"`
	Description            oscalfield.Markup       `json:"description"`
	Purpose                *oscalfield.Markup      `json:"purpose,omitempty"`
	Props                  []Property              `json:"props,omitempty"`
	Links                  []Link                  `json:"links,omitempty"`
	ResponsibleRoles       []ResponsibleRole       `json:"responsible-roles,omitempty"`
	Protocols              []Protocol              `json:"protocols,omitempty"`
	ControlImplementations []ControlImplementation `json:"control-implementations,omitempty"`
	Remarks                *oscalfield.Markup      `json:"remarks,omitempty"`
}

// IncorporatesComponent links a defined component into a capability.
type IncorporatesComponent struct {
	ComponentUUID oscalfield.UUID   `json:"component-uuid"`
	Description   oscalfield.Markup `json:"description"`
}

// Capability is a named grouping of components that together perform
// a function.
type Capability struct {
	UUID                   oscalfield.UUID         `json:"uuid"`
	Name                   oscalfield.Token        `json:"name"`
	Description            oscalfield.Markup       `json:"description"`
	Props                  []Property              `json:"props,omitempty"`
	Links                  []Link                  `json:"links,omitempty"`
	IncorporatesComponents []IncorporatesComponent `json:"incorporates-components,omitempty"`
	ControlImplementations []ControlImplementation `json:"control-implementations,omitempty"`
	Remarks                *oscalfield.Markup      `json:"remarks,omitempty"`
}

// ImportComponentDefinition pulls components from an external
// component definition document.
type ImportComponentDefinition struct {
	Href oscalfield.URIReference `json:"href"`
}

// ComponentDefinitionClass is ComponentDefinition's root object.
type ComponentDefinitionClass struct {
	UUID                       oscalfield.UUID             `json:"uuid" oscal:"uuid"`
	Metadata                   Metadata                    `json:"metadata" oscal:"metadata"`
	ImportComponentDefinitions []ImportComponentDefinition `json:"import-component-definitions,omitempty" oscal:"import_component_definitions"`
	Components                 []DefinedComponent          `json:"components,omitempty" oscal:"components"`
	Capabilities               []Capability                `json:"capabilities,omitempty" oscal:"capabilities"`
	BackMatter                 *BackMatter                 `json:"back-matter,omitempty" oscal:"back_matter"`
}

func (c *ComponentDefinitionClass) GetUUID() oscalfield.UUID  { return c.UUID }
func (c *ComponentDefinitionClass) SetUUID(u oscalfield.UUID) { c.UUID = u }

// ComponentDefinition is the wire envelope for a ComponentDefinition
// document.
type ComponentDefinition struct {
	Schema              *string                   `json:"$schema,omitempty"`
	ComponentDefinition *ComponentDefinitionClass `json:"component-definition"`
}
