package oscalmodel

import "github.com/upbound/oscal/internal/oscalfield"

// Control is a single, possibly recursive, control statement.
type Control struct {
	ID       oscalfield.Token  `json:"id"`
	Class    *oscalfield.Token `json:"class,omitempty"`
	Title    oscalfield.Markup `json:"title"`
	Params   []Parameter       `json:"params,omitempty"`
	Props    []Property        `json:"props,omitempty"`
	Links    []Link            `json:"links,omitempty"`
	Parts    []Part            `json:"parts,omitempty"`
	Controls []Control         `json:"controls,omitempty"`
}

// Group is a recursive grouping of controls within a catalog.
type Group struct {
	ID       *oscalfield.Token `json:"id,omitempty"`
	Class    *oscalfield.Token `json:"class,omitempty"`
	Title    oscalfield.Markup `json:"title"`
	Params   []Parameter       `json:"params,omitempty"`
	Props    []Property        `json:"props,omitempty"`
	Links    []Link            `json:"links,omitempty"`
	Parts    []Part            `json:"parts,omitempty"`
	Groups   []Group           `json:"groups,omitempty"`
	Controls []Control         `json:"controls,omitempty"`
}

// CatalogClass is Catalog's root object.
type CatalogClass struct {
	UUID       oscalfield.UUID `json:"uuid" oscal:"uuid"`
	Metadata   Metadata        `json:"metadata" oscal:"metadata"`
	Params     []Parameter     `json:"params,omitempty" oscal:"params"`
	Controls   []Control       `json:"controls,omitempty" oscal:"controls"`
	Groups     []Group         `json:"groups,omitempty" oscal:"groups"`
	BackMatter *BackMatter     `json:"back-matter,omitempty" oscal:"back_matter"`
}

func (c *CatalogClass) GetUUID() oscalfield.UUID  { return c.UUID }
func (c *CatalogClass) SetUUID(u oscalfield.UUID) { c.UUID = u }

// Catalog is the wire envelope for a Catalog document.
type Catalog struct {
	Schema  *string       `json:"$schema,omitempty"`
	Catalog *CatalogClass `json:"catalog"`
}
