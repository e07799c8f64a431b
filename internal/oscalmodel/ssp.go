package oscalmodel

import "github.com/upbound/oscal/internal/oscalfield"

// ImportProfile references the security profile a system
// implementation claims to satisfy.
type ImportProfile struct {
	Href oscalfield.URIReference `json:"href"`
}

// SystemID is one of possibly several identifiers for a system.
type SystemID struct {
	IdentifierType *oscalfield.URI `json:"identifier-type,omitempty"`
	ID             string          `json:"id"`
}

// ImpactLevel records a FIPS-199-style impact rating with optional
// justification for deviating from the base rating.
type ImpactLevel struct {
	Base                    string             `json:"base"`
	Selected                *string            `json:"selected,omitempty"`
	AdjustmentJustification *oscalfield.Markup `json:"adjustment-justification,omitempty"`
}

// InformationType describes one category of information processed by
// the system.
type InformationType struct {
	UUID                  *oscalfield.UUID  `json:"uuid,omitempty"`
	Title                 oscalfield.Markup `json:"title"`
	Description           oscalfield.Markup `json:"description"`
	ConfidentialityImpact *ImpactLevel      `json:"confidentiality-impact,omitempty"`
	IntegrityImpact       *ImpactLevel      `json:"integrity-impact,omitempty"`
	AvailabilityImpact    *ImpactLevel      `json:"availability-impact,omitempty"`
}

// SystemInformation is the collection of information types the system
// processes.
type SystemInformation struct {
	InformationTypes []InformationType `json:"information-types"`
}

// SecurityImpactLevel is the system's overall FIPS-199 categorization.
type SecurityImpactLevel struct {
	SecurityObjectiveConfidentiality string `json:"security-objective-confidentiality"`
	SecurityObjectiveIntegrity       string `json:"security-objective-integrity"`
	SecurityObjectiveAvailability    string `json:"security-objective-availability"`
}

// SystemStatus records the operational state of the system.
type SystemStatus struct {
	State   oscalfield.Token   `json:"state"`
	Remarks *oscalfield.Markup `json:"remarks,omitempty"`
}

// Diagram is one illustration of the system's authorization boundary.
type Diagram struct {
	UUID        oscalfield.UUID    `json:"uuid"`
	Description *oscalfield.Markup `json:"description,omitempty"`
	Caption     *string            `json:"caption,omitempty"`
	Links       []Link             `json:"links,omitempty"`
}

// AuthorizationBoundary describes the system's logical and physical
// extent.
type AuthorizationBoundary struct {
	Description oscalfield.Markup `json:"description"`
	Diagrams    []Diagram         `json:"diagrams,omitempty"`
}

// SystemCharacteristics is the required descriptive block of an SSP.
type SystemCharacteristics struct {
	SystemIDs                []SystemID            `json:"system-ids"`
	SystemName               string                `json:"system-name"`
	Description              oscalfield.Markup     `json:"description"`
	SecuritySensitivityLevel *oscalfield.Token     `json:"security-sensitivity-level,omitempty"`
	SystemInformation        SystemInformation     `json:"system-information"`
	SecurityImpactLevel      SecurityImpactLevel   `json:"security-impact-level"`
	Status                   SystemStatus          `json:"status"`
	AuthorizationBoundary    AuthorizationBoundary `json:"authorization-boundary"`
	Props                    []Property            `json:"props,omitempty"`
	Links                    []Link                `json:"links,omitempty"`
	ResponsibleParties       []ResponsibleParty    `json:"responsible-parties,omitempty"`
	Remarks                  *oscalfield.Markup    `json:"remarks,omitempty"`
}

// AuthorizedPrivilege is one privilege granted to a system user.
type AuthorizedPrivilege struct {
	Title              string   `json:"title"`
	FunctionsPerformed []string `json:"functions-performed"`
}

// SystemUser is one role-bearing actor interacting with the system.
type SystemUser struct {
	UUID                 oscalfield.UUID       `json:"uuid"`
	Title                *oscalfield.Markup    `json:"title,omitempty"`
	RoleIDs              []oscalfield.Token    `json:"role-ids,omitempty"`
	AuthorizedPrivileges []AuthorizedPrivilege `json:"authorized-privileges,omitempty"`
	Props                []Property            `json:"props,omitempty"`
	Links                []Link                `json:"links,omitempty"`
	Remarks              *oscalfield.Markup    `json:"remarks,omitempty"`
}

// SystemComponent is one concrete, deployed component of the system.
type SystemComponent struct {
	UUID             oscalfield.UUID    `json:"uuid"`
	Type             oscalfield.Token   `json:"type"`
	Title            oscalfield.Markup  `json:"title"`
	Description      oscalfield.Markup  `json:"description"`
	Status           SystemStatus       `json:"status"`
	Props            []Property         `json:"props,omitempty"`
	Links            []Link             `json:"links,omitempty"`
	ResponsibleRoles []ResponsibleRole  `json:"responsible-roles,omitempty"`
	Protocols        []Protocol         `json:"protocols,omitempty"`
	Remarks          *oscalfield.Markup `json:"remarks,omitempty"`
}

// LeveragedAuthorization records an external authorization the system
// leverages.
type LeveragedAuthorization struct {
	UUID           oscalfield.UUID    `json:"uuid"`
	Title          oscalfield.Markup  `json:"title"`
	PartyUUID      oscalfield.UUID    `json:"party-uuid"`
	DateAuthorized oscalfield.Date    `json:"date-authorized"`
	Props          []Property         `json:"props,omitempty"`
	Links          []Link             `json:"links,omitempty"`
	Remarks        *oscalfield.Markup `json:"remarks,omitempty"`
}

// ImplementedComponent references one component deployed as part of
// an inventory item.
type ImplementedComponent struct {
	ComponentUUID oscalfield.UUID `json:"component-uuid"`
}

// InventoryItem is one concrete deployed asset in the system
// implementation inventory.
type InventoryItem struct {
	UUID                  oscalfield.UUID        `json:"uuid"`
	Description           oscalfield.Markup      `json:"description"`
	Props                 []Property             `json:"props,omitempty"`
	Links                 []Link                 `json:"links,omitempty"`
	ResponsibleParties    []ResponsibleParty     `json:"responsible-parties,omitempty"`
	ImplementedComponents []ImplementedComponent `json:"implemented-components,omitempty"`
	Remarks               *oscalfield.Markup     `json:"remarks,omitempty"`
}

// SystemImplementation is the required block describing deployed
// components, users, and leveraged authorizations.
type SystemImplementation struct {
	Users                   []SystemUser             `json:"users"`
	Components              []SystemComponent        `json:"components"`
	LeveragedAuthorizations []LeveragedAuthorization `json:"leveraged-authorizations,omitempty"`
	InventoryItems          []InventoryItem          `json:"inventory-items,omitempty"`
	Props                   []Property               `json:"props,omitempty"`
	Links                   []Link                   `json:"links,omitempty"`
	Remarks                 *oscalfield.Markup       `json:"remarks,omitempty"`
}

// SystemSecurityPlanClass is Ssp's root object.
type SystemSecurityPlanClass struct {
	UUID                  oscalfield.UUID       `json:"uuid" oscal:"uuid"`
	Metadata              Metadata              `json:"metadata" oscal:"metadata"`
	ImportProfile         *ImportProfile        `json:"import-profile,omitempty" oscal:"import_profile"`
	SystemCharacteristics SystemCharacteristics `json:"system-characteristics" oscal:"system_characteristics"`
	SystemImplementation  SystemImplementation  `json:"system-implementation" oscal:"system_implementation"`
	ControlImplementation ControlImplementation `json:"control-implementation" oscal:"control_implementation"`
	BackMatter            *BackMatter           `json:"back-matter,omitempty" oscal:"back_matter"`
}

func (c *SystemSecurityPlanClass) GetUUID() oscalfield.UUID  { return c.UUID }
func (c *SystemSecurityPlanClass) SetUUID(u oscalfield.UUID) { c.UUID = u }

// Ssp is the wire envelope for a SystemSecurityPlan document.
type Ssp struct {
	Schema             *string                  `json:"$schema,omitempty"`
	SystemSecurityPlan *SystemSecurityPlanClass `json:"system-security-plan"`
}
