package oscalmodel

import "github.com/upbound/oscal/internal/oscalfield"

// RelatedFinding links a POA&M item back to the finding that raised
// it.
type RelatedFinding struct {
	FindingUUID oscalfield.UUID `json:"finding-uuid"`
}

// PoamItem is one tracked remediation item.
type PoamItem struct {
	UUID                oscalfield.UUID      `json:"uuid"`
	Title               oscalfield.Markup    `json:"title"`
	Description         oscalfield.Markup    `json:"description"`
	Props               []Property           `json:"props,omitempty"`
	Links               []Link               `json:"links,omitempty"`
	RelatedFindings     []RelatedFinding     `json:"related-findings,omitempty"`
	RelatedObservations []RelatedObservation `json:"related-observations,omitempty"`
	RelatedRisks        []RelatedRisk        `json:"related-risks,omitempty"`
	ResponsibleParties  []ResponsibleParty   `json:"responsible-parties,omitempty"`
	Remarks             *oscalfield.Markup   `json:"remarks,omitempty"`
}

// PoamLocalDefinitions holds components, inventory items, and
// assessment assets defined locally within the POA&M.
type PoamLocalDefinitions struct {
	Components       []SystemComponent  `json:"components,omitempty"`
	InventoryItems   []InventoryItem    `json:"inventory-items,omitempty"`
	AssessmentAssets *AssessmentAssets  `json:"assessment-assets,omitempty"`
	Remarks          *oscalfield.Markup `json:"remarks,omitempty"`
}

// PlanOfActionAndMilestonesClass is Poam's root object.
type PlanOfActionAndMilestonesClass struct {
	UUID             oscalfield.UUID       `json:"uuid" oscal:"uuid"`
	Metadata         Metadata              `json:"metadata" oscal:"metadata"`
	ImportSsp        *ImportSsp            `json:"import-ssp,omitempty" oscal:"import_ssp"`
	SystemID         *SystemID             `json:"system-id,omitempty" oscal:"system_id"`
	LocalDefinitions *PoamLocalDefinitions `json:"local-definitions,omitempty" oscal:"local_definitions"`
	Observations     []Observation         `json:"observations,omitempty" oscal:"observations"`
	Risks            []Risk                `json:"risks,omitempty" oscal:"risks"`
	Findings         []Finding             `json:"findings,omitempty" oscal:"findings"`
	PoamItems        []PoamItem            `json:"poam-items" oscal:"poam_items"`
	BackMatter       *BackMatter           `json:"back-matter,omitempty" oscal:"back_matter"`
}

func (c *PlanOfActionAndMilestonesClass) GetUUID() oscalfield.UUID  { return c.UUID }
func (c *PlanOfActionAndMilestonesClass) SetUUID(u oscalfield.UUID) { c.UUID = u }

// Poam is the wire envelope for a PlanOfActionAndMilestones document.
type Poam struct {
	Schema                    *string                         `json:"$schema,omitempty"`
	PlanOfActionAndMilestones *PlanOfActionAndMilestonesClass `json:"plan-of-action-and-milestones"`
}
