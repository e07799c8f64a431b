package oscalmodel

import "github.com/upbound/oscal/internal/oscalfield"

// ImportAp references the assessment plan that scoped the activities
// recorded in an assessment results document.
type ImportAp struct {
	Href    oscalfield.URIReference `json:"href"`
	Remarks *oscalfield.Markup      `json:"remarks,omitempty"`
}

// Attestation records a statement of accountability signed over a
// set of reviewed controls.
type Attestation struct {
	ResponsibleParties []ResponsibleParty `json:"responsible-parties,omitempty"`
	Parts              []Part             `json:"parts"`
}

// LogEntry is one timestamped record of assessment activity.
type LogEntry struct {
	UUID         oscalfield.UUID        `json:"uuid"`
	Title        *oscalfield.Markup     `json:"title,omitempty"`
	Description  *oscalfield.Markup     `json:"description,omitempty"`
	Start        oscalfield.DateTimeTz  `json:"start"`
	End          *oscalfield.DateTimeTz `json:"end,omitempty"`
	Props        []Property             `json:"props,omitempty"`
	Links        []Link                 `json:"links,omitempty"`
	LoggedBy     []LoggedBy             `json:"logged-by,omitempty"`
	RelatedTasks []RelatedTask          `json:"related-tasks,omitempty"`
	Remarks      *oscalfield.Markup     `json:"remarks,omitempty"`
}

// LoggedBy identifies the actor responsible for a log entry.
type LoggedBy struct {
	PartyUUID oscalfield.UUID   `json:"party-uuid"`
	RoleID    *oscalfield.Token `json:"role-id,omitempty"`
}

// RelatedTask links a log entry or result back to the task it
// fulfills.
type RelatedTask struct {
	TaskUUID           oscalfield.UUID     `json:"task-uuid"`
	ResponsibleParties []ResponsibleParty  `json:"responsible-parties,omitempty"`
	Subjects           []AssessmentSubject `json:"subjects,omitempty"`
	IdentifiedSubject  *IdentifiedSubject  `json:"identified-subject,omitempty"`
	Remarks            *oscalfield.Markup  `json:"remarks,omitempty"`
}

// IdentifiedSubject records the concrete subjects a related task was
// actually run against.
type IdentifiedSubject struct {
	SubjectPlaceholderUUID oscalfield.UUID     `json:"subject-placeholder-uuid"`
	Subjects               []SelectSubjectByID `json:"subjects"`
}

// AssessmentLog is the chronological record of activity performed
// during an assessment result.
type AssessmentLog struct {
	Entries []LogEntry `json:"entries"`
}

// RelevantEvidence points at supporting material for an observation.
type RelevantEvidence struct {
	Href        *oscalfield.URIReference `json:"href,omitempty"`
	Description oscalfield.Markup        `json:"description"`
	Props       []Property               `json:"props,omitempty"`
	Links       []Link                   `json:"links,omitempty"`
	Remarks     *oscalfield.Markup       `json:"remarks,omitempty"`
}

// Observation is one recorded finding from an assessment activity.
type Observation struct {
	UUID             oscalfield.UUID        `json:"uuid"`
	Title            *oscalfield.Markup     `json:"title,omitempty"`
	Description      oscalfield.Markup      `json:"description"`
	Props            []Property             `json:"props,omitempty"`
	Links            []Link                 `json:"links,omitempty"`
	Methods          []string               `json:"methods"`
	Types            []oscalfield.Token     `json:"types,omitempty"`
	Subjects         []SelectSubjectByID    `json:"subjects,omitempty"`
	RelevantEvidence []RelevantEvidence     `json:"relevant-evidence,omitempty"`
	Collected        *oscalfield.DateTimeTz `json:"collected,omitempty"`
	Expires          *oscalfield.DateTimeTz `json:"expires,omitempty"`
	Remarks          *oscalfield.Markup     `json:"remarks,omitempty"`
}

// Origin records who or what produced a risk characterization.
type Origin struct {
	Actors       []OriginActor `json:"actors"`
	RelatedTasks []RelatedTask `json:"related-tasks,omitempty"`
}

// OriginActor identifies one actor (tool, party, or assessment
// platform) contributing to an Origin.
type OriginActor struct {
	Type      oscalfield.Token  `json:"type"`
	ActorUUID oscalfield.UUID   `json:"actor-uuid"`
	RoleID    *oscalfield.Token `json:"role-id,omitempty"`
	Props     []Property        `json:"props,omitempty"`
	Links     []Link            `json:"links,omitempty"`
}

// Facet is one scored dimension (e.g. likelihood, impact) of a risk
// characterization.
type Facet struct {
	Name    oscalfield.Token   `json:"name"`
	System  oscalfield.URI     `json:"system"`
	Value   string             `json:"value"`
	Props   []Property         `json:"props,omitempty"`
	Links   []Link             `json:"links,omitempty"`
	Remarks *oscalfield.Markup `json:"remarks,omitempty"`
}

// Characterization is one origin's scoring of a risk.
type Characterization struct {
	Origins []Origin   `json:"origins"`
	Facets  []Facet    `json:"facets"`
	Props   []Property `json:"props,omitempty"`
	Links   []Link     `json:"links,omitempty"`
}

// Risk is one identified risk arising from one or more observations.
type Risk struct {
	UUID              oscalfield.UUID    `json:"uuid"`
	Title             oscalfield.Markup  `json:"title"`
	Description       oscalfield.Markup  `json:"description"`
	Statement         oscalfield.Markup  `json:"statement"`
	Status            oscalfield.Token   `json:"status"`
	Props             []Property         `json:"props,omitempty"`
	Links             []Link             `json:"links,omitempty"`
	Characterizations []Characterization `json:"characterizations,omitempty"`
	Remarks           *oscalfield.Markup `json:"remarks,omitempty"`
}

// ObjectiveStatus records whether an objective was satisfied.
type ObjectiveStatus struct {
	State   oscalfield.Token   `json:"state"`
	Reason  *string            `json:"reason,omitempty"`
	Remarks *oscalfield.Markup `json:"remarks,omitempty"`
}

// FindingTarget identifies the control or objective a Finding
// evaluates.
type FindingTarget struct {
	Type        oscalfield.Token   `json:"type"`
	TargetID    oscalfield.Token   `json:"target-id"`
	Title       *oscalfield.Markup `json:"title,omitempty"`
	Description *oscalfield.Markup `json:"description,omitempty"`
	Status      ObjectiveStatus    `json:"status"`
	Props       []Property         `json:"props,omitempty"`
	Links       []Link             `json:"links,omitempty"`
	Remarks     *oscalfield.Markup `json:"remarks,omitempty"`
}

// RelatedObservation links a finding back to the observation that
// produced it.
type RelatedObservation struct {
	ObservationUUID oscalfield.UUID `json:"observation-uuid"`
}

// RelatedRisk links a finding or POA&M item back to a risk.
type RelatedRisk struct {
	RiskUUID oscalfield.UUID `json:"risk-uuid"`
}

// Finding is one assessor conclusion about whether a control or
// objective is satisfied.
type Finding struct {
	UUID                oscalfield.UUID      `json:"uuid"`
	Title               oscalfield.Markup    `json:"title"`
	Description         oscalfield.Markup    `json:"description"`
	Props               []Property           `json:"props,omitempty"`
	Links               []Link               `json:"links,omitempty"`
	Origins             []Origin             `json:"origins,omitempty"`
	Target              FindingTarget        `json:"target"`
	RelatedObservations []RelatedObservation `json:"related-observations,omitempty"`
	RelatedRisks        []RelatedRisk        `json:"related-risks,omitempty"`
	Remarks             *oscalfield.Markup   `json:"remarks,omitempty"`
}

// Result is one completed iteration of assessment activity.
type Result struct {
	UUID             oscalfield.UUID        `json:"uuid"`
	Title            oscalfield.Markup      `json:"title"`
	Description      oscalfield.Markup      `json:"description"`
	Start            oscalfield.DateTimeTz  `json:"start"`
	End              *oscalfield.DateTimeTz `json:"end,omitempty"`
	Props            []Property             `json:"props,omitempty"`
	Links            []Link                 `json:"links,omitempty"`
	LocalDefinitions *LocalDefinitions      `json:"local-definitions,omitempty"`
	ReviewedControls ReviewedControls       `json:"reviewed-controls"`
	Attestations     []Attestation          `json:"attestations,omitempty"`
	AssessmentLog    *AssessmentLog         `json:"assessment-log,omitempty"`
	Observations     []Observation          `json:"observations,omitempty"`
	Risks            []Risk                 `json:"risks,omitempty"`
	Findings         []Finding              `json:"findings,omitempty"`
	Remarks          *oscalfield.Markup     `json:"remarks,omitempty"`
}

// ResultLocalDefinitions holds components and inventory items defined
// locally within an assessment results document.
type ResultLocalDefinitions struct {
	Components     []SystemComponent  `json:"components,omitempty"`
	InventoryItems []InventoryItem    `json:"inventory-items,omitempty"`
	Remarks        *oscalfield.Markup `json:"remarks,omitempty"`
}

// SecurityAssessmentResultsClass is AssessmentResults's root object.
type SecurityAssessmentResultsClass struct {
	UUID             oscalfield.UUID         `json:"uuid" oscal:"uuid"`
	Metadata         Metadata                `json:"metadata" oscal:"metadata"`
	ImportAp         ImportAp                `json:"import-ap" oscal:"import_ap"`
	LocalDefinitions *ResultLocalDefinitions `json:"local-definitions,omitempty" oscal:"local_definitions"`
	Results          []Result                `json:"results" oscal:"results"`
	BackMatter       *BackMatter             `json:"back-matter,omitempty" oscal:"back_matter"`
}

func (c *SecurityAssessmentResultsClass) GetUUID() oscalfield.UUID  { return c.UUID }
func (c *SecurityAssessmentResultsClass) SetUUID(u oscalfield.UUID) { c.UUID = u }

// AssessmentResults is the wire envelope for an AssessmentResults
// document.
type AssessmentResults struct {
	Schema            *string                         `json:"$schema,omitempty"`
	AssessmentResults *SecurityAssessmentResultsClass `json:"assessment-results"`
}
