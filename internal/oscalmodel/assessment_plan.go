package oscalmodel

import "github.com/upbound/oscal/internal/oscalfield"

// ImportSsp references the system security plan an assessment plan
// or assessment results document is scoped against.
type ImportSsp struct {
	Href    oscalfield.URIReference `json:"href"`
	Remarks *oscalfield.Markup      `json:"remarks,omitempty"`
}

// SelectSubjectByID names one subject (component, inventory item,
// location, party, or user) by uuid.
type SelectSubjectByID struct {
	SubjectUUID oscalfield.UUID    `json:"subject-uuid"`
	Type        oscalfield.Token   `json:"type"`
	Title       *oscalfield.Markup `json:"title,omitempty"`
	Props       []Property         `json:"props,omitempty"`
	Links       []Link             `json:"links,omitempty"`
	Remarks     *oscalfield.Markup `json:"remarks,omitempty"`
}

// SelectObjectiveByID names one control objective by id.
type SelectObjectiveByID struct {
	ObjectiveID oscalfield.Token `json:"objective-id"`
}

// SelectedControls is one set of included/excluded controls considered
// during an assessment.
type SelectedControls struct {
	IncludeAll      *IncludeAll     `json:"include-all,omitempty"`
	IncludeControls []SelectControl `json:"include-controls,omitempty"`
	ExcludeControls []SelectControl `json:"exclude-controls,omitempty"`
}

// SelectedObjectives is one set of included/excluded control
// objectives considered during an assessment.
type SelectedObjectives struct {
	ControlID         oscalfield.Token      `json:"control-id"`
	IncludeAll        *IncludeAll           `json:"include-all,omitempty"`
	IncludeObjectives []SelectObjectiveByID `json:"include-objectives,omitempty"`
	ExcludeObjectives []SelectObjectiveByID `json:"exclude-objectives,omitempty"`
	Remarks           *oscalfield.Markup    `json:"remarks,omitempty"`
}

// ReviewedControls records which controls and objectives an assessment
// activity or task addresses.
type ReviewedControls struct {
	Description                *oscalfield.Markup   `json:"description,omitempty"`
	ControlSelections          []SelectedControls   `json:"control-selections"`
	ControlObjectiveSelections []SelectedObjectives `json:"control-objective-selections,omitempty"`
	Remarks                    *oscalfield.Markup   `json:"remarks,omitempty"`
}

// AssessmentSubject selects the components, inventory items, or other
// objects an assessment activity or task targets.
type AssessmentSubject struct {
	Type            oscalfield.Token    `json:"type"`
	Description     *oscalfield.Markup  `json:"description,omitempty"`
	IncludeAll      *IncludeAll         `json:"include-all,omitempty"`
	IncludeSubjects []SelectSubjectByID `json:"include-subjects,omitempty"`
	ExcludeSubjects []SelectSubjectByID `json:"exclude-subjects,omitempty"`
	Props           []Property          `json:"props,omitempty"`
	Links           []Link              `json:"links,omitempty"`
	Remarks         *oscalfield.Markup  `json:"remarks,omitempty"`
}

// UsesComponent references a defined component exercised by an
// assessment platform.
type UsesComponent struct {
	ComponentUUID      oscalfield.UUID    `json:"component-uuid"`
	ResponsibleParties []ResponsibleParty `json:"responsible-parties,omitempty"`
	Remarks            *oscalfield.Markup `json:"remarks,omitempty"`
}

// AssessmentPlatform is one tool or system used to carry out an
// assessment.
type AssessmentPlatform struct {
	UUID           oscalfield.UUID    `json:"uuid"`
	Title          *oscalfield.Markup `json:"title,omitempty"`
	UsesComponents []UsesComponent    `json:"uses-components,omitempty"`
	Remarks        *oscalfield.Markup `json:"remarks,omitempty"`
}

// AssessmentAssets is the pool of components and platforms available
// to the assessment.
type AssessmentAssets struct {
	Components          []SystemComponent    `json:"components,omitempty"`
	AssessmentPlatforms []AssessmentPlatform `json:"assessment-platforms"`
}

// EventTiming describes when a task occurs: at a fixed point, on a
// recurring schedule, or bounded within a window.
type EventTiming struct {
	OnDate          *oscalfield.DateTimeTz `json:"on-date,omitempty"`
	WithinDateRange *DateRange             `json:"within-date-range,omitempty"`
	AtFrequency     *Frequency             `json:"at-frequency,omitempty"`
}

// DateRange bounds a task's occurrence between two timestamps.
type DateRange struct {
	Start oscalfield.DateTimeTz `json:"start"`
	End   oscalfield.DateTimeTz `json:"end"`
}

// Frequency describes a recurring task's period.
type Frequency struct {
	Period int64  `json:"period"`
	Unit   string `json:"unit"`
}

// TaskDependency orders one task after another.
type TaskDependency struct {
	TaskUUID oscalfield.UUID    `json:"task-uuid"`
	Remarks  *oscalfield.Markup `json:"remarks,omitempty"`
}

// AssociatedActivity links a task to one of the plan's local
// activities with the set of subjects it is performed against.
type AssociatedActivity struct {
	ActivityUUID     oscalfield.UUID     `json:"activity-uuid"`
	Subjects         []AssessmentSubject `json:"subjects"`
	Props            []Property          `json:"props,omitempty"`
	Links            []Link              `json:"links,omitempty"`
	ResponsibleRoles []ResponsibleRole   `json:"responsible-roles,omitempty"`
	Remarks          *oscalfield.Markup  `json:"remarks,omitempty"`
}

// Task is one scheduled unit of assessment work.
type Task struct {
	UUID                 oscalfield.UUID      `json:"uuid"`
	Type                 oscalfield.Token     `json:"type"`
	Title                oscalfield.Markup    `json:"title"`
	Description          *oscalfield.Markup   `json:"description,omitempty"`
	Props                []Property           `json:"props,omitempty"`
	Links                []Link               `json:"links,omitempty"`
	Timing               *EventTiming         `json:"timing,omitempty"`
	Dependencies         []TaskDependency     `json:"dependencies,omitempty"`
	Tasks                []Task               `json:"tasks,omitempty"`
	AssociatedActivities []AssociatedActivity `json:"associated-activities,omitempty"`
	Subjects             []AssessmentSubject  `json:"subjects,omitempty"`
	ResponsibleRoles     []ResponsibleRole    `json:"responsible-roles,omitempty"`
	Remarks              *oscalfield.Markup   `json:"remarks,omitempty"`
}

// Step is one ordered action within an Activity.
type Step struct {
	UUID             oscalfield.UUID    `json:"uuid"`
	Title            oscalfield.Markup  `json:"title"`
	Description      *oscalfield.Markup `json:"description,omitempty"`
	Props            []Property         `json:"props,omitempty"`
	Links            []Link             `json:"links,omitempty"`
	ReviewedControls *ReviewedControls  `json:"reviewed-controls,omitempty"`
	Remarks          *oscalfield.Markup `json:"remarks,omitempty"`
}

// Activity is one reusable, locally defined assessment procedure.
type Activity struct {
	UUID             oscalfield.UUID    `json:"uuid"`
	Title            *oscalfield.Markup `json:"title,omitempty"`
	Description      oscalfield.Markup  `json:"description"`
	Props            []Property         `json:"props,omitempty"`
	Links            []Link             `json:"links,omitempty"`
	Steps            []Step             `json:"steps,omitempty"`
	RelatedControls  *ReviewedControls  `json:"related-controls,omitempty"`
	ResponsibleRoles []ResponsibleRole  `json:"responsible-roles,omitempty"`
	Remarks          *oscalfield.Markup `json:"remarks,omitempty"`
}

// LocalObjective defines a control objective local to this plan,
// outside of any imported catalog.
type LocalObjective struct {
	ControlID   oscalfield.Token   `json:"control-id"`
	Description *oscalfield.Markup `json:"description,omitempty"`
	Props       []Property         `json:"props,omitempty"`
	Links       []Link             `json:"links,omitempty"`
	Parts       []Part             `json:"parts,omitempty"`
	Remarks     *oscalfield.Markup `json:"remarks,omitempty"`
}

// LocalDefinitions holds components, activities, and objectives
// defined locally within the assessment plan rather than imported.
type LocalDefinitions struct {
	Components     []SystemComponent  `json:"components,omitempty"`
	InventoryItems []InventoryItem    `json:"inventory-items,omitempty"`
	Users          []SystemUser       `json:"users,omitempty"`
	Objectives     []LocalObjective   `json:"objectives-and-methods,omitempty"`
	Activities     []Activity         `json:"activities,omitempty"`
	Remarks        *oscalfield.Markup `json:"remarks,omitempty"`
}

// AssessmentPlanTerms records the rules of engagement under which the
// assessment plan was authorized.
type AssessmentPlanTerms struct {
	Parts []Part `json:"parts,omitempty"`
}

// SecurityAssessmentPlanClass is AssessmentPlan's root object.
type SecurityAssessmentPlanClass struct {
	UUID               oscalfield.UUID      `json:"uuid" oscal:"uuid"`
	Metadata           Metadata             `json:"metadata" oscal:"metadata"`
	ImportSsp          ImportSsp            `json:"import-ssp" oscal:"import_ssp"`
	LocalDefinitions   *LocalDefinitions    `json:"local-definitions,omitempty" oscal:"local_definitions"`
	TermsAndConditions *AssessmentPlanTerms `json:"terms-and-conditions,omitempty" oscal:"terms_and_conditions"`
	ReviewedControls   ReviewedControls     `json:"reviewed-controls" oscal:"reviewed_controls"`
	AssessmentSubjects []AssessmentSubject  `json:"assessment-subjects,omitempty" oscal:"assessment_subjects"`
	AssessmentAssets   *AssessmentAssets    `json:"assessment-assets,omitempty" oscal:"assessment_assets"`
	Tasks              []Task               `json:"tasks,omitempty" oscal:"tasks"`
	BackMatter         *BackMatter          `json:"back-matter,omitempty" oscal:"back_matter"`
}

func (c *SecurityAssessmentPlanClass) GetUUID() oscalfield.UUID  { return c.UUID }
func (c *SecurityAssessmentPlanClass) SetUUID(u oscalfield.UUID) { c.UUID = u }

// AssessmentPlan is the wire envelope for an AssessmentPlan document.
type AssessmentPlan struct {
	Schema         *string                      `json:"$schema,omitempty"`
	AssessmentPlan *SecurityAssessmentPlanClass `json:"assessment-plan"`
}
