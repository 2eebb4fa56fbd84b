package models

// SchemeSection is one nested section of a government scheme document.
// JSON field names match the bundled dataset.
type SchemeSection struct {
	Title       string          `json:"title" validate:"required"`
	Content     string          `json:"content,omitempty"`
	ListItems   []string        `json:"list_items,omitempty"`
	SubSections []SchemeSection `json:"sub_sections,omitempty" validate:"omitempty,dive"`
}

// SchemeRecord is one government scheme from the bundled dataset. Records are
// loaded once at startup and never mutated.
type SchemeRecord struct {
	SchemeName string          `json:"scheme_name" validate:"required"`
	Ministry   string          `json:"ministry" validate:"required"`
	Keywords   []string        `json:"keywords" validate:"required"`
	Sections   []SchemeSection `json:"sections" validate:"required,dive"`
}

// GovernmentSchemesInput is the request for the government schemes agent
type GovernmentSchemesInput struct {
	Query    string `json:"query" validate:"required,min=3"`
	Language string `json:"language,omitempty"`
}

// SchemeSummary is one scheme condensed for presentation
type SchemeSummary struct {
	SchemeName         string `json:"schemeName" validate:"required"`
	Details            string `json:"details" validate:"required"`
	Benefits           string `json:"benefits" validate:"required"`
	Eligibility        string `json:"eligibility" validate:"required"`
	ApplicationProcess string `json:"applicationProcess" validate:"required"`
	DocumentsRequired  string `json:"documentsRequired" validate:"required"`
	SourceLink         string `json:"sourceLink" validate:"required,url"`
}

// GovernmentSchemesOutput lists the summarized schemes found for a query.
// Schemes may only be non-empty when the repository search matched records;
// the agent never fabricates a scheme from model knowledge.
type GovernmentSchemesOutput struct {
	Schemes []SchemeSummary `json:"schemes" validate:"dive"`
	Summary string          `json:"summary" validate:"required"`
}
