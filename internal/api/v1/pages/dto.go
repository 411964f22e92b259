package pages

import "cropai-modelhub/internal/models"

type Feature struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type Link struct {
	Label string `json:"label"`
	Path  string `json:"path"`
}

type AboutPage struct {
	Title          string    `json:"title"`
	Summary        []string  `json:"summary"`
	Mission        string    `json:"mission"`
	Features       []Feature `json:"features"`
	SupportedCrops []string  `json:"supported_crops"`
	CallToAction   string    `json:"call_to_action"`
	Links          []Link    `json:"links"`
}

type Step struct {
	Number      int    `json:"number"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type RequirementStatus string

const (
	RequirementRequired  RequirementStatus = "required"
	RequirementPreferred RequirementStatus = "preferred"
)

type Requirement struct {
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Status      RequirementStatus `json:"status"`
}

type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type ContributePage struct {
	Title        string        `json:"title"`
	Subtitle     string        `json:"subtitle"`
	Steps        []Step        `json:"steps"`
	Requirements []Requirement `json:"requirements"`
	CropOptions  []string      `json:"crop_options"`
	Review       []Feature     `json:"review"`
	FAQ          []FAQ         `json:"faq"`
	SubmitPath   string        `json:"submit_path"`
}

type Endpoint struct {
	Method      string `json:"method"`
	Path        string `json:"path"`
	Description string `json:"description"`
}

// Snippet is a copyable code sample.
type Snippet struct {
	Language string `json:"language"`
	Title    string `json:"title"`
	Code     string `json:"code"`
}

type DocSection struct {
	ID       string     `json:"id"`
	Label    string     `json:"label"`
	Items    []string   `json:"items,omitempty"`
	Snippets []Snippet  `json:"snippets,omitempty"`
	Routes   []Endpoint `json:"endpoints,omitempty"`
}

type DocsPage struct {
	Title    string            `json:"title"`
	Subtitle string            `json:"subtitle"`
	BaseURL  string            `json:"base_url"`
	Crops    []models.CropType `json:"crops"`
	Sections []DocSection      `json:"sections"`
}
