package models

import (
	"time"

	"gorm.io/datatypes"
)

// SubmissionCollection is the document collection new model proposals are
// appended to.
const SubmissionCollection = "modelSubmissions"

// SubmissionDraft is the user-entered contribution form.
type SubmissionDraft struct {
	ModelName        string `json:"modelName" form:"modelName"`
	CropType         string `json:"cropType" form:"cropType"`
	Description      string `json:"description" form:"description"`
	Accuracy         string `json:"accuracy" form:"accuracy"`
	TrainingDataSize string `json:"trainingDataSize" form:"trainingDataSize"`
	Email            string `json:"email" form:"email"`
	GithubRepo       string `json:"githubRepo" form:"githubRepo"`
}

// IsEmpty reports whether every field is blank.
func (d SubmissionDraft) IsEmpty() bool {
	return d == SubmissionDraft{}
}

// Fields returns the draft as the opaque field mapping written to the store.
func (d SubmissionDraft) Fields() map[string]interface{} {
	return map[string]interface{}{
		"modelName":        d.ModelName,
		"cropType":         d.CropType,
		"description":      d.Description,
		"accuracy":         d.Accuracy,
		"trainingDataSize": d.TrainingDataSize,
		"email":            d.Email,
		"githubRepo":       d.GithubRepo,
	}
}

// Document is one appended entry of a collection in the SQL-backed
// document store.
type Document struct {
	ID          string            `gorm:"primaryKey;size:36" json:"id"`
	Collection  string            `gorm:"index;not null" json:"collection"`
	Fields      datatypes.JSONMap `gorm:"not null" json:"fields"`
	SubmittedAt time.Time         `gorm:"index;not null" json:"submitted_at"`
}
