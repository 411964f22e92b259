package services

import (
	"regexp"
	"strings"

	"cropai-modelhub/internal/models"

	"github.com/go-playground/validator/v10"
)

var (
	percentagePattern = regexp.MustCompile(`^(\d{1,3})(\.\d+)?%?$`)
	emailPattern      = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	githubRepoPattern = regexp.MustCompile(`^(https?://)?(www\.)?github\.com/[\w-]+/[\w-]+/?$`)
	// Decimal with optional exponent, signed Infinity, or an unsigned
	// 0x/0o/0b integer literal.
	numberPattern = regexp.MustCompile(`^(?:[+-]?(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?|[+-]?Infinity|0[xX][0-9a-fA-F]+|0[oO][0-7]+|0[bB][01]+)$`)
)

// ValidationError reports the first submission field that failed its check.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return e.Message
}

type submissionCheck struct {
	field   string
	value   func(models.SubmissionDraft) string
	rules   string
	message string
}

// submissionChecks run in this order; only the first failure is reported.
var submissionChecks = []submissionCheck{
	{
		field:   "modelName",
		value:   func(d models.SubmissionDraft) string { return d.ModelName },
		rules:   "required,min=3",
		message: "Model name must be at least 3 characters.",
	},
	{
		field:   "cropType",
		value:   func(d models.SubmissionDraft) string { return d.CropType },
		rules:   "required",
		message: "Please select a crop type.",
	},
	{
		field:   "description",
		value:   func(d models.SubmissionDraft) string { return d.Description },
		rules:   "required,min=20",
		message: "Description must be at least 20 characters.",
	},
	{
		field:   "accuracy",
		value:   func(d models.SubmissionDraft) string { return d.Accuracy },
		rules:   "required,percentage",
		message: "Accuracy must be a valid number or percentage (e.g., 92 or 92%).",
	},
	{
		field:   "trainingDataSize",
		value:   func(d models.SubmissionDraft) string { return d.TrainingDataSize },
		rules:   "required,numeric_value",
		message: "Training data size must be a valid number.",
	},
	{
		field:   "email",
		value:   func(d models.SubmissionDraft) string { return d.Email },
		rules:   "required,simple_email",
		message: "Please enter a valid email address.",
	},
	{
		field:   "githubRepo",
		value:   func(d models.SubmissionDraft) string { return d.GithubRepo },
		rules:   "omitempty,github_repo",
		message: "Please enter a valid GitHub repository URL.",
	},
}

var submissionValidate = newSubmissionValidator()

func newSubmissionValidator() *validator.Validate {
	v := validator.New()
	mustRegister(v, "percentage", matchString(percentagePattern))
	mustRegister(v, "simple_email", matchString(emailPattern))
	mustRegister(v, "github_repo", matchString(githubRepoPattern))
	mustRegister(v, "numeric_value", func(fl validator.FieldLevel) bool {
		return IsNumeric(fl.Field().String())
	})
	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

func matchString(re *regexp.Regexp) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return re.MatchString(fl.Field().String())
	}
}

// IsNumeric reports whether s, ignoring surrounding whitespace, is a number
// literal: "1000", "1e3", ".5", "-Infinity", "0x10". Empty input, NaN,
// lowercase "inf" and digit separators are rejected.
func IsNumeric(s string) bool {
	return numberPattern.MatchString(strings.TrimSpace(s))
}

// IsValidPercentage reports whether s looks like "92", "92.5" or "92%".
func IsValidPercentage(s string) bool {
	return percentagePattern.MatchString(s)
}

func IsValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// IsValidGithubRepo reports whether s has the github.com/<owner>/<repo> shape.
func IsValidGithubRepo(s string) bool {
	return githubRepoPattern.MatchString(s)
}

// ValidateSubmission runs the field checks in order and returns a
// *ValidationError for the first one that fails, or nil.
func ValidateSubmission(draft models.SubmissionDraft) error {
	for _, check := range submissionChecks {
		if err := submissionValidate.Var(check.value(draft), check.rules); err != nil {
			return &ValidationError{Field: check.field, Message: check.message}
		}
	}
	return nil
}
