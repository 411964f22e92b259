package catalog

import "cropai-modelhub/internal/models"

// TagBadge is a tag with the colours the card renders it in.
type TagBadge struct {
	Tag models.Tag `json:"tag"`
	models.TagStyle
}

// ModelCard is a model record plus its display strings.
type ModelCard struct {
	models.ModelRecord
	Badges             []TagBadge `json:"badges"`
	DownloadsDisplay   string     `json:"downloads_display"`
	LastUpdatedDisplay string     `json:"last_updated_display"`
	VersionDisplay     string     `json:"version_display"`
	AccuracyReported   bool       `json:"accuracy_reported"`
}

type ModelListResponse struct {
	Models []ModelCard     `json:"models"`
	Total  int             `json:"total"`
	Query  string          `json:"query"`
	Crop   models.CropType `json:"crop"`
}

type CropListResponse struct {
	Crops             []models.CropType `json:"crops"`
	SubmissionOptions []string          `json:"submission_options"`
}

func NewModelCard(r models.ModelRecord) ModelCard {
	badges := make([]TagBadge, 0, len(r.Tags))
	for _, t := range r.Tags {
		badges = append(badges, TagBadge{Tag: t, TagStyle: t.Style()})
	}
	return ModelCard{
		ModelRecord:        r,
		Badges:             badges,
		DownloadsDisplay:   models.FormatDownloads(r.Downloads),
		LastUpdatedDisplay: r.LastUpdated.Display(),
		VersionDisplay:     r.DisplayVersion(),
		AccuracyReported:   r.AccuracyReported(),
	}
}

func NewModelCards(records []models.ModelRecord) []ModelCard {
	cards := make([]ModelCard, 0, len(records))
	for _, r := range records {
		cards = append(cards, NewModelCard(r))
	}
	return cards
}
