package models

// Tag is a label attached to a model listing.
type Tag string

const (
	TagVerified        Tag = "Verified"
	TagCommunity       Tag = "Community"
	TagNew             Tag = "New"
	TagPopular         Tag = "Popular"
	TagResearch        Tag = "Research"
	TagProductionReady Tag = "Production Ready"
	TagOfflineFirst    Tag = "Offline First"
	TagOurSolution     Tag = "Our Solution"
	TagMultiCrop       Tag = "Multi‑Crop"
	TagFlutter         Tag = "Flutter"
	TagTemplate        Tag = "Template"
	TagAndroid         Tag = "Android"
	TagTFLite          Tag = "TFLite"
	TagCassava         Tag = "Cassava"
	TagFertilizer      Tag = "Fertilizer"
	TagWebApp          Tag = "Web App"
	TagViT             Tag = "ViT"
	TagMobile          Tag = "Mobile"
	TagHyperspectral   Tag = "Hyperspectral"
	TagICPR            Tag = "ICPR"
)

var Tags = []Tag{
	TagVerified,
	TagCommunity,
	TagNew,
	TagPopular,
	TagResearch,
	TagProductionReady,
	TagOfflineFirst,
	TagOurSolution,
	TagMultiCrop,
	TagFlutter,
	TagTemplate,
	TagAndroid,
	TagTFLite,
	TagCassava,
	TagFertilizer,
	TagWebApp,
	TagViT,
	TagMobile,
	TagHyperspectral,
	TagICPR,
}

// TagStyle names the badge colours a front end renders for a tag.
type TagStyle struct {
	Background string `json:"background"`
	Text       string `json:"text"`
}

var neutralTagStyle = TagStyle{Background: "gray-100", Text: "gray-800"}

var tagStyles = map[Tag]TagStyle{
	TagVerified:        {Background: "green-100", Text: "green-800"},
	TagCommunity:       {Background: "blue-100", Text: "blue-800"},
	TagNew:             {Background: "purple-100", Text: "purple-800"},
	TagPopular:         {Background: "orange-100", Text: "orange-800"},
	TagResearch:        neutralTagStyle,
	TagProductionReady: {Background: "emerald-100", Text: "emerald-800"},
}

// Style returns the badge style for t. Tags without a dedicated style,
// including ones added later, render neutral.
func (t Tag) Style() TagStyle {
	if s, ok := tagStyles[t]; ok {
		return s
	}
	return neutralTagStyle
}
