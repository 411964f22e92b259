package models

// CropType is a value of the closed crop vocabulary offered by the filter
// controls. Record crop labels are free-form and are not CropType values.
type CropType string

const (
	CropAll     CropType = "All Crops"
	CropMaize   CropType = "Maize"
	CropWheat   CropType = "Wheat"
	CropRice    CropType = "Rice"
	CropTomato  CropType = "Tomato"
	CropPotato  CropType = "Potato"
	CropBeans   CropType = "Beans"
	CropCassava CropType = "Cassava"
	CropCoffee  CropType = "Coffee"
	CropCotton  CropType = "Cotton"
	CropSoybean CropType = "Soybean"
)

// CropTypes lists the filter vocabulary in display order.
var CropTypes = []CropType{
	CropAll,
	CropMaize,
	CropWheat,
	CropRice,
	CropTomato,
	CropPotato,
	CropBeans,
	CropCassava,
	CropCoffee,
	CropCotton,
	CropSoybean,
}

// SubmissionCropOptions are the choices offered by the contribution form.
// They intentionally differ from CropTypes.
var SubmissionCropOptions = []string{
	"Tomato",
	"Maize",
	"Rice",
	"Wheat",
	"Potato",
	"Cassava",
	"Cotton",
	"Sugarcane",
	"Soybean",
	"Barley",
	"Other (specify in description)",
}

// ParseCropType returns the CropType matching s exactly.
func ParseCropType(s string) (CropType, bool) {
	for _, c := range CropTypes {
		if string(c) == s {
			return c, true
		}
	}
	return "", false
}

func (c CropType) IsAll() bool {
	return c == CropAll
}
