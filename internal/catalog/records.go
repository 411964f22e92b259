// Package catalog holds the compiled-in listing set served by the hub.
package catalog

import "cropai-modelhub/internal/models"

// Records returns a fresh copy of the catalog in display order.
func Records() []models.ModelRecord {
	out := make([]models.ModelRecord, len(records))
	for i, r := range records {
		r.Tags = append([]models.Tag(nil), r.Tags...)
		out[i] = r
	}
	return out
}

var records = []models.ModelRecord{
	{
		ID:          "cropai-multi",
		Title:       "CropAI-Crop Disease Diagnosis",
		Description: "Offline app diagnosing maize, tomato & bean diseases with bundled lightweight MobileNetV2 model and treatment suggestions.",
		Crop:        "Multi‑Crop",
		Tags:        []models.Tag{models.TagOurSolution, models.TagOfflineFirst, models.TagVerified, models.TagTFLite, models.TagAndroid},
		Accuracy:    94.7,
		Downloads:   810,
		LastUpdated: models.MustDate("2025-07-22"),
		Version:     "1.0.0",
		ModelFile:   "https://github.com/akechsmith/ai-crop-disease-diagnosis/raw/main/backend/model",
		Author:      "CropAI Team (JHUB Africa)",
		ImageURL:    "https://images.unsplash.com/photo-1576045057995-568f588f82fb?w=400",
	},
	{
		ID:          "plantvillage-nuru",
		Title:       "PlantVillage Nuru",
		Description: "Offline AI app diagnosing cassava mosaic, brown streak, maize fall armyworm, and more. Supports field guidance.",
		Crop:        "Multi‑Crop",
		Tags:        []models.Tag{models.TagVerified, models.TagOfflineFirst, models.TagCommunity, models.TagProductionReady, models.TagMobile},
		Accuracy:    90,
		Downloads:   1000,
		LastUpdated: models.MustDate("2024-10-23"),
		Version:     "14.1",
		AppLink:     "https://play.google.com/store/apps/details?id=plantvillage.nuru",
		Author:      "Penn State University",
		ImageURL:    "https://images.unsplash.com/photo-1605000797499-95a51c5269ae?w=400",
	},
	{
		ID:          "plantdis-flutter",
		Title:       "PlantDis Detector App",
		Description: "TFLite‑powered Flutter Android app detecting diseases in apple, corn, orange, potato & tomato via image upload.",
		Crop:        "Multi‑Crop",
		Tags:        []models.Tag{models.TagCommunity, models.TagMultiCrop, models.TagFlutter},
		Accuracy:    90.0,
		Downloads:   1200,
		LastUpdated: models.MustDate("2025-06-10"),
		Version:     "1.0.0",
		ModelFile:   "https://github.com/spsaswat/plantdis?tab=readme-ov-file",
		Author:      "Saswat Panda & Ming‑dao Chia",
		ImageURL:    "https://images.unsplash.com/photo-1587735243615-c03f25aaff15?w=400",
	},
	{
		ID:          "plant‑diseases‑detector",
		Title:       "Plant Diseases Detector (Android)",
		Description: "Android app template using TFLite for plant disease detection—end‑to‑end TF → APK example.",
		Crop:        "Multi‑Crop",
		Tags:        []models.Tag{models.TagTemplate, models.TagAndroid, models.TagTFLite},
		Accuracy:    92.0,
		Downloads:   800,
		LastUpdated: models.MustDate("2025-06-01"),
		Version:     "1.0.0",
		ModelFile:   "https://www.tensorflow.org/hub/tutorials/cropnet_on_device",
		Author:      "Yannick Serge Obam",
		ImageURL:    "https://images.pexels.com/photos/5199274/pexels-photo-5199274.jpeg",
	},
	{
		ID:          "plantix",
		Title:       "Plantix – Your Crop Doctor",
		Description: "AI app diagnosing pests, diseases & nutrient deficiencies across 30+ crops with treatment guidance.",
		Crop:        "Multi‑Crop",
		Tags:        []models.Tag{models.TagVerified, models.TagPopular, models.TagCommunity, models.TagProductionReady, models.TagMobile},
		Accuracy:    95,
		Downloads:   10000000,
		LastUpdated: models.MustDate("2025-06-15"),
		Version:     "latest",
		AppLink:     "https://play.google.com/store/apps/details?id=com.peat.GartenBank",
		Author:      "PEAT GmbH",
		ImageURL:    "https://images.unsplash.com/photo-1592924357228-91a4daadcfea?w=400",
	},
	{
		ID:          "agrio",
		Title:       "Agrio – Plant Protection AI",
		Description: "AI-driven plant doctor providing disease, pest & nutrient diagnoses plus satellite-based field alerts.",
		Crop:        "Multi‑Crop",
		Tags:        []models.Tag{models.TagVerified, models.TagCommunity, models.TagProductionReady, models.TagMobile},
		Accuracy:    90,
		Downloads:   0,
		LastUpdated: models.MustDate("2025-05-01"),
		Version:     "latest",
		AppLink:     "https://play.google.com/store/apps/details?id=com.agrio",
		Author:      "Agrio",
		ImageURL:    "https://images.unsplash.com/photo-1586201375761-83865001e31c?w=400",
	},
	{
		ID:          "agphd-corn-diseases",
		Title:       "Ag PhD Corn Diseases",
		Description: "Mobile guide for diagnosing corn diseases in the U.S. and Canada—field-oriented visual reference.",
		Crop:        "Maize",
		Tags:        []models.Tag{models.TagCommunity, models.TagResearch, models.TagMobile},
		Accuracy:    0,
		Downloads:   5000,
		LastUpdated: models.MustDate("2024-08-09"),
		Version:     "1.0",
		AppLink:     "https://play.google.com/store/apps/details?id=com.agphd.corndiseases",
		Author:      "IFA Productions",
		ImageURL:    "https://images.unsplash.com/photo-1551754655-cd27e38d2076?w=400",
	},
	{
		ID:          "mobileplantvit",
		Title:       "MobilePlantViT Model",
		Description: "Hybrid Vision Transformer TFLite model for generalized plant disease classification across crops.",
		Crop:        "Multi‑Crop",
		Tags:        []models.Tag{models.TagResearch, models.TagViT, models.TagMobile},
		Accuracy:    95.0,
		Downloads:   150,
		LastUpdated: models.MustDate("2025-03-20"),
		Version:     "1.0.0",
		ModelFile:   "https://github.com/moshiurtonmoy/MobilePlantViT/releases/latest/download/model.tflite",
		Author:      "M. Rahman Tonmoy et al.",
		ImageURL:    "https://images.unsplash.com/photo-1518977676601-b53f82aba655?w=400",
	},
	{
		ID:          "automated‑hyperspectral",
		Title:       "Hyperspectral Crop Disease",
		Description: "ICPR‑winning solution diagnosing diseases via hyperspectral imaging—Python/Jupyter.",
		Crop:        "Multi‑Crop",
		Tags:        []models.Tag{models.TagResearch, models.TagHyperspectral, models.TagICPR},
		Accuracy:    0,
		Downloads:   80,
		LastUpdated: models.MustDate("2024-08-31"),
		Version:     "1.0.0",
		ModelFile:   "https://github.com/VanLinLin/Automated-Crop-Disease-Diagnosis-from-Hyperspectral-Imagery-3rd",
		Author:      "NCKU ACVLAB",
		ImageURL:    "https://images.unsplash.com/photo-1464226184884-fa280b87c399?w=400",
	},
	{
		ID:          "plantpulse",
		Title:       "PlantPulse Disease Advisor",
		Description: "Flutter disease detection app offering treatment tips, weather analytics & community chat support.",
		Crop:        "Multi‑Crop",
		Tags:        []models.Tag{models.TagCommunity, models.TagFlutter, models.TagAndroid},
		Accuracy:    90.0,
		Downloads:   220,
		LastUpdated: models.MustDate("2025-04-10"),
		Version:     "1.0.0",
		ModelFile:   "https://github.com/prajwalpkp2106/Crop-Disease-Detection-App",
		Author:      "Prajwal P.",
		ImageURL:    "https://images.unsplash.com/photo-1500382017468-9049fed747ef?w=400",
	},
}
