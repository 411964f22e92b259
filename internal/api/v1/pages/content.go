package pages

import (
	"strings"

	"cropai-modelhub/internal/models"
)

const baseURLPlaceholder = "{{base_url}}"

var aboutPage = AboutPage{
	Title: "About CropAI Model Hub",
	Summary: []string{
		"The CropAI Model Hub is part of the larger CropAI Ecosystem. It serves as a centralized repository of verified, community-contributed, and AI-powered plant disease detection models.",
		"This hub helps farmers, researchers, and developers explore and integrate cutting-edge models for crops such as maize, tomato, rice, cassava, and more.",
	},
	Mission: "To democratize access to advanced agricultural AI technology, empowering farmers worldwide with intelligent crop disease detection tools that improve yield, reduce losses, and promote sustainable farming practices.",
	Features: []Feature{
		{"AI-Powered Detection", "Advanced machine learning models trained on thousands of crop images to accurately identify diseases and pests across multiple crop types."},
		{"Community-Driven", "Built by and for the agricultural community, with contributions from farmers, researchers, and developers worldwide."},
		{"Verified Models", "All models undergo rigorous testing and validation to ensure accuracy and reliability in real-world farming conditions."},
		{"Global Accessibility", "Designed to work across different climates, regions, and farming practices, making AI accessible to farmers everywhere."},
		{"Easy Integration", "Simple APIs and comprehensive documentation make it easy to integrate our models into existing agricultural applications and workflows."},
		{"Sustainable Focus", "Promoting environmentally friendly farming practices through early disease detection and targeted treatment recommendations."},
	},
	SupportedCrops: []string{"Maize", "Tomato", "Rice", "Cassava", "Wheat", "Potato", "Cotton", "Sugarcane"},
	CallToAction:   "Whether you're a farmer looking to protect your crops, a researcher developing new models, or a developer building agricultural solutions, CropAI Model Hub has something for you.",
	Links: []Link{
		{"Explore Models", "/api/v1/models"},
		{"Contribute Model", "/api/v1/pages/contribute"},
		{"View Documentation", "/api/v1/pages/docs"},
	},
}

var contributePage = ContributePage{
	Title:    "Contribute a Model",
	Subtitle: "Share your crop disease detection models with the global agricultural community",
	Steps: []Step{
		{1, "Model Preparation", "Prepare and test your model"},
		{2, "Documentation", "Create comprehensive documentation"},
		{3, "Submission", "Submit your model for review"},
		{4, "Review Process", "Community and expert review"},
		{5, "Publication", "Model goes live on the hub"},
	},
	Requirements: []Requirement{
		{"Training Data", "Minimum 1000 labeled images per disease class", RequirementRequired},
		{"Accuracy", "Validation accuracy of at least 85%", RequirementRequired},
		{"Model Format", "TensorFlow, PyTorch, or ONNX format", RequirementRequired},
		{"Documentation", "Complete model card and usage examples", RequirementRequired},
		{"License", "Open source license (MIT, Apache 2.0, etc.)", RequirementPreferred},
		{"Version Control", "Hosted on GitHub with clear history", RequirementPreferred},
	},
	CropOptions: models.SubmissionCropOptions,
	Review: []Feature{
		{"Community Review", "Community members test your model and provide feedback on performance and usability."},
		{"Expert Validation", "Agricultural experts and AI specialists validate the model's accuracy and practical applicability."},
		{"Final Approval", "Approved models are published on the hub with full documentation and integration support."},
	},
	FAQ: []FAQ{
		{"How long does the review process take?", "The review process typically takes 2-4 weeks, depending on the complexity of the model and current review queue. We'll keep you updated throughout the process."},
		{"Do I retain ownership of my model?", "Yes, you retain full ownership and credit for your model. We simply host and distribute it under your chosen open source license to make it accessible to the agricultural community."},
		{"Can I update my model after publication?", "Absolutely! We encourage model improvements. You can submit updates that will go through a streamlined review process and be versioned appropriately."},
		{"What if my model doesn't meet the accuracy threshold?", "We'll provide detailed feedback to help you improve your model. You can resubmit once you've addressed the identified issues."},
	},
	SubmitPath: "/api/v1/submissions",
}

const pythonSnippet = `import requests

base_url = "{{base_url}}"

# Search the catalog
resp = requests.get(f"{base_url}/models", params={"q": "tomato", "crop": "All Crops"})
for model in resp.json()["data"]["models"]:
    print(model["title"], model["accuracy"], model["downloads_display"])

# Submit a model
draft = {
    "modelName": "Advanced Tomato Disease Detector",
    "cropType": "Tomato",
    "description": "Detects early blight, late blight and leaf mold on tomato leaves.",
    "accuracy": "92%",
    "trainingDataSize": "15000",
    "email": "you@example.org",
    "githubRepo": "https://github.com/you/tomato-detector",
}
resp = requests.post(f"{base_url}/submissions", json=draft, headers={"X-Client-ID": "my-app"})
print(resp.status_code, resp.json()["message"])`

const javascriptSnippet = `const baseUrl = '{{base_url}}';

const searchModels = async (query, crop = 'All Crops') => {
  const params = new URLSearchParams({ q: query, crop });
  const response = await fetch(` + "`${baseUrl}/models?${params}`" + `);
  const body = await response.json();
  return body.data.models;
};

// Live updates of the shared filter
const events = new EventSource(` + "`${baseUrl}/filter/events`" + `);
events.addEventListener('snapshot', (e) => {
  const state = JSON.parse(e.data);
  console.log(state.total, 'models visible');
});`

const curlSnippet = `curl "{{base_url}}/models?q=maize"

curl -X POST "{{base_url}}/submissions" \
  -H "Content-Type: application/json" \
  -H "X-Client-ID: my-app" \
  -d '{"modelName":"Maize Rust Finder","cropType":"Maize","description":"Classifies common rust and gray leaf spot on maize.","accuracy":"91","trainingDataSize":"8000","email":"you@example.org"}'

curl -H "X-Client-ID: my-app" "{{base_url}}/notifications"`

var docsSections = []DocSection{
	{
		ID:    "getting-started",
		Label: "Getting Started",
		Items: []string{
			"Browse the catalog and pick a model for your crop",
			"Filter by crop type or search by title, description, author, or tag",
			"Follow the model link to download the model file",
			"Submit your own model through the contribution endpoint",
		},
	},
	{
		ID:    "api-reference",
		Label: "API Reference",
		Routes: []Endpoint{
			{"GET", "/models", "Search the catalog with q and crop"},
			{"GET", "/models/{id}", "Fetch one model"},
			{"GET", "/crops", "List crop filters and submission crop options"},
			{"GET", "/tags", "List tags with badge styles"},
			{"GET", "/stats", "Catalog statistics"},
			{"GET", "/filter", "Shared filter state"},
			{"PUT", "/filter/query", "Set the shared search query"},
			{"PUT", "/filter/crop", "Set the shared crop filter"},
			{"GET", "/filter/events", "Server-sent snapshot events"},
			{"POST", "/submissions", "Submit a model"},
			{"GET", "/notifications", "Drain your pending notifications"},
			{"GET", "/pages/{name}", "About, contribute and docs content"},
		},
	},
	{
		ID:    "examples",
		Label: "Examples",
		Snippets: []Snippet{
			{"python", "Search and submit with requests", pythonSnippet},
			{"javascript", "Search and subscribe from the browser", javascriptSnippet},
			{"curl", "Command line", curlSnippet},
		},
	},
	{
		ID:    "troubleshooting",
		Label: "Troubleshooting",
		Items: []string{
			"Crop values are case sensitive and must match an entry from /crops",
			"Submissions report only the first invalid field; fix it and resubmit",
			"Send the same X-Client-ID on every request to read your notifications",
			"Notifications expire if they are not read in time",
			"Implement proper error handling in your applications",
		},
	},
}

// docsPage renders the documentation for a service reachable at baseURL.
func docsPage(baseURL string) DocsPage {
	sections := make([]DocSection, len(docsSections))
	for i, s := range docsSections {
		if len(s.Snippets) > 0 {
			snippets := make([]Snippet, len(s.Snippets))
			for j, sn := range s.Snippets {
				sn.Code = strings.ReplaceAll(sn.Code, baseURLPlaceholder, baseURL)
				snippets[j] = sn
			}
			s.Snippets = snippets
		}
		sections[i] = s
	}
	return DocsPage{
		Title:    "Documentation",
		Subtitle: "Everything you need to integrate CropAI models into your applications",
		BaseURL:  baseURL,
		Crops:    models.CropTypes,
		Sections: sections,
	}
}
