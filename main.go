package main

import (
	"os"

	"cropai-modelhub/cmd"
)

// @title CropAI Model Hub API
// @version 1.0
// @description Catalog, search and submission API for crop disease detection models.

// @host localhost:8080
// @BasePath /api/v1

func main() {
	os.Exit(cmd.Execute())
}
