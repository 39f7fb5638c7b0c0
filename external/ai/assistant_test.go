package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/genai"

	"github.com/symtoscan/symtoscan-api/schema"
)

func TestPlacesFromChunks(t *testing.T) {
	chunks := []*genai.GroundingChunk{
		{Maps: &genai.GroundingChunkMaps{Title: "City Hospital", URI: "maps://1"}},
		{Maps: &genai.GroundingChunkMaps{Title: "Corner Pharmacy", URI: "maps://2"}},
		{Web: &genai.GroundingChunkWeb{Title: "Urgent Care", URI: "https://uc.example"}},
	}

	assert.Equal(t, []schema.Place{
		{Title: "City Hospital", URI: "maps://1"},
		{Title: "Corner Pharmacy", URI: "maps://2"},
		{Title: "Urgent Care", URI: "https://uc.example"},
	}, placesFromChunks(chunks))
}

func TestPlacesFromChunksDeduplicatesByURI(t *testing.T) {
	chunks := []*genai.GroundingChunk{
		{Maps: &genai.GroundingChunkMaps{Title: "City Hospital", URI: "maps://1"}},
		{Maps: &genai.GroundingChunkMaps{Title: "Corner Pharmacy", URI: "maps://2"}},
		{Maps: &genai.GroundingChunkMaps{Title: "City Hospital (Main Campus)", URI: "maps://1"}},
	}

	// later chunk wins but keeps the first chunk's position
	assert.Equal(t, []schema.Place{
		{Title: "City Hospital (Main Campus)", URI: "maps://1"},
		{Title: "Corner Pharmacy", URI: "maps://2"},
	}, placesFromChunks(chunks))
}

func TestPlacesFromChunksSkipsIncomplete(t *testing.T) {
	chunks := []*genai.GroundingChunk{
		{},
		{Maps: &genai.GroundingChunkMaps{Title: "No URI"}},
		{Web: &genai.GroundingChunkWeb{URI: "https://no-title.example"}},
	}

	assert.Empty(t, placesFromChunks(chunks))
}

func TestRetrievalLatLng(t *testing.T) {
	latLng := retrievalLatLng(schema.Location{Latitude: 25.0425, Longitude: 121.6115})

	// the SDK anchor carries pointer fields
	assert.Equal(t, 25.0425, *latLng.Latitude)
	assert.Equal(t, 121.6115, *latLng.Longitude)
}

func TestAnalysisPrompt(t *testing.T) {
	prompt := analysisPrompt("persistent cough", 42, 2)
	assert.Contains(t, prompt, `"persistent cough"`)
	assert.Contains(t, prompt, "42 years old")
	assert.Contains(t, prompt, "2 image(s)")

	prompt = analysisPrompt("persistent cough", 0, 0)
	assert.NotContains(t, prompt, "years old")
	assert.NotContains(t, prompt, "image(s)")
}

func TestFacilityPrompt(t *testing.T) {
	prompt := facilityPrompt("sprained ankle", "Springfield")
	assert.Contains(t, prompt, `"sprained ankle"`)
	assert.Contains(t, prompt, "near Springfield")

	assert.NotContains(t, facilityPrompt("sprained ankle", ""), "The user is near")
}
