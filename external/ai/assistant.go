package ai

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"google.golang.org/genai"

	"github.com/symtoscan/symtoscan-api/schema"
	"github.com/symtoscan/symtoscan-api/utils"
)

const (
	logPrefix      = "ai"
	defaultTimeout = 2 * time.Minute
)

const symptomAnalysisSystemInstruction = `
You are a helpful AI assistant for preliminary symptom analysis. You are not a medical professional.
Your goal is to provide general information based on the described symptoms.

**IMPORTANT**: You MUST start your response with a clear and prominent disclaimer on its own line: 'DISCLAIMER: This is not a medical diagnosis. Please consult a healthcare professional for any health concerns.'

Do not provide a diagnosis. Instead, list potential areas of concern in a neutral, informational tone.
Suggest general wellness tips that are safe and widely applicable (e.g., rest, hydration).
Recommend when it might be appropriate to see a doctor (e.g., if symptoms persist or worsen).
Keep the language simple, empathetic, and easy to understand. Structure your response with clear headings using Markdown.
`

// ProviderError wraps any transport, auth, or quota failure from the
// generative-AI service, and any response that does not match the
// expected shape.
type ProviderError struct {
	Op  string
	Err error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("ai provider: %s: %v", e.Op, e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }

// Assistant - interface to the generative-AI text/vision service
type Assistant interface {
	Analyze(ctx context.Context, symptoms string, age int, images []schema.CapturedImage) (string, error)
	FindNearby(ctx context.Context, symptoms string, loc schema.Location, locality string) ([]schema.Place, error)
}

type assistant struct {
	client *genai.Client
	model  string
}

// New - new Assistant backed by the Gemini API
func New(ctx context.Context, apiKey, model string) (Assistant, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		log.WithFields(log.Fields{
			"prefix": logPrefix,
			"error":  err,
		}).Error("new genai client")

		return nil, err
	}

	return &assistant{
		client: client,
		model:  model,
	}, nil
}

// Analyze sends the symptom text together with any attached images in one
// multi-part request, so the provider reasons over text and vision jointly.
// A single attempt is made; failures are never retried here.
func (a *assistant) Analyze(ctx context.Context, symptoms string, age int, images []schema.CapturedImage) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	parts := []*genai.Part{
		genai.NewPartFromText(analysisPrompt(symptoms, age, len(images))),
	}

	for _, img := range images {
		data, mime, err := utils.DecodeImagePayload(img.Data)
		if err != nil {
			return "", &ProviderError{Op: "analyze", Err: err}
		}
		if mime == "" {
			mime = img.MimeType
		}
		parts = append(parts, &genai.Part{
			InlineData: &genai.Blob{MIMEType: mime, Data: data},
		})
	}

	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}

	resp, err := a.client.Models.GenerateContent(ctx, a.model, contents, &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(symptomAnalysisSystemInstruction, genai.RoleUser),
	})
	if err != nil {
		return "", &ProviderError{Op: "analyze", Err: err}
	}

	text := resp.Text()
	if text == "" {
		return "", &ProviderError{Op: "analyze", Err: fmt.Errorf("empty response")}
	}

	return text, nil
}

// FindNearby asks the provider for medical facilities around the given
// coordinates using the maps grounding tool, then extracts places from the
// grounding metadata. No grounding chunks means an empty list, not an error.
func (a *assistant) FindNearby(ctx context.Context, symptoms string, loc schema.Location, locality string) ([]schema.Place, error) {
	log.WithFields(log.Fields{
		"prefix": logPrefix,
		"lat":    loc.Latitude,
		"lng":    loc.Longitude,
	}).Info("query nearby facilities")

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	contents := []*genai.Content{
		genai.NewContentFromText(facilityPrompt(symptoms, locality), genai.RoleUser),
	}

	resp, err := a.client.Models.GenerateContent(ctx, a.model, contents, &genai.GenerateContentConfig{
		Tools: []*genai.Tool{
			{GoogleMaps: &genai.GoogleMaps{}},
		},
		ToolConfig: &genai.ToolConfig{
			RetrievalConfig: &genai.RetrievalConfig{
				LatLng: retrievalLatLng(loc),
			},
		},
	})
	if err != nil {
		return nil, &ProviderError{Op: "find nearby", Err: err}
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].GroundingMetadata == nil {
		return []schema.Place{}, nil
	}

	return placesFromChunks(resp.Candidates[0].GroundingMetadata.GroundingChunks), nil
}

func analysisPrompt(symptoms string, age, imageCount int) string {
	prompt := fmt.Sprintf("Please analyze the following symptoms: %q", symptoms)
	if imageCount > 0 {
		prompt += fmt.Sprintf("\nThe user attached %d image(s) of the affected area. Consider them in the analysis.", imageCount)
	}
	if age > 0 {
		prompt += fmt.Sprintf("\nThe user is %d years old.", age)
	}
	return prompt
}

func facilityPrompt(symptoms, locality string) string {
	prompt := fmt.Sprintf("Based on these symptoms: %q, find nearby medical facilities like hospitals, urgent care clinics, and pharmacies.", symptoms)
	if locality != "" {
		prompt += fmt.Sprintf(" The user is near %s.", locality)
	}
	return prompt
}

// retrievalLatLng converts coordinates into the SDK's retrieval anchor,
// which carries its fields as pointers.
func retrievalLatLng(loc schema.Location) *genai.LatLng {
	return &genai.LatLng{
		Latitude:  genai.Ptr(loc.Latitude),
		Longitude: genai.Ptr(loc.Longitude),
	}
}

// placesFromChunks turns grounding chunks into a deduplicated place list.
// Places are keyed by URI; when two chunks share a URI the later chunk
// wins, keeping the first chunk's position in the list.
func placesFromChunks(chunks []*genai.GroundingChunk) []schema.Place {
	places := make([]schema.Place, 0, len(chunks))
	index := make(map[string]int)

	for _, chunk := range chunks {
		var title, uri string
		switch {
		case chunk.Maps != nil:
			title, uri = chunk.Maps.Title, chunk.Maps.URI
		case chunk.Web != nil:
			title, uri = chunk.Web.Title, chunk.Web.URI
		}
		if title == "" || uri == "" {
			continue
		}

		if i, ok := index[uri]; ok {
			places[i] = schema.Place{Title: title, URI: uri}
			continue
		}

		index[uri] = len(places)
		places = append(places, schema.Place{Title: title, URI: uri})
	}

	return places
}
