package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"locallens/internal/models/response_models"
)

// PlaceSuggesterInterface produces candidate POIs for a planning location when
// the catalog has nothing stored for it.
type PlaceSuggesterInterface interface {
	SuggestPlaces(ctx context.Context, location string, prefs response_models.UserPreferences) ([]response_models.CandidatePOI, error)
}

// GeminiPlaceSuggester implements PlaceSuggesterInterface with Gemini's
// JSON-constrained output.
type GeminiPlaceSuggester struct {
	client *genai.Client
	model  string
}

func NewGeminiPlaceSuggester(apiKey, model string) (PlaceSuggesterInterface, error) {
	if model == "" {
		model = "gemini-2.0-flash"
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiPlaceSuggester{
		client: client,
		model:  model,
	}, nil
}

func (g *GeminiPlaceSuggester) SuggestPlaces(
	ctx context.Context,
	location string,
	prefs response_models.UserPreferences,
) ([]response_models.CandidatePOI, error) {

	if strings.TrimSpace(location) == "" {
		return nil, fmt.Errorf("empty planning location")
	}

	m := g.client.GenerativeModel(g.model)
	m.ResponseMIMEType = "application/json"
	m.SetTemperature(0.1)
	m.SetTopP(0.5)
	m.SetTopK(20)

	prompt := fmt.Sprintf(`
Generate a list of 8-10 popular tourist attractions and good restaurants/cafes in %s.
The user has the following preferences:
Travel Style: %s
Interests: %s
Food Preferences: %s
Budget: %s
Pacing: %s

For each place, provide its:
- id (a unique short string like 'p1', 'p2', etc.)
- name
- latitude
- longitude
- address (e.g., "%s, India")
- rating (e.g., 4.5)
- rating_count (e.g., 10000)
- types (a list of relevant types, e.g., ["tourist_attraction", "beach", "restaurant"])

Return JSON only: an array of objects with keys
id, name, latitude, longitude, address, rating, rating_count, types.
No comments, no markdown.
`,
		location,
		strings.Join(prefs.TravelStyles, ", "),
		strings.Join(prefs.Interests, ", "),
		strings.Join(prefs.FoodPreferences, ", "),
		prefs.Budget,
		prefs.Pacing,
		location,
	)

	resp, err := m.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("gemini: %w", err)
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("no content")
	}

	content := fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0])
	if !json.Valid([]byte(content)) {
		return nil, fmt.Errorf("not valid json")
	}

	var places []response_models.CandidatePOI
	if err := json.Unmarshal([]byte(content), &places); err != nil {
		return nil, fmt.Errorf("decode places: %w", err)
	}

	return places, nil
}

func (g *GeminiPlaceSuggester) Close() error {
	return g.client.Close()
}
