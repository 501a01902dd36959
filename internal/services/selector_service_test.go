package services

import (
	"testing"

	"locallens/internal/models/response_models"
)

func ratingp(v float64) *float64 { return &v }

func candidate(id string, rating *float64, types ...string) response_models.CandidatePOI {
	return response_models.CandidatePOI{ID: id, Name: id, Rating: rating, Types: types}
}

func TestSelectFiltersByInterests(t *testing.T) {
	selector := NewCandidateSelector()

	pois := []response_models.CandidatePOI{
		candidate("beach", ratingp(4.5), "beach", "natural_feature"),
		candidate("temple", ratingp(4.7), "hindu_temple", "place_of_worship"),
		candidate("mall", ratingp(4.1), "shopping_mall"),
		candidate("cafe", ratingp(4.3), "cafe", "food"),
	}

	got := selector.Select(pois, []string{"temple", "food"})

	want := map[string]bool{"beach": true, "temple": true, "cafe": true}
	if len(got) != len(want) {
		t.Fatalf("got %d candidates, want %d", len(got), len(want))
	}
	for _, poi := range got {
		if !want[poi.ID] {
			t.Errorf("unexpected candidate %s", poi.ID)
		}
	}
}

func TestSelectInterestMatchIsSubstringAndCaseInsensitive(t *testing.T) {
	selector := NewCandidateSelector()

	pois := []response_models.CandidatePOI{
		candidate("gallery", nil, "Art_Gallery"),
	}

	if got := selector.Select(pois, []string{"art"}); len(got) != 1 {
		t.Errorf("expected substring interest match, got %d results", len(got))
	}
}

func TestSelectEmptyInterestsKeepsDefaultCategories(t *testing.T) {
	selector := NewCandidateSelector()

	pois := []response_models.CandidatePOI{
		candidate("fort", ratingp(4.0), "tourist_attraction"),
		candidate("gym", ratingp(4.9), "gym"),
	}

	got := selector.Select(pois, nil)
	if len(got) != 1 || got[0].ID != "fort" {
		t.Fatalf("expected only the default-category match, got %+v", got)
	}
}

func TestSelectRanksByRatingWithNilLast(t *testing.T) {
	selector := NewCandidateSelector()

	pois := []response_models.CandidatePOI{
		candidate("a", nil, "museum"),
		candidate("b", ratingp(4.2), "museum"),
		candidate("c", ratingp(4.8), "museum"),
		candidate("d", nil, "park"),
		candidate("e", ratingp(4.2), "park"),
	}

	got := selector.Select(pois, nil)

	wantOrder := []string{"c", "b", "e", "a", "d"}
	if len(got) != len(wantOrder) {
		t.Fatalf("got %d candidates, want %d", len(got), len(wantOrder))
	}
	for i, id := range wantOrder {
		if got[i].ID != id {
			t.Errorf("position %d: got %s, want %s", i, got[i].ID, id)
		}
	}
}

func TestSelectDoesNotMutateInput(t *testing.T) {
	selector := NewCandidateSelector()

	pois := []response_models.CandidatePOI{
		candidate("low", ratingp(3.0), "museum"),
		candidate("high", ratingp(5.0), "museum"),
	}

	_ = selector.Select(pois, nil)

	if pois[0].ID != "low" || pois[1].ID != "high" {
		t.Error("input slice order changed")
	}
}
