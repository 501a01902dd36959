package services

import (
	"sort"
	"strings"

	"locallens/internal/models/response_models"
)

// defaultCategories always count as a match regardless of the traveller's
// stated interests, so a city with thin tagging still produces a plan.
var defaultCategories = []string{"tourist_attraction", "restaurant", "park", "museum", "beach"}

type CandidateSelectorInterface interface {
	Select(pois []response_models.CandidatePOI, interests []string) []response_models.CandidatePOI
}

type CandidateSelector struct{}

func NewCandidateSelector() CandidateSelectorInterface {
	return &CandidateSelector{}
}

// Select keeps POIs whose type tags overlap the traveller's interests or the
// default sightseeing categories, ranked by rating descending. The sort is
// stable and unrated places sink to the end.
func (s *CandidateSelector) Select(pois []response_models.CandidatePOI, interests []string) []response_models.CandidatePOI {
	matched := make([]response_models.CandidatePOI, 0, len(pois))
	for _, poi := range pois {
		if matchesInterests(poi.Types, interests) {
			matched = append(matched, poi)
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		ri, rj := matched[i].Rating, matched[j].Rating
		if ri == nil {
			return false
		}
		if rj == nil {
			return true
		}
		return *ri > *rj
	})
	return matched
}

func matchesInterests(types []string, interests []string) bool {
	for _, tag := range types {
		lowered := strings.ToLower(tag)
		for _, interest := range interests {
			if strings.Contains(lowered, strings.ToLower(interest)) {
				return true
			}
		}
		for _, category := range defaultCategories {
			if lowered == category {
				return true
			}
		}
	}
	return false
}
