package services

import (
	"context"
	"errors"
	"regexp"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"locallens/internal/models/request_models"
	"locallens/internal/models/response_models"
	"locallens/pkg/utils"
)

type fakePreferences struct {
	prefs *response_models.UserPreferences
	err   error
}

func (f *fakePreferences) SavePreferences(context.Context, string, request_models.SavePreferencesRequest) error {
	return nil
}

func (f *fakePreferences) GetPreferences(context.Context, string) (*response_models.UserPreferences, error) {
	return f.prefs, f.err
}

func (f *fakePreferences) GetPreferencesForPlanning(context.Context, string) (*response_models.UserPreferences, error) {
	return f.prefs, f.err
}

type fakeContent struct {
	stories []response_models.LocalStory
}

func (f *fakeContent) GetStoriesByLocation(context.Context, string) ([]response_models.LocalStory, error) {
	return f.stories, nil
}
func (f *fakeContent) GetStoryByID(context.Context, string) (*response_models.LocalStory, error) {
	return nil, utils.ErrStoryNotFound
}
func (f *fakeContent) GetRecommendationsByLocation(context.Context, string) ([]response_models.LocalRecommendation, error) {
	return nil, nil
}
func (f *fakeContent) CreateStory(context.Context, response_models.LocalStory) error { return nil }
func (f *fakeContent) CreateRecommendation(context.Context, response_models.LocalRecommendation) error {
	return nil
}

type fakePois struct {
	candidates []response_models.CandidatePOI
}

func (f *fakePois) GetPOIById(string, context.Context) (response_models.CandidatePOI, error) {
	return response_models.CandidatePOI{}, utils.ErrPOINotFound
}
func (f *fakePois) GetCandidatesByLocation(context.Context, string, response_models.UserPreferences) ([]response_models.CandidatePOI, error) {
	return f.candidates, nil
}
func (f *fakePois) SearchPois(context.Context, request_models.SearchPoiRequest) ([]response_models.CandidatePOI, error) {
	return nil, nil
}
func (f *fakePois) CreatePoi(context.Context, request_models.CreatePoiRequest) error { return nil }
func (f *fakePois) DeletePoi(uuid.UUID, context.Context) error                       { return nil }
func (f *fakePois) ListPois(context.Context, int, int) ([]response_models.CandidatePOI, error) {
	return nil, nil
}

type fakeItineraryRepo struct {
	mu        sync.Mutex
	replaced  chan struct{}
	saved     *response_models.Itinerary
	stored    *response_models.Itinerary
	saveCalls int
}

func newFakeItineraryRepo() *fakeItineraryRepo {
	return &fakeItineraryRepo{replaced: make(chan struct{}, 1)}
}

func (f *fakeItineraryRepo) ReplaceItinerary(_ context.Context, _ uuid.UUID, itinerary *response_models.Itinerary) error {
	f.mu.Lock()
	f.saved = itinerary
	f.saveCalls++
	f.mu.Unlock()
	select {
	case f.replaced <- struct{}{}:
	default:
	}
	return nil
}

func (f *fakeItineraryRepo) GetLatestByAccountID(context.Context, uuid.UUID) (*response_models.Itinerary, error) {
	return f.stored, nil
}

func (f *fakeItineraryRepo) GetByID(context.Context, string) (*response_models.Itinerary, error) {
	return f.stored, nil
}

func newTestItineraryService(prefs *fakePreferences, pois *fakePois, repo *fakeItineraryRepo) ItineraryServiceInterface {
	return NewItineraryService(
		prefs,
		&fakeContent{stories: []response_models.LocalStory{{ID: "s1", PlaceID: "beach-1"}}},
		pois,
		NewCandidateSelector(),
		NewDayScheduler(&fakeEstimator{travelTimes: []int{15, 20, 25}}),
		repo,
	)
}

func TestGenerateItineraryRequiresPreferences(t *testing.T) {
	repo := newFakeItineraryRepo()
	svc := newTestItineraryService(
		&fakePreferences{err: utils.ErrPreferencesNotSet},
		&fakePois{},
		repo,
	)

	_, err := svc.GenerateItinerary(context.Background(), uuid.NewString(), request_models.GenerateItineraryRequest{Location: "visakhapatnam"})
	if !errors.Is(err, utils.ErrPreferencesNotSet) {
		t.Fatalf("err = %v, want ErrPreferencesNotSet", err)
	}

	select {
	case <-repo.replaced:
		t.Error("nothing should be persisted on precondition failure")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestGenerateItineraryAssemblesAndPersists(t *testing.T) {
	userID := uuid.NewString()
	repo := newFakeItineraryRepo()
	svc := newTestItineraryService(
		&fakePreferences{prefs: &response_models.UserPreferences{
			UserID:                 userID,
			Interests:              []string{"beach"},
			PreferredTransportMode: "auto_rickshaw",
		}},
		&fakePois{candidates: []response_models.CandidatePOI{
			{ID: "beach-1", Name: "RK Beach", Latitude: 17.71, Longitude: 83.32, Rating: ratingp(4.6), Types: []string{"beach"}},
			{ID: "museum-1", Name: "Submarine Museum", Latitude: 17.72, Longitude: 83.33, Rating: ratingp(4.5), Types: []string{"museum"}},
		}},
		repo,
	)

	itinerary, err := svc.GenerateItinerary(context.Background(), userID, request_models.GenerateItineraryRequest{
		Latitude:  17.68,
		Longitude: 83.21,
		Days:      2,
		Location:  "visakhapatnam",
	})
	if err != nil {
		t.Fatalf("GenerateItinerary: %v", err)
	}

	idPattern := regexp.MustCompile(`^` + regexp.QuoteMeta(userID) + `_\d{13}$`)
	if !idPattern.MatchString(itinerary.ID) {
		t.Errorf("ID = %q, want userID_unixMillis", itinerary.ID)
	}
	if !regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`).MatchString(itinerary.Date) {
		t.Errorf("Date = %q, want yyyy-MM-dd", itinerary.Date)
	}
	if itinerary.UserID != userID {
		t.Errorf("UserID = %q", itinerary.UserID)
	}
	if len(itinerary.Days) != 1 {
		t.Fatalf("got %d days, want 1", len(itinerary.Days))
	}
	acts := itinerary.Days[0].Activities
	if len(acts) != 2 {
		t.Fatalf("got %d activities, want 2", len(acts))
	}
	if acts[0].PlaceID != "beach-1" {
		t.Errorf("highest rated candidate should come first, got %s", acts[0].PlaceID)
	}
	if acts[0].LocalStoryID == nil || *acts[0].LocalStoryID != "s1" {
		t.Errorf("LocalStoryID = %v, want s1", acts[0].LocalStoryID)
	}
	if acts[0].HowToReach == nil || acts[0].HowToReach.Mode != "auto_rickshaw" {
		t.Errorf("transport mode should follow preferences, got %+v", acts[0].HowToReach)
	}

	select {
	case <-repo.replaced:
	case <-time.After(2 * time.Second):
		t.Fatal("expected background persistence")
	}
	repo.mu.Lock()
	defer repo.mu.Unlock()
	if repo.saved == nil || repo.saved.ID != itinerary.ID {
		t.Errorf("persisted itinerary mismatch: %+v", repo.saved)
	}
}

func TestGenerateItineraryEmptyCandidates(t *testing.T) {
	userID := uuid.NewString()
	repo := newFakeItineraryRepo()
	svc := newTestItineraryService(
		&fakePreferences{prefs: &response_models.UserPreferences{UserID: userID}},
		&fakePois{},
		repo,
	)

	itinerary, err := svc.GenerateItinerary(context.Background(), userID, request_models.GenerateItineraryRequest{Location: "nowhere"})
	if err != nil {
		t.Fatalf("empty candidates must not fail generation: %v", err)
	}
	if len(itinerary.Days) != 0 {
		t.Errorf("got %d days, want 0", len(itinerary.Days))
	}
}

func TestGenerateItineraryDefaultsToSingleDay(t *testing.T) {
	userID := uuid.NewString()
	repo := newFakeItineraryRepo()
	// The first leg fills the whole day, so the candidate would only be
	// scheduled on a second day. With days omitted there is none.
	svc := NewItineraryService(
		&fakePreferences{prefs: &response_models.UserPreferences{UserID: userID}},
		&fakeContent{},
		&fakePois{candidates: []response_models.CandidatePOI{
			{ID: "far-1", Name: "Araku Valley", Latitude: 18.33, Longitude: 82.87, Types: []string{"tourist_attraction"}},
		}},
		NewCandidateSelector(),
		NewDayScheduler(&fakeEstimator{travelTimes: []int{460, 10}}),
		repo,
	)

	itinerary, err := svc.GenerateItinerary(context.Background(), userID, request_models.GenerateItineraryRequest{Location: "visakhapatnam"})
	if err != nil {
		t.Fatalf("GenerateItinerary: %v", err)
	}
	if len(itinerary.Days) != 0 {
		t.Errorf("omitted days should plan a single day, got %d days", len(itinerary.Days))
	}
}

func TestGetCurrentItinerary(t *testing.T) {
	repo := newFakeItineraryRepo()
	svc := newTestItineraryService(&fakePreferences{}, &fakePois{}, repo)

	if _, err := svc.GetCurrentItinerary(context.Background(), "not-a-uuid"); !errors.Is(err, utils.ErrInvalidInput) {
		t.Errorf("err = %v, want ErrInvalidInput", err)
	}

	if _, err := svc.GetCurrentItinerary(context.Background(), uuid.NewString()); !errors.Is(err, utils.ErrItineraryNotFound) {
		t.Errorf("err = %v, want ErrItineraryNotFound", err)
	}

	repo.stored = &response_models.Itinerary{ID: "x_1"}
	got, err := svc.GetCurrentItinerary(context.Background(), uuid.NewString())
	if err != nil {
		t.Fatalf("GetCurrentItinerary: %v", err)
	}
	if got.ID != "x_1" {
		t.Errorf("ID = %q", got.ID)
	}
}
