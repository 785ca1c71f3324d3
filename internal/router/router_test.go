package router_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	mem "pet-match-engine/internal/adapters/storage/memory"
	"pet-match-engine/internal/domain/catalog"
	"pet-match-engine/internal/domain/questionnaire"
	"pet-match-engine/internal/router"
)

type recommendationsBody struct {
	Recommendations []struct {
		PetID            int64   `json:"pet_id"`
		Name             string  `json:"name"`
		Species          string  `json:"species"`
		Weight           float64 `json:"weight"`
		AgeYears         int     `json:"age_years"`
		MatchScore       float64 `json:"match_score"`
		MatchingTraitIDs []int64 `json:"matching_trait_ids"`
		StoreLocation    string  `json:"store_location"`
	} `json:"recommendations"`
	Broadened bool   `json:"broadened"`
	Message   string `json:"message"`
}

func TestHTTP_EndToEnd_Recommendations(t *testing.T) {
	catRepo := mem.NewCatalogRepo()
	qRepo := mem.NewQuestionnaireRepo()
	recRepo := mem.NewRecommendationRepo()

	catRepo.SeedTrait(catalog.Trait{ID: 1, Tag: "energetic", Description: "high energy"})
	catRepo.SeedTrait(catalog.Trait{ID: 13, Tag: "outdoorsy", Description: "loves the outdoors"})
	catRepo.SeedTrait(catalog.Trait{ID: 24, Tag: "playful", Description: "playful"})

	bd := func(years int) *time.Time {
		d := time.Now().AddDate(-years, 0, -30)
		return &d
	}
	catRepo.SeedPet(catalog.Pet{ID: 1, Name: "Milo", Species: catalog.SpeciesDog, Gender: "male", Weight: 15, Birthday: bd(4), StoreLocation: "north"}, 1, 13)
	catRepo.SeedPet(catalog.Pet{ID: 3, Name: "Rocky", Species: catalog.SpeciesDog, Gender: "male", Weight: 20, Birthday: bd(5), StoreLocation: "south"}, 24)
	catRepo.SeedPet(catalog.Pet{ID: 9, Name: "Sombra", Species: catalog.SpeciesCat, Gender: "female", Weight: 4, Birthday: bd(10), IsAdopted: true}, 1, 13, 24)

	userID := "user-1"
	qid := qRepo.Put(questionnaire.Questionnaire{
		UserID:            &userID,
		LivingEnvironment: questionnaire.LivingHouse,
		ActivityLevel:     questionnaire.ActivityHigh,
		ExperienceLevel:   questionnaire.ExperienceFull,
		TimeAvailable:     questionnaire.TimePlenty,
		PreferredSize:     questionnaire.SizeMedium,
		PreferredAge:      questionnaire.AgeAdult,
		PreferredTraits:   []int64{1, 13, 24},
		CreatedAt:         time.Now(),
	})

	ts := httptest.NewServer(router.NewRouter(router.Options{
		AuthVerifier:    nil,
		Questionnaires:  qRepo,
		Catalog:         catRepo,
		Recommendations: recRepo,
	}))
	defer ts.Close()

	// 1) Recomendaciones por questionnaire_id
	var body recommendationsBody
	st := getJSON(t, ts.URL+"/recommendations?questionnaire_id="+qid, &body)
	if st != http.StatusOK {
		t.Fatalf("expected 200, got %d", st)
	}
	if body.Broadened {
		t.Fatalf("strict filter matched, should not be broadened")
	}
	if len(body.Recommendations) != 2 {
		t.Fatalf("expected 2 recommendations, got %d", len(body.Recommendations))
	}
	if body.Recommendations[0].PetID != 1 {
		t.Fatalf("expected Milo first, got pet %d", body.Recommendations[0].PetID)
	}
	if body.Recommendations[0].MatchScore != 1.0 {
		t.Fatalf("expected 1.0 for Milo, got %v", body.Recommendations[0].MatchScore)
	}
	for _, rec := range body.Recommendations {
		if rec.PetID == 9 {
			t.Fatalf("adopted pet must never be recommended")
		}
	}

	// 2) Mismo run por user_id (último cuestionario del usuario)
	var byUser recommendationsBody
	if st := getJSON(t, ts.URL+"/recommendations?user_id="+userID, &byUser); st != http.StatusOK {
		t.Fatalf("expected 200 by user, got %d", st)
	}
	if len(byUser.Recommendations) != len(body.Recommendations) {
		t.Fatalf("user run should match questionnaire run")
	}

	// 3) Replace semantics: dos corridas => una fila por (user, pet)
	stored, err := recRepo.ListByUser(context.Background(), userID)
	if err != nil {
		t.Fatalf("ListByUser error: %v", err)
	}
	if len(stored) != 2 {
		t.Fatalf("expected 2 persisted rows after reruns, got %d", len(stored))
	}

	// 4) Sin params cae al usuario autenticado (header de dev)
	{
		req, _ := http.NewRequest(http.MethodGet, ts.URL+"/recommendations", nil)
		req.Header.Set("X-Debug-User-ID", userID)
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			t.Fatalf("GET with debug user: %v", err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("expected 200 via auth claims, got %d", resp.StatusCode)
		}
	}

	// 5) Sin params ni claims => 400
	{
		resp, err := http.Get(ts.URL + "/recommendations")
		if err != nil {
			t.Fatalf("GET without params: %v", err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusBadRequest {
			t.Fatalf("expected 400 without params, got %d", resp.StatusCode)
		}
	}

	// 6) Cuestionario inexistente => 404
	if st := getJSON(t, ts.URL+"/recommendations?questionnaire_id=missing", &recommendationsBody{}); st != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", st)
	}

	// 7) Catálogo de rasgos
	var traits []struct {
		ID  int64  `json:"id"`
		Tag string `json:"tag"`
	}
	if st := getJSON(t, ts.URL+"/traits", &traits); st != http.StatusOK {
		t.Fatalf("expected 200 for traits, got %d", st)
	}
	if len(traits) != 3 || traits[0].ID != 1 {
		t.Fatalf("unexpected trait catalog: %+v", traits)
	}
}

func TestHTTP_BroadenedFallback(t *testing.T) {
	catRepo := mem.NewCatalogRepo()
	qRepo := mem.NewQuestionnaireRepo()

	catRepo.SeedPet(catalog.Pet{ID: 1, Name: "Milo", Species: catalog.SpeciesDog, Weight: 15}, 1)

	qid := qRepo.Put(questionnaire.Questionnaire{
		LivingEnvironment: questionnaire.LivingApartment,
		ActivityLevel:     questionnaire.ActivityLow,
		ExperienceLevel:   questionnaire.ExperienceNone,
		TimeAvailable:     questionnaire.TimeLittle,
		PreferredSize:     questionnaire.SizeLarge, // nadie pesa > 25
		PreferredAge:      questionnaire.AgeAny,
		PreferredTraits:   []int64{1},
		CreatedAt:         time.Now(),
	})

	ts := httptest.NewServer(router.NewRouter(router.Options{
		Questionnaires:  qRepo,
		Catalog:         catRepo,
		Recommendations: mem.NewRecommendationRepo(),
	}))
	defer ts.Close()

	var body recommendationsBody
	if st := getJSON(t, ts.URL+"/recommendations?questionnaire_id="+qid, &body); st != http.StatusOK {
		t.Fatalf("expected 200, got %d", st)
	}
	if !body.Broadened {
		t.Fatalf("expected broadened response")
	}
	if body.Message == "" {
		t.Fatalf("broadened response should carry a message")
	}
	if len(body.Recommendations) == 0 {
		t.Fatalf("fallback must not be empty")
	}
}

func getJSON(t *testing.T, url string, out any) int {
	t.Helper()

	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()

	b, _ := io.ReadAll(resp.Body)
	if resp.StatusCode == http.StatusOK && out != nil {
		if err := json.Unmarshal(b, out); err != nil {
			t.Fatalf("decode %s: %v body=%s", url, err, string(b))
		}
	}
	return resp.StatusCode
}
