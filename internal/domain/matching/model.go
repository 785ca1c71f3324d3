package matching

import (
	"errors"
	"time"
)

var (
	ErrQuestionnaireNotFound = errors.New("questionnaire not found")
)

// FactorContribution registra cuánto aportó un factor al score.
type FactorContribution struct {
	Factor       string
	Contribution float64
}

// Factores del desglose, en orden de evaluación.
const (
	FactorTraitOverlap = "trait_overlap"
	FactorActivity     = "activity_match"
	FactorExperience   = "experience_match"
	FactorTime         = "time_availability"
)

// ScoreBreakdown es el desglose explicable de un candidato.
// Invariante: 0.5 <= Total <= 1.0.
type ScoreBreakdown struct {
	Base    float64
	Factors []FactorContribution
	Total   float64
}

// Recommendation es la fila persistida por usuario.
// Clave lógica (user_id, pet_id); el set completo se reemplaza en cada corrida.
type Recommendation struct {
	UserID     string
	PetID      int64
	MatchScore float64
	CreatedAt  time.Time
}

// Item es la proyección de un candidato rankeado hacia el caller.
type Item struct {
	PetID            int64
	Name             string
	Species          string
	Weight           float64
	AgeYears         int
	MatchScore       float64
	MatchingTraitIDs []int64
	StoreLocation    string
	Breakdown        ScoreBreakdown
}

// Result es la respuesta completa de una corrida de matching.
type Result struct {
	Items     []Item
	Broadened bool
	Message   string
}

// BroadenedMessage acompaña al fallback cuando el filtro estricto quedó vacío.
const BroadenedMessage = "no exact match - here are close alternatives"
