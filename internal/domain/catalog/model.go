package catalog

import "time"

// Species define las especies soportadas por el catálogo.
// @Enum dog, cat
type Species string

const (
	SpeciesDog Species = "dog"
	SpeciesCat Species = "cat"
)

// Pet es la proyección local del catálogo de adopción.
// Solo candidatos con IsAdopted=false son elegibles para el matching.
type Pet struct {
	ID      int64
	Name    string
	Species Species
	Gender  string
	Weight  float64 // kg

	Birthday *time.Time

	IsAdopted     bool
	StoreLocation string
}

// AgeYears calcula la edad en años cumplidos respecto de now.
// Sin fecha de nacimiento => 0.
func (p Pet) AgeYears(now time.Time) int {
	if p.Birthday == nil {
		return 0
	}
	b := *p.Birthday
	years := now.Year() - b.Year()
	// todavía no cumplió años este año
	anniversary := time.Date(now.Year(), b.Month(), b.Day(), 0, 0, 0, 0, now.Location())
	if now.Before(anniversary) {
		years--
	}
	if years < 0 {
		return 0
	}
	return years
}

// Trait es una entrada del vocabulario de rasgos (referencia estática).
type Trait struct {
	ID          int64
	Tag         string
	Description string
}
