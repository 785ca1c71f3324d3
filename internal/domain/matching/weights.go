package matching

import "pet-match-engine/internal/domain/questionnaire"

// Weights es la tabla declarativa de pesos del scoring.
// El score es un fold puro sobre esta tabla; ajustar acá, no en los branches.
type Weights struct {
	Base float64

	TraitOverlap float64 // máximo del factor 1

	Activity float64 // factor 2, todo-o-nada

	Experience     float64 // factor 3 para none / experienced
	ExperienceSome float64 // factor 3 para some

	Time         float64 // factor 4 para little / plenty
	TimeModerate float64 // factor 4 para moderate
}

// TraitSets agrupa los sets de trait ids que califican cada condición.
// Son datos de configuración: los ids por defecto vienen del seed original
// del catálogo y no son una suposición estructural.
type TraitSets struct {
	// LowShedding: allow-list para usuarios con alergias (sesgo aditivo).
	LowShedding []int64
	// Gentle: preferidos cuando hay niños en el hogar.
	Gentle []int64

	// Activity: rasgos que califican por nivel de actividad del usuario.
	Activity map[questionnaire.ActivityLevel][]int64

	// Easygoing: rasgos "fáciles" para dueños sin experiencia.
	Easygoing []int64
	// Difficult: rasgos que descartan el crédito parcial de "some" experiencia.
	Difficult []int64

	// LowMaintenance: califica con poco tiempo disponible.
	LowMaintenance []int64
	// Adaptable: califica con tiempo moderado.
	Adaptable []int64
}

// Config reúne la configuración inyectable del motor.
type Config struct {
	Weights Weights
	Traits  TraitSets

	// FallbackCap limita el set ampliado cuando el filtro estricto quedó vacío.
	FallbackCap int
}

// DefaultConfig preserva los pesos y trait ids del seed original.
func DefaultConfig() Config {
	return Config{
		Weights: Weights{
			Base:           0.5,
			TraitOverlap:   0.4,
			Activity:       0.2,
			Experience:     0.2,
			ExperienceSome: 0.15,
			Time:           0.2,
			TimeModerate:   0.15,
		},
		Traits: TraitSets{
			LowShedding: []int64{16, 25, 30},
			Gentle:      []int64{2, 9, 12},
			Activity: map[questionnaire.ActivityLevel][]int64{
				questionnaire.ActivityLow:    {3, 11, 19},
				questionnaire.ActivityMedium: {7, 9, 17},
				questionnaire.ActivityHigh:   {1, 5, 13, 21},
			},
			Easygoing:      []int64{2, 9, 16},
			Difficult:      []int64{6, 14, 22},
			LowMaintenance: []int64{3, 11, 28},
			Adaptable:      []int64{9, 12, 29},
		},
		FallbackCap: 10,
	}
}
