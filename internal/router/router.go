package router

import (
	"database/sql"
	"net/http"
	"os"

	mem "pet-match-engine/internal/adapters/storage/memory"
	pg "pet-match-engine/internal/adapters/storage/postgres"
	"pet-match-engine/internal/domain/catalog"
	"pet-match-engine/internal/domain/matching"
	"pet-match-engine/internal/domain/questionnaire"
	"pet-match-engine/internal/middleware"
	"pet-match-engine/internal/platform/logger"
	"pet-match-engine/internal/ports/auth"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "pet-match-engine/docs"
)

type Options struct {
	AuthVerifier auth.AuthVerifier // puede ser nil (modo dev)

	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	// Overrides para tests/seed; si un repo viene, gana sobre DB.
	Questionnaires  questionnaire.Repository
	Catalog         catalog.Repository
	Recommendations matching.RecommendationRepository

	Log logger.Logger
}

func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	r.Use(middleware.AuthContext(opts.AuthVerifier))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	log := opts.Log
	if log == nil {
		log = logger.NewFromEnv()
	}

	// Si no te pasan DB explícita, intenta por env (para dev/handoff)
	db := opts.DB
	if db == nil {
		if dsn := os.Getenv("DB_DSN"); dsn != "" {
			opened, err := pg.Open(dsn)
			if err == nil {
				db = opened
			}
		}
	}

	var (
		qRepo   questionnaire.Repository
		catRepo catalog.Repository
		recRepo matching.RecommendationRepository
	)

	if db != nil {
		qRepo = pg.NewQuestionnairesRepo(db)
		catRepo = pg.NewCatalogRepo(db)
		recRepo = pg.NewRecommendationsRepo(db)
	} else {
		qRepo = mem.NewQuestionnaireRepo()
		catRepo = mem.NewCatalogRepo()
		recRepo = mem.NewRecommendationRepo()
	}

	if opts.Questionnaires != nil {
		qRepo = opts.Questionnaires
	}
	if opts.Catalog != nil {
		catRepo = opts.Catalog
	}
	if opts.Recommendations != nil {
		recRepo = opts.Recommendations
	}

	// Services por módulo
	catalogSvc := catalog.NewService(catRepo)
	matchSvc := matching.NewService(qRepo, catalogSvc, recRepo, matching.DefaultConfig(), log)

	// Rutas por módulo
	catalog.RegisterRoutes(r, catalogSvc)
	matching.RegisterRoutes(r, matchSvc)

	return r
}
