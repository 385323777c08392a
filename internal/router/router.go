package router

import (
	"database/sql"
	"net/http"
	"os"

	"pet-care-platform/internal/adapters/bio/petbio"
	"pet-care-platform/internal/adapters/capabilities/planfeatures"
	ls "pet-care-platform/internal/adapters/storage/localstore"
	mem "pet-care-platform/internal/adapters/storage/memory"
	pg "pet-care-platform/internal/adapters/storage/postgres"
	"pet-care-platform/internal/domain/adoption"
	"pet-care-platform/internal/domain/appointments"
	"pet-care-platform/internal/domain/matching"
	"pet-care-platform/internal/domain/ongs"
	"pet-care-platform/internal/domain/pets"
	"pet-care-platform/internal/domain/users"
	"pet-care-platform/internal/middleware"
	"pet-care-platform/internal/platform/logger"
	"pet-care-platform/internal/ports/auth"
	"pet-care-platform/internal/ports/bio"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

type Options struct {
	AuthVerifier auth.AuthVerifier // puede ser nil (modo dev)
	TokenIssuer  auth.TokenIssuer  // puede ser nil (modo dev: token vacío)

	// Backend de datos, en orden de prioridad:
	// - DB (o DB_DSN por env) => Postgres
	// - DataDir (o DATA_DIR por env) => snapshot local en disco
	// - nada => in-memory
	DB      *sql.DB
	DataDir string

	// Generador de bios. Nil => generador que siempre responde el fallback.
	BioGenerator bio.Generator

	Logger logger.Logger
}

func NewRouter(opts Options) (http.Handler, error) {
	log := opts.Logger
	if log == nil {
		log = logger.NewFromEnv()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.RequestLog(log))

	r.Use(middleware.AuthContext(opts.AuthVerifier))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	var (
		userRepo     users.Repository
		sessionStore users.SessionStore
		petRepo      pets.Repository
		ongRepo      ongs.Repository
		apptRepo     appointments.Repository
		interestRepo adoption.Repository
	)

	// Si no te pasan DB explícita, intenta por env (para dev/handoff)
	db := opts.DB
	if db == nil {
		if dsn := os.Getenv("DB_DSN"); dsn != "" {
			opened, err := pg.Open(dsn)
			if err == nil {
				db = opened
			} else {
				log.Warn("postgres unavailable, falling back", map[string]any{"error": err.Error()})
			}
		}
	}

	dataDir := opts.DataDir
	if dataDir == "" {
		dataDir = os.Getenv("DATA_DIR")
	}

	switch {
	case db != nil:
		userRepo = pg.NewUsersRepo(db)
		petRepo = pg.NewPetsRepo(db)
		ongRepo = pg.NewOngsRepo(db)
		apptRepo = pg.NewAppointmentsRepo(db)
		interestRepo = pg.NewInterestsRepo(db)
		// La sesión es local al proceso, no vive en la DB.
		sessionStore = mem.NewSessionStore()

	case dataDir != "":
		st, err := ls.Open(dataDir, log)
		if err != nil {
			return nil, err
		}
		userRepo = ls.NewUserRepo(st)
		petRepo = ls.NewPetRepo(st)
		ongRepo = ls.NewOngRepo(st)
		apptRepo = ls.NewAppointmentRepo(st)
		interestRepo = ls.NewInterestRepo(st)
		sessionStore = ls.NewSessionStore(st)

	default:
		userRepo = mem.NewUserRepo()
		petRepo = mem.NewPetRepo()
		ongRepo = mem.NewOngRepo()
		apptRepo = mem.NewAppointmentRepo()
		interestRepo = mem.NewInterestRepo()
		sessionStore = mem.NewSessionStore()
	}

	caps := planfeatures.NewResolver(userRepo)

	bioGen := opts.BioGenerator
	if bioGen == nil {
		bioGen = petbio.NewGenerator(nil, log)
	}

	// Services por módulo
	usersSvc := users.NewService(userRepo, sessionStore)
	apptsSvc := appointments.NewService(apptRepo)
	petsSvc := pets.NewService(petRepo, apptsSvc)
	ongsSvc := ongs.NewService(ongRepo)
	adoptionSvc := adoption.NewService(interestRepo)
	matchingSvc := matching.NewService(petRepo, userRepo)

	// Rutas por módulo
	users.RegisterRoutes(r, usersSvc, opts.TokenIssuer)
	pets.RegisterRoutes(r, petsSvc, caps, bioGen)
	ongs.RegisterRoutes(r, ongsSvc)
	appointments.RegisterRoutes(r, apptsSvc)
	adoption.RegisterRoutes(r, adoptionSvc, petsSvc)
	matching.RegisterRoutes(r, matchingSvc, caps)

	return r, nil
}
