package router

import (
	"database/sql"
	"net/http"

	_ "medtracker/docs"
	mem "medtracker/internal/adapters/storage/memory"
	pg "medtracker/internal/adapters/storage/postgres"
	"medtracker/internal/domain/doselogs"
	"medtracker/internal/domain/medications"
	"medtracker/internal/domain/notes"
	"medtracker/internal/middleware"
	"medtracker/internal/platform/httpx"
	"medtracker/internal/platform/logger"
	"medtracker/internal/ports/druginfo"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	Logger logger.Logger

	// DrugInfo puede ser nil: /medications/{id}/info responde 503.
	DrugInfo druginfo.Lookup
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	r := chi.NewRouter()

	// Antes de registrar rutas, así los subrouters lo heredan
	r.NotFound(httpx.NotFound)
	r.MethodNotAllowed(httpx.MethodNotAllowed)

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Recover(log))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	var (
		medRepo  medications.Repository
		doseRepo doselogs.Repository
		noteRepo notes.Repository
	)
	if opts.DB != nil {
		medRepo = pg.NewMedicationsRepo(opts.DB)
		doseRepo = pg.NewDoseLogsRepo(opts.DB)
		noteRepo = pg.NewNotesRepo(opts.DB)
	} else {
		medRepo = mem.NewMedicationRepo()
		doseRepo = mem.NewDoseLogRepo()
		noteRepo = mem.NewNoteRepo()
	}

	// doselogs y notes validan contra el repo de medicamentos;
	// medications usa doselogs para adherencia y ambos para el borrado en cascada.
	doseSvc := doselogs.NewService(doseRepo, medRepo)
	notesSvc := notes.NewService(noteRepo, medRepo)
	medsSvc := medications.NewService(medRepo, doseSvc, opts.DrugInfo, doseSvc, notesSvc)

	medications.RegisterRoutes(r, medsSvc)
	doselogs.RegisterRoutes(r, doseSvc)
	notes.RegisterRoutes(r, notesSvc)

	return r
}
