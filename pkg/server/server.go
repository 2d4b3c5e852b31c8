package server

import (
	"net/http"
	"os"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/viadata/crashdb/pkg/config"
	"github.com/viadata/crashdb/pkg/server/middleware"
	"github.com/viadata/crashdb/pkg/server/store"
	gormstore "github.com/viadata/crashdb/pkg/server/store/gorm"
)

type Server struct {
	Router *mux.Router
	DB     *gorm.DB
	Config *config.Config

	CrashesStore  store.CrashesStore
	VehiclesStore store.VehiclesStore
	PeopleStore   store.PeopleStore
	HealthStore   store.HealthStore

	srv *http.Server
}

func NewServer(
	db *gorm.DB,
	cfg *config.Config,
	host string,
	port string,
) *Server {

	router := mux.NewRouter().UseEncodedPath()
	srv := &http.Server{
		Handler: handlers.LoggingHandler(os.Stdout, router),
		Addr:    host + ":" + port,
		// Good practice: enforce timeouts for servers you create!
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
	}

	if cfg.BearerTokenEnabled {
		auth := middleware.NewBearerAuthenticator([]byte(os.Getenv("CRASHDB_TOKEN_SECRET")))
		// Status and health stay reachable for probes
		router.Use(middleware.ExemptPaths(auth.Middleware, "/", "/health"))
	}

	return &Server{
		Router:        router,
		DB:            db,
		Config:        cfg,
		CrashesStore:  gormstore.NewCrashesStore(db),
		VehiclesStore: gormstore.NewVehiclesStore(db),
		PeopleStore:   gormstore.NewPeopleStore(db),
		HealthStore:   gormstore.NewHealthStore(db),
		srv:           srv,
	}
}

func (s *Server) Start() error {
	return s.srv.ListenAndServe()
}
