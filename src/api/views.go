package api

import (
	"net/http"
	handlers "server/src/api/handlers"
	"server/src/config"
	"server/src/utils"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
)

type Server struct {
	Router  *chi.Mux
	Handler *handlers.Handler
	Logger  *logrus.Logger
}

func NewServer(handler *handlers.Handler, logger *logrus.Logger) *Server {
	server := &Server{
		Router:  chi.NewRouter(),
		Handler: handler,
		Logger:  logger,
	}
	server.InitRoutes()
	return server
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}

// withLogger puts the service logger on every request context so services and
// providers log through the configured level and format.
func (s *Server) withLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r.WithContext(utils.WithLogger(r.Context(), s.Logger)))
	})
}

func (s *Server) InitRoutes() {
	s.Router.Use(cors.AllowAll().Handler)
	if s.Logger != nil {
		s.Router.Use(s.withLogger)
	}

	s.Router.Get("/alive", handlers.Healthcheck)

	s.Router.Route("/api/assets", func(r chi.Router) {
		r.Get("/", s.Handler.GetAllAssets)
		r.Get("/{id}", s.Handler.GetAssetByID)
		r.Post("/", s.Handler.CreateAsset)
		r.Patch("/{id}", s.Handler.UpdateAsset)
		r.Delete("/{id}", s.Handler.DeleteAsset)
	})

	s.Router.Route("/api/settings", func(r chi.Router) {
		r.Get("/", s.Handler.GetUserSettings)
		r.Post("/", s.Handler.SaveUserSettings)
		r.Patch("/", s.Handler.UpdateUserSettings)
	})

	s.Router.Route("/api/market-data", func(r chi.Router) {
		r.Post("/price", s.Handler.GetPrices)
		r.Post("/convert", s.Handler.ConvertCurrency)
		r.Get("/export", s.Handler.ExportPortfolio)
	})

	s.Router.Route("/api/ynab", func(r chi.Router) {
		r.Post("/accounts", s.Handler.GetYNABAccounts)
		r.Post("/sync", s.Handler.TriggerYNABSync)
	})
}

func NewHTTPServer(server *Server, cfg *config.Config) *http.Server {
	port := cfg.Service.Port
	if port == "" {
		port = "8000"
	}
	return &http.Server{
		Addr:         ":" + port,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		Handler:      server,
	}
}
