package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/pushlog/pushlog/internal/service"
)

type Server struct {
	mx                 *chi.Mux
	userService        service.UserServiceI
	entriesService     service.EntriesServiceI
	progressService    service.ProgressServiceI
	leaderboardService service.LeaderboardServiceI
	jwtService         JWTServiceI
}

type ServicesList struct {
	UserService        service.UserServiceI
	EntriesService     service.EntriesServiceI
	ProgressService    service.ProgressServiceI
	LeaderboardService service.LeaderboardServiceI
	JwtService         JWTServiceI
}

func New(servicesOptions *ServicesList) *Server {
	return &Server{
		mx:                 chi.NewMux(),
		userService:        servicesOptions.UserService,
		entriesService:     servicesOptions.EntriesService,
		progressService:    servicesOptions.ProgressService,
		leaderboardService: servicesOptions.LeaderboardService,
		jwtService:         servicesOptions.JwtService,
	}
}

func (s *Server) mountRoutes() {
	s.mx.Use(s.RequestIDMiddleware, s.SettingUpLoggerMiddleware)
	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/register", s.Register)
		r.Post("/auth/login", s.Login)
		r.Group(func(r chi.Router) {
			r.Use(s.AuthMiddleware, s.LoggerExtensionMiddleware)
			r.Post("/entries", s.LogEntry)
			r.Get("/entries", s.ListEntries)
			r.Delete("/entries/{id}", s.DeleteEntry)
			r.Get("/progress", s.GetProgress)
			r.Get("/achievements", s.GetAchievements)
			r.Get("/leaderboard", s.GetLeaderboard)
			r.Put("/settings", s.UpdateSettings)
			r.Delete("/account", s.DeleteAccount)
		})
	})
}

func (s *Server) Run(address string) error {
	s.mountRoutes()
	return http.ListenAndServe(address, s.mx)
}
