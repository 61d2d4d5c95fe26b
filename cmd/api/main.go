// @title Pushlog API
// @description API for social pushup tracker "Pushlog"
// @BasePath /api/v1
// @schemes http
package main

import (
	"log"

	"github.com/pushlog/pushlog/internal/api"
	"github.com/pushlog/pushlog/internal/repository"
	"github.com/pushlog/pushlog/internal/service"
	"github.com/pushlog/pushlog/pkg/cleanup"
	"github.com/pushlog/pushlog/pkg/config"
	jwtservice "github.com/pushlog/pushlog/pkg/jwt_service"
)

func init() {
	service.InitValidator()
}

func main() {
	cfg := config.New()
	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
	}
	usersRepo := repository.NewUsersRepo(&dbCfg)
	entriesRepo := repository.NewEntriesRepo(&dbCfg)
	progressRepo := repository.NewProgressRepo(&dbCfg)

	userService := service.NewUserService(usersRepo)
	progressService := service.NewProgressService(usersRepo, entriesRepo, progressRepo)
	entriesService := service.NewEntriesService(usersRepo, entriesRepo, progressRepo, progressService)
	leaderboardService := service.NewLeaderboardService(usersRepo, entriesRepo)

	serv := api.New(&api.ServicesList{
		UserService:        userService,
		EntriesService:     entriesService,
		ProgressService:    progressService,
		LeaderboardService: leaderboardService,
		JwtService:         jwtservice.New(cfg.GetString("JWT_SECRET")),
	})
	defer cleanup.CleanUp()
	err := serv.Run(cfg.GetString("API_ADDRESS"))
	if err != nil {
		log.Println("Server error: " + err.Error())
	}
}
