package main

import (
	"os"
	"time"

	"github.com/polsala/Depths-of-the-Fractured-Mind-sub000/internal/api"
	"github.com/polsala/Depths-of-the-Fractured-Mind-sub000/internal/constants"
	"github.com/polsala/Depths-of-the-Fractured-Mind-sub000/internal/engine"
	"github.com/polsala/Depths-of-the-Fractured-Mind-sub000/internal/logging"
	"github.com/polsala/Depths-of-the-Fractured-Mind-sub000/internal/service"
	"github.com/polsala/Depths-of-the-Fractured-Mind-sub000/internal/storage"
	"github.com/polsala/Depths-of-the-Fractured-Mind-sub000/internal/stream"

	"github.com/gin-gonic/gin"
)

func main() {
	checkEnvVars([]string{constants.EnvSessionSecret, constants.EnvGoogleClientID, constants.EnvGoogleClientSecret})

	// Configuration path may be provided via FRACTURED_CONFIG or defaults
	// to ./fractured_config.json in the current working directory. A
	// missing file runs on defaults.
	configPath := os.Getenv(constants.EnvConfigPath)
	if configPath == "" {
		configPath = "./fractured_config.json"
	}
	cfg := loadConfigOrExit(configPath)
	logging.SetLevel(cfg.LogLevel)

	// FRACTURED_DB overrides the configured database path.
	dbPath := os.Getenv(constants.EnvDBPath)
	if dbPath == "" {
		dbPath = cfg.DatabasePath
	}
	repo := createRepositoryOrExit(dbPath)

	manager := service.NewManager()
	if cfg.BossDialogueOncePerProcess {
		manager.Dialogue = engine.SharedDialogueMemory()
	}
	hub := stream.NewHub()
	manager.Notifier = hub

	startSessionReaper(manager, repo, cfg.RunIdleTTL)

	handler := api.NewRunHandler(manager, repo)
	authHandler := api.NewAuthHandler(repo)

	router := gin.Default()

	apiRoutes := router.Group(constants.RouteAPIPrefix)
	{
		// Public endpoints
		apiRoutes.GET(constants.RouteArchetypes, handler.ListArchetypes)
		apiRoutes.GET(constants.RouteLeaderboard, handler.Leaderboard)
		apiRoutes.GET(constants.RouteVersion, api.Version)

		// Authenticated endpoints
		protected := apiRoutes.Group("")
		protected.Use(api.AuthRequired())

		protected.GET(constants.RoutePlayerStats, handler.PlayerStats)
		protected.POST(constants.RouteRuns, handler.CreateRun)
		protected.GET(constants.RouteRunByID, handler.GetRun)
		protected.POST(constants.RouteRunDescend, handler.Descend)
		protected.POST(constants.RouteRunEncounter, handler.StartEncounter)
		protected.POST(constants.RouteRunAction, handler.SubmitAction)
		protected.POST(constants.RouteRunAbandon, handler.Abandon)
		protected.GET(constants.RouteRunStream, handler.StreamRun(hub))
	}

	router.POST(constants.RouteAuthGoogleCallBack, authHandler.GoogleOAuthCallback)

	addr := cfg.ServerAddress
	logging.Info("Server started", logging.Fields{constants.LogFieldAddr: addr})
	if err := router.Run(addr); err != nil {
		logging.Fatal("Failed to start server", err, nil)
	}
}

func checkEnvVars(vars []string) {
	for _, v := range vars {
		if os.Getenv(v) == "" {
			logging.Fatal("Required environment variable not set", nil, logging.Fields{"var": v})
		}
	}
}

// startSessionReaper abandons idle runs on a fixed cadence so crashed or
// forgotten clients do not hold sessions forever.
func startSessionReaper(manager *service.Manager, repo storage.Repository, idleTTL time.Duration) {
	go func() {
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()
		for range ticker.C {
			if n := service.ExpireIdle(manager, repo, idleTTL); n > 0 {
				logging.Info("idle runs abandoned", logging.Fields{"count": n})
			}
		}
	}()
}
