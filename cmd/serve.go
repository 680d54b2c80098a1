package cmd

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/ikormushev/manjabook/configs"
	"github.com/ikormushev/manjabook/pkg/auth"
	"github.com/ikormushev/manjabook/pkg/repository"
	"github.com/ikormushev/manjabook/pkg/server"
)

const timeout = 5 * time.Second

type ServeCmd struct {
	ConfigFile string `default:".ManjaBook.toml" help:"Path to config file" short:"c"`
}

func (s *ServeCmd) Run(cliCtx *Context) error {
	logConfig := zap.NewProductionConfig()

	logger, _ := logConfig.Build()
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	conf, err := configs.GetConfig(s.ConfigFile, logger)
	if err != nil {
		logger.Error("error loading config", zap.Error(err))

		return err
	}

	repo, err := repository.Open(conf, logger)
	if err != nil {
		logger.Error("error connecting to database", zap.Error(err))

		return err
	}
	defer repo.Close()

	authManager := auth.NewAuthManager(conf, repo, logger)

	if !cliCtx.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(ginLogger(logger), gin.Recovery())

	api := engine.Group("/api")
	server.NewUserServer(repo, authManager, logger).RegisterRoutes(api)
	server.NewProductServer(repo, authManager, logger, conf).RegisterRoutes(api)
	server.NewUnitServer(repo, authManager, logger).RegisterRoutes(api)
	server.NewRecipeServer(repo, authManager, logger).RegisterRoutes(api)
	server.NewCollectionServer(repo, authManager, logger).RegisterRoutes(api)

	address := fmt.Sprintf(":%d", conf.Server.Port)

	svr := &http.Server{
		Addr:              address,
		ReadHeaderTimeout: timeout,
		Handler:           configureCORS(engine, conf),
	}

	logger.Info("starting server", zap.String("address", address))

	err = svr.ListenAndServe()
	if err != nil {
		logger.Error("failed to start server", zap.Error(err))

		return err
	}

	return nil
}

func configureCORS(handler http.Handler, conf *configs.Config) http.Handler {
	corsOpts := cors.New(cors.Options{
		AllowedOrigins:   conf.Server.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "HEAD", "PATCH"},
		AllowedHeaders: []string{
			"accept",
			"accept-encoding",
			"accept-language",
			"cache-control",
			"content-length",
			"content-type",
			"cookie",
			"date",
			"keep-alive",
			"origin",
			"referer",
			"user-agent",
		},
		MaxAge: 86400, // 24 hours
	})

	return corsOpts.Handler(handler)
}

func ginLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(ginCtx *gin.Context) {
		start := time.Now()

		ginCtx.Next()

		logger.Info("request",
			zap.String("method", ginCtx.Request.Method),
			zap.String("path", ginCtx.Request.URL.Path),
			zap.Int("status", ginCtx.Writer.Status()),
			zap.Duration("duration", time.Since(start)))
	}
}
