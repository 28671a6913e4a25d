package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "campus-navigator/docs"
	"campus-navigator/internal/config"
	"campus-navigator/internal/handler"
	"campus-navigator/internal/repository"
	"campus-navigator/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"golang.org/x/sync/errgroup"
)

func main() {
	config, err := config.LoadConfig("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	level, err := zerolog.ParseLevel(config.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Str("log_level", config.LogLevel).Msg("invalid log level")
	}
	zerolog.SetGlobalLevel(level)
	logger := log.Logger

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Seed the campus graph
	source, release, err := repository.OpenSource(ctx, config)
	if err != nil {
		log.Fatal().Err(err).Str("seed_source", config.SeedSource).Msg("cannot open seed source")
	}
	graph, err := service.LoadGraph(ctx, source, logger)
	release()
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load campus graph")
	}

	// Initialize layers
	navigationService := service.NewNavigationService(graph, config.WalkingSpeed, logger)

	locationHandler := handler.NewLocationHandler(navigationService)
	routeHandler := handler.NewRouteHandler(navigationService)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), handler.RequestLogger(logger))

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = config.CORSOrigins
	if len(config.CORSOrigins) == 1 && config.CORSOrigins[0] == "*" {
		corsConfig.AllowOrigins = nil
		corsConfig.AllowAllOrigins = true
	}
	r.Use(cors.New(corsConfig))

	handler.RegisterRoutes(r, locationHandler, routeHandler)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv := &http.Server{
		Addr:    config.ServerAddress,
		Handler: r,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info().Str("addr", config.ServerAddress).Int("locations", graph.Len()).Msg("campus navigator listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
		defer cancel()
		logger.Info().Msg("shutting down")
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
}
