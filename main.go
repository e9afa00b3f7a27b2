package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sportLink/api"
	"sportLink/clients/gcp"
	"sportLink/envvars"
	"sportLink/services/activity"
	"sportLink/services/favorites"
	"sportLink/services/location"
	"sportLink/services/user"
	"sportLink/validator"

	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	ginmiddleware "github.com/oapi-codegen/gin-middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
)

const requestIDHeader = "X-Request-ID"

func main() {
	env := envvars.GetEnv()
	setupLogging(env)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	firestore, err := gcp.CreateFirestore(ctx, env.ProjectID)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create firestore client")
	}
	defer firestore.Close()

	catalog, err := location.Load(ctx, env.CatalogPath, env.CatalogBucket, env.CatalogObject)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load infrastructure catalog")
	}
	log.Info().Int("infrastructures", catalog.Size()).Msg("Infrastructure catalog loaded")

	activityService := activity.NewService(firestore)
	registry, err := favorites.NewRegistry(activityService, env.FavoritesCacheSize)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create favorites registry")
	}
	defer registry.Close()

	server := NewServer(activityService, user.NewUserService(firestore), registry, catalog)
	verifier := validator.NewVerifier(validator.FirebaseKeys(ctx), env.FirebaseProjectID)

	// Load OpenAPI spec file
	swagger, err := api.GetSwagger()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load swagger spec")
	}
	// Clear out the servers array in the swagger spec, that skips validating
	// that server names match. We don't know how this thing will be run.
	swagger.Servers = nil

	if envvars.IsProd(env) {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger())
	r.Use(cors.Default())

	r.GET("/openapi", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/x-yaml", api.OpenAPIDocument())
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.Use(ginmiddleware.OapiRequestValidatorWithOptions(swagger, &ginmiddleware.Options{
		ErrorHandler: api.ValidationErrorHandler,
		Options: openapi3filter.Options{
			AuthenticationFunc: verifier.Authenticate,
		},
	}))
	api.RegisterHandlersWithOptions(r, server, api.GinServerOptions{ErrorHandler: api.ParamErrorHandler})

	var handler http.Handler = r
	if env.EnableH2C {
		handler = h2c.NewHandler(r, &http2.Server{})
	}
	s := &http.Server{
		Handler:           handler,
		Addr:              "0.0.0.0:" + env.Port,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("port", env.Port).Bool("h2c", env.EnableH2C).Msg("Starting HTTP server")
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server stopped")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

func setupLogging(env envvars.Env) {
	level, err := zerolog.ParseLevel(env.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	if envvars.IsDev(env) {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}
	zerolog.DefaultContextLogger = &log.Logger
}

// requestLogger tags every request with an id and a logger carrying it.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Header(requestIDHeader, id)

		logger := log.With().Str("requestId", id).Logger()
		c.Request = c.Request.WithContext(logger.WithContext(c.Request.Context()))

		start := time.Now()
		c.Next()
		logger.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Msg("request")
	}
}
