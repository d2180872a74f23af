package httptransport

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/99designs/gqlgen/graphql"
	"github.com/99designs/gqlgen/graphql/handler"
	"github.com/99designs/gqlgen/graphql/handler/extension"
	"github.com/99designs/gqlgen/graphql/handler/lru"
	"github.com/99designs/gqlgen/graphql/handler/transport"
	"github.com/99designs/gqlgen/graphql/playground"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/vektah/gqlparser/v2/ast"

	"eats-backend/internal/config"
	"eats-backend/internal/metrics"
)

const graphqlPath = "/graphql"

// Server wraps the gin engine with graceful shutdown helpers.
type Server struct {
	addr            string
	shutdownTimeout time.Duration
	engine          *gin.Engine
	log             zerolog.Logger
}

// New constructs the HTTP server serving schema at /graphql. Each field
// middleware wraps every resolver call, in the order given.
func New(cfg config.Config, log zerolog.Logger, schema graphql.ExecutableSchema, fieldMiddleware ...graphql.FieldMiddleware) *Server {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	log = log.With().Str("component", "http").Logger()

	engine := gin.New()
	engine.Use(gin.Recovery(), RequestID(), RequestLogger(log), Metrics(), Token())

	gql := newGraphQLHandler(schema, fieldMiddleware)
	engine.POST(graphqlPath, gin.WrapH(gql))
	engine.GET(graphqlPath, gin.WrapH(gql))
	engine.OPTIONS(graphqlPath, gin.WrapH(gql))

	if cfg.HTTP.Playground {
		engine.GET("/", gin.WrapH(playground.Handler("GraphQL playground", graphqlPath)))
	}
	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"service": cfg.ServiceName, "status": "healthy"})
	})
	engine.GET("/metrics", gin.WrapH(metrics.Handler()))

	return &Server{
		addr:            cfg.Addr(),
		shutdownTimeout: cfg.HTTP.ShutdownTimeout,
		engine:          engine,
		log:             log,
	}
}

func newGraphQLHandler(schema graphql.ExecutableSchema, fieldMiddleware []graphql.FieldMiddleware) *handler.Server {
	srv := handler.New(schema)

	srv.AddTransport(transport.Options{})
	srv.AddTransport(transport.GET{})
	srv.AddTransport(transport.POST{})

	srv.SetQueryCache(lru.New[*ast.QueryDocument](1000))

	srv.Use(extension.Introspection{})
	srv.Use(extension.AutomaticPersistedQuery{
		Cache: lru.New[string](100),
	})
	for _, mw := range fieldMiddleware {
		srv.AroundFields(mw)
	}
	return srv
}

// Handler exposes the routed engine, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run starts the HTTP listener and shuts it down gracefully once ctx is done.
func (s *Server) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:              s.addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", s.addr).Msg("HTTP server listening")
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case <-ctx.Done():
		s.log.Info().Msg("context cancelled, shutting down HTTP server")
	case err := <-errCh:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
