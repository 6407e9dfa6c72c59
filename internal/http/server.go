package http

import (
	"net/http"

	"github.com/mauv0809/tennis-directory/internal/config"
	"github.com/mauv0809/tennis-directory/internal/http/handlers"
	"github.com/mauv0809/tennis-directory/internal/metrics"
	"github.com/mauv0809/tennis-directory/internal/player"
)

func NewServer(directory *player.Directory, metricsSvc metrics.Metrics, metricsHandler http.Handler, cfg config.Config, forwarder http.Handler) *Server {
	server := &Server{
		Directory:      directory,
		Metrics:        metricsSvc,
		MetricsHandler: metricsHandler,
		Cfg:            cfg,
		Forwarder:      forwarder,
		Router:         http.NewServeMux(),
	}

	server.routes()
	return server
}

func (s *Server) routes() {
	// All handlers are wrapped with middleware using the Chain helper.
	// e.g. Chain(s.MyHandler(), paramsMiddleware, authMiddleware)
	s.Router.Handle("/metrics", s.MetricsHandler)
	s.Router.Handle("GET /health", Chain(handlers.HealthCheckHandler(), paramsMiddleware))
	s.Router.Handle("GET /players", Chain(handlers.ListPlayersHandler(s.Directory), paramsMiddleware))
	s.Router.Handle("GET /players/{id}", Chain(handlers.GetPlayerHandler(s.Directory), paramsMiddleware))
	s.Router.Handle("GET /settings", Chain(handlers.SettingsHandler(), paramsMiddleware))
	// The forwarder answers every method itself so it can reply 405 with CORS headers.
	s.Router.Handle("/evaluation", Chain(s.Forwarder, paramsMiddleware))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}
