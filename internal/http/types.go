package http

import (
	"net/http"

	"github.com/mauv0809/tennis-directory/internal/config"
	"github.com/mauv0809/tennis-directory/internal/metrics"
	"github.com/mauv0809/tennis-directory/internal/player"
)

type Server struct {
	Directory      *player.Directory
	Metrics        metrics.Metrics
	MetricsHandler http.Handler
	Cfg            config.Config
	Forwarder      http.Handler
	Router         *http.ServeMux
}
