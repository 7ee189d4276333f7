package http

import (
	"net/http"
)

func NewServer(metricsHandler http.Handler) *Server {
	server := &Server{
		MetricsHandler: metricsHandler,
		Router:         http.NewServeMux(),
	}

	server.routes()
	return server
}

func (s *Server) routes() {
	// /metrics is left unwrapped so scrapes are not logged at info level.
	s.Router.Handle("/metrics", s.MetricsHandler)
	s.Router.Handle("/health", Chain(s.HealthCheckHandler(), requestLogMiddleware))
	s.Router.Handle("/", Chain(s.IndexHandler(), requestLogMiddleware))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}
