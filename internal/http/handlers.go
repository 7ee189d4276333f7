package http

import (
	"fmt"
	"net/http"

	"github.com/charmbracelet/log"
)

const indexPage = `<html>
<head><title>BNR Exchange Rates Exporter</title></head>
<body>
<h1>BNR Exchange Rates Exporter</h1>
<p><a href="/metrics">Metrics</a></p>
</body>
</html>
`

func (s *Server) HealthCheckHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Debug("Received health check request")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK!")
	}
}

func (s *Server) IndexHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, indexPage)
	}
}
