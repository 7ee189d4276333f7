package http

import "net/http"

type Server struct {
	MetricsHandler http.Handler
	Router         *http.ServeMux
}
