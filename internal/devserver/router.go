package devserver

import (
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/starterkit/internal/client/apiclient"
	"github.com/dmitrijs2005/starterkit/internal/client/env"
	"github.com/dmitrijs2005/starterkit/internal/logging"
	"github.com/gorilla/mux"
)

// EnvReader yields the runtime configuration to publish.
type EnvReader interface {
	Config() env.RuntimeConfig
}

func NewRouter(mock *apiclient.Mock, envReader EnvReader, logger logging.Logger) *mux.Router {
	h := &handlers{mock: mock, env: envReader, logger: logger.With("module", "handlers")}

	r := mux.NewRouter()
	r.Use(requestIDMiddleware, loggingMiddleware(logger))

	r.HandleFunc(apiclient.LoginEndpoint, h.mockEndpoint).Methods(http.MethodPost)
	r.HandleFunc(apiclient.RegisterEndpoint, h.mockEndpoint).Methods(http.MethodPost)
	r.HandleFunc(apiclient.HealthEndpoint, h.mockEndpoint).Methods(http.MethodGet)

	r.HandleFunc("/env.json", h.envJSON).Methods(http.MethodGet)
	r.HandleFunc("/env.js", h.envJS).Methods(http.MethodGet)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeMessage(w, http.StatusNotFound, fmt.Sprintf("Endpoint not found: %s %s", r.Method, r.URL.Path))
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeMessage(w, http.StatusMethodNotAllowed, fmt.Sprintf("Method not allowed: %s %s", r.Method, r.URL.Path))
	})

	return r
}
