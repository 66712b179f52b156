package devserver

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/dmitrijs2005/starterkit/internal/client/apiclient"
	"github.com/dmitrijs2005/starterkit/internal/common"
	"github.com/dmitrijs2005/starterkit/internal/envgen"
	"github.com/dmitrijs2005/starterkit/internal/logging"
)

const maxBodyBytes = 1 << 20

type handlers struct {
	mock   *apiclient.Mock
	env    EnvReader
	logger logging.Logger
}

// mockEndpoint answers with the mock's payload, or with the mock's error as
// status + {"message": ...}.
func (h *handlers) mockEndpoint(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Request body could not be read.")
		return
	}

	var payload any
	if len(body) > 0 {
		payload = body
	}

	resp, err := h.mock.Handle(r.Method, r.URL.Path, payload)
	if err != nil {
		var apiErr *apiclient.APIError
		if errors.As(err, &apiErr) {
			writeMessage(w, apiErr.Status, apiErr.Message)
			return
		}
		h.logger.Error(r.Context(), "mock handler", "error", err)
		writeMessage(w, http.StatusInternalServerError, "Internal server error.")
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *handlers) envJSON(w http.ResponseWriter, r *http.Request) {
	b, err := envgen.RenderJSON(h.env.Config())
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "Runtime env could not be rendered.")
		return
	}
	w.Header().Set(common.ContentTypeHeaderName, common.JSONContentType)
	_, _ = w.Write(b)
}

func (h *handlers) envJS(w http.ResponseWriter, r *http.Request) {
	b, err := envgen.RenderJS(h.env.Config())
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "Runtime env could not be rendered.")
		return
	}
	w.Header().Set(common.ContentTypeHeaderName, "application/javascript")
	_, _ = w.Write(b)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set(common.ContentTypeHeaderName, common.JSONContentType)
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}
