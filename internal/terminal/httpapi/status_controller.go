package httpapi

import (
	"net/http"

	"biometric-terminal/internal/infra/httpserver"
	"biometric-terminal/internal/terminal/httpapi/internal"
	"biometric-terminal/internal/terminal/usecases"
)

type StatusSource interface {
	Snapshot() usecases.StatusSnapshot
}

func NewStatusController(source StatusSource) *StatusController {
	return &StatusController{
		source,
	}
}

var _ httpserver.Controller = &StatusController{}

type StatusController struct {
	source StatusSource
}

func (c *StatusController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /v1/status", c.getStatus())
}

func (c *StatusController) getStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snapshot := c.source.Snapshot()
		if snapshot.UpdatedAt.IsZero() {
			httpserver.ReplyWithError(w, http.StatusServiceUnavailable, "terminal is starting")
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.FromSnapshot(snapshot))
	}
}
