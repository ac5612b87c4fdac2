package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/edvin/cdhplugin/internal/api/response"
	"github.com/edvin/cdhplugin/internal/core"
	"github.com/edvin/cdhplugin/internal/validation"
)

type Version struct {
	svc *core.ValidationService
}

func NewVersion(svc *core.ValidationService) *Version {
	return &Version{svc: svc}
}

// List godoc
//
//	@Summary		List supported plugin versions
//	@Tags			Versions
//	@Security		ApiKeyAuth
//	@Produce		json
//	@Success		200	{array}	string
//	@Router			/versions [get]
func (h *Version) List(w http.ResponseWriter, r *http.Request) {
	response.WriteJSON(w, http.StatusOK, validation.Versions())
}

// Processes godoc
//
//	@Summary		List node processes per service for a plugin version
//	@Tags			Versions
//	@Security		ApiKeyAuth
//	@Produce		json
//	@Param			version	path		string	true	"Plugin version"
//	@Success		200		{object}	map[string][]string
//	@Failure		404		{object}	response.ErrorResponse
//	@Router			/versions/{version}/processes [get]
func (h *Version) Processes(w http.ResponseWriter, r *http.Request) {
	procs, err := h.svc.NodeProcesses(chi.URLParam(r, "version"))
	if err != nil {
		if errors.Is(err, validation.ErrUnsupportedVersion) {
			response.WriteError(w, http.StatusNotFound, err.Error())
			return
		}
		response.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}
	response.WriteJSON(w, http.StatusOK, procs)
}
