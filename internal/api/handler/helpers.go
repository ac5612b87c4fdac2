package handler

import (
	"errors"
	"net/http"

	"github.com/edvin/cdhplugin/internal/api/response"
	"github.com/edvin/cdhplugin/internal/core"
	"github.com/edvin/cdhplugin/internal/model"
	"github.com/edvin/cdhplugin/internal/validation"
)

// writeVerdict maps a validation outcome to a response: 200 when the topology
// passed, 422 with the typed violation otherwise. Input errors from the
// request itself map to 400.
func writeVerdict(w http.ResponseWriter, verdict *core.Verdict, err error) {
	if err != nil {
		if errors.Is(err, validation.ErrUnsupportedVersion) || errors.Is(err, model.ErrInvalidConfig) {
			response.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		response.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if verdict.Violation != nil {
		response.WriteValidationError(w, verdict.Run.ID, verdict.Violation)
		return
	}
	response.WriteJSON(w, http.StatusOK, verdictResponse{
		Valid:         true,
		RunID:         verdict.Run.ID,
		PluginVersion: verdict.Run.PluginVersion,
	})
}
