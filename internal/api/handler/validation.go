package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5"

	"github.com/edvin/cdhplugin/internal/api/request"
	"github.com/edvin/cdhplugin/internal/api/response"
	"github.com/edvin/cdhplugin/internal/core"
	"github.com/edvin/cdhplugin/internal/model"
)

type Validation struct {
	svc *core.ValidationService
}

func NewValidation(svc *core.ValidationService) *Validation {
	return &Validation{svc: svc}
}

type verdictResponse struct {
	Valid         bool   `json:"valid"`
	RunID         string `json:"run_id"`
	PluginVersion string `json:"plugin_version"`
}

// Cluster godoc
//
//	@Summary		Validate a cluster topology before creation
//	@Tags			Validations
//	@Security		ApiKeyAuth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		request.ValidateCluster	true	"Cluster"
//	@Success		200		{object}	verdictResponse
//	@Failure		400		{object}	response.ErrorResponse
//	@Failure		422		{object}	response.ValidationErrorResponse
//	@Router			/validations/cluster [post]
func (h *Validation) Cluster(w http.ResponseWriter, r *http.Request) {
	var req request.ValidateCluster
	if err := request.Decode(r, &req); err != nil {
		response.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	verdict, err := h.svc.ValidateCluster(r.Context(), req.Cluster.Model())
	writeVerdict(w, verdict, err)
}

// AdditionalScaling godoc
//
//	@Summary		Validate scaling newly added node groups
//	@Tags			Validations
//	@Security		ApiKeyAuth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		request.ValidateScaling	true	"Cluster and target counts"
//	@Success		200		{object}	verdictResponse
//	@Failure		422		{object}	response.ValidationErrorResponse
//	@Router			/validations/scaling/additional [post]
func (h *Validation) AdditionalScaling(w http.ResponseWriter, r *http.Request) {
	h.scaling(w, r, model.OperationAdditionalNGScaling)
}

// ExistingScaling godoc
//
//	@Summary		Validate resizing existing node groups
//	@Tags			Validations
//	@Security		ApiKeyAuth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		request.ValidateScaling	true	"Cluster and target counts"
//	@Success		200		{object}	verdictResponse
//	@Failure		422		{object}	response.ValidationErrorResponse
//	@Router			/validations/scaling/existing [post]
func (h *Validation) ExistingScaling(w http.ResponseWriter, r *http.Request) {
	h.scaling(w, r, model.OperationExistingNGScaling)
}

func (h *Validation) scaling(w http.ResponseWriter, r *http.Request, operation string) {
	var req request.ValidateScaling
	if err := request.Decode(r, &req); err != nil {
		response.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	c := req.Cluster.Model()
	var (
		verdict *core.Verdict
		err     error
	)
	if operation == model.OperationAdditionalNGScaling {
		verdict, err = h.svc.ValidateAdditionalScaling(r.Context(), c, req.NodeGroups)
	} else {
		verdict, err = h.svc.ValidateExistingScaling(r.Context(), c, req.NodeGroups)
	}
	writeVerdict(w, verdict, err)
}

// List godoc
//
//	@Summary		List recorded validation runs
//	@Tags			Validations
//	@Security		ApiKeyAuth
//	@Produce		json
//	@Param			cluster	query		string	false	"Cluster name"
//	@Param			limit	query		int		false	"Page size"
//	@Param			cursor	query		string	false	"Pagination cursor"
//	@Success		200		{object}	response.PaginatedResponse{items=[]model.ValidationRun}
//	@Router			/validations [get]
func (h *Validation) List(w http.ResponseWriter, r *http.Request) {
	pg := request.ParsePagination(r)

	runs, hasMore, err := h.svc.List(r.Context(), r.URL.Query().Get("cluster"), pg.Limit, pg.Cursor)
	if err != nil {
		response.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if runs == nil {
		runs = []model.ValidationRun{}
	}

	var nextCursor string
	if hasMore && len(runs) > 0 {
		nextCursor = runs[len(runs)-1].ID
	}
	response.WritePaginated(w, http.StatusOK, runs, nextCursor, hasMore)
}

// Get godoc
//
//	@Summary		Get a validation run
//	@Tags			Validations
//	@Security		ApiKeyAuth
//	@Produce		json
//	@Param			id	path		string	true	"Run ID"
//	@Success		200	{object}	model.ValidationRun
//	@Failure		404	{object}	response.ErrorResponse
//	@Router			/validations/{id} [get]
func (h *Validation) Get(w http.ResponseWriter, r *http.Request) {
	id, err := request.RequireID(chi.URLParam(r, "id"))
	if err != nil {
		response.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	run, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			response.WriteError(w, http.StatusNotFound, err.Error())
			return
		}
		response.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	response.WriteJSON(w, http.StatusOK, run)
}
