package v1

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/dataelementhub/dehub-registry/internal/api/common"
	"github.com/dataelementhub/dehub-registry/internal/service"
	"github.com/dataelementhub/dehub-registry/internal/validators"
)

// listSources handles GET /v1/source
//
// An absent or empty "type" query parameter lists every source.
//
// @Summary		List sources
// @Tags		sources
// @Produce		json
// @Param		type	query		string	false	"Source type"	Enums(IMPORT,CADSR,MDR,OTHER)
// @Success		200		{array}		service.Source
// @Failure		400		{object}	common.ErrorResponse	"Unknown source type"
// @Failure		500		{object}	common.ErrorResponse
// @Security	BearerAuth
// @Router		/v1/source [get]
func (rr *Routes) listSources(w http.ResponseWriter, r *http.Request) {
	typeParam := r.URL.Query().Get("type")

	var (
		sources []*service.Source
		err     error
	)
	if typeParam == "" {
		sources, err = rr.service.ListSources(r.Context())
	} else {
		sourceType, parseErr := service.ParseSourceType(typeParam)
		if parseErr != nil {
			common.WriteErrorResponse(w, "unknown type: "+typeParam, http.StatusBadRequest)
			return
		}
		sources, err = rr.service.ListSourcesByType(r.Context(), sourceType)
	}
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to list sources",
			"type", typeParam,
			"error", err,
			"request_id", middleware.GetReqID(r.Context()))
		common.WriteErrorResponse(w, "failed to list sources", http.StatusInternalServerError)
		return
	}
	if sources == nil {
		sources = []*service.Source{}
	}

	common.WriteJSONResponse(w, sources, http.StatusOK)
}

// getSource handles GET /v1/source/{id}
//
// @Summary		Get a source
// @Tags		sources
// @Produce		json
// @Param		id	path		int	true	"Source id"
// @Success		200	{object}	service.Source
// @Failure		400	{object}	common.ErrorResponse	"Invalid id"
// @Failure		404	{object}	common.ErrorResponse	"Source not found"
// @Security	BearerAuth
// @Router		/v1/source/{id} [get]
func (rr *Routes) getSource(w http.ResponseWriter, r *http.Request) {
	id, err := common.GetIDURLParam(r, "id")
	if err != nil {
		common.WriteErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}

	source, err := rr.service.GetSource(r.Context(), id)
	if errors.Is(err, service.ErrSourceNotFound) {
		common.WriteErrorResponse(w, fmt.Sprintf("source %d not found", id), http.StatusNotFound)
		return
	}
	if err != nil {
		slog.WarnContext(r.Context(), "Failed to get source",
			"id", id,
			"error", err,
			"request_id", middleware.GetReqID(r.Context()))
		common.WriteErrorResponse(w, storeMessage(err), http.StatusBadRequest)
		return
	}

	common.WriteJSONResponse(w, source, http.StatusOK)
}

// createSource handles POST /v1/source
//
// On success the response is 201 with an empty body and a Location header
// pointing at the new source.
//
// @Summary		Create a source
// @Tags		sources
// @Accept		json
// @Param		body	body	service.Source	true	"Source to create"
// @Success		201		"Created"
// @Header		201		{string}	Location	"URL of the new source"
// @Failure		400		{object}	common.ErrorResponse	"Invalid body"
// @Failure		409		{object}	common.ErrorResponse	"Violates a source constraint"
// @Security	BearerAuth
// @Router		/v1/source [post]
func (rr *Routes) createSource(w http.ResponseWriter, r *http.Request) {
	source, err := validators.DecodeSource(r.Body)
	if err != nil {
		common.WriteErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}

	id, err := rr.service.CreateSource(r.Context(), source)
	if err != nil {
		status := http.StatusBadRequest
		if service.IsConstraintViolation(err) {
			status = http.StatusConflict
		}
		slog.WarnContext(r.Context(), "Source create rejected",
			"name", source.Name,
			"status", status,
			"error", err,
			"request_id", middleware.GetReqID(r.Context()))
		common.WriteErrorResponse(w, storeMessage(err), status)
		return
	}

	w.Header().Set("Location", common.LocationFor(r, fmt.Sprintf("/v1/source/%d", id)))
	w.WriteHeader(http.StatusCreated)
}
