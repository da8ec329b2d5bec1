package v1

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/dataelementhub/dehub-registry/internal/api/common"
	"github.com/dataelementhub/dehub-registry/internal/service"
	"github.com/dataelementhub/dehub-registry/internal/validators"
)

// listRelations handles GET /v1/relations
//
// Every "type" query value must be a known relation type. Without any, all
// relations are returned.
//
// @Summary		List element relations
// @Description	List relations between data elements, optionally filtered by relation type
// @Tags		relations
// @Produce		json
// @Param		type	query		[]string	false	"Relation types to include"	collectionFormat(multi)	Enums(equal,equivalent,wider,narrower,inexact)
// @Success		200		{array}		service.ElementRelation
// @Failure		400		{object}	common.ErrorResponse	"Unknown relation type"
// @Failure		500		{object}	common.ErrorResponse
// @Security	BearerAuth
// @Router		/v1/relations [get]
func (rr *Routes) listRelations(w http.ResponseWriter, r *http.Request) {
	types, err := service.ParseRelationTypes(r.URL.Query()["type"])
	if err != nil {
		slog.DebugContext(r.Context(), "Rejecting relation filter",
			"error", err,
			"request_id", middleware.GetReqID(r.Context()))
		common.WriteErrorResponse(w, "unknown type", http.StatusBadRequest)
		return
	}

	relations, err := rr.service.ListRelations(r.Context(), types)
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to list relations",
			"error", err,
			"request_id", middleware.GetReqID(r.Context()))
		common.WriteErrorResponse(w, "failed to list relations", http.StatusInternalServerError)
		return
	}
	if relations == nil {
		relations = []*service.ElementRelation{}
	}

	common.WriteJSONResponse(w, relations, http.StatusOK)
}

// createRelations handles POST /v1/relations
//
// The body is a JSON array of relations, stored all together or not at all.
//
// @Summary		Create element relations
// @Tags		relations
// @Accept		json
// @Param		body	body	[]service.ElementRelation	true	"Relations to create"
// @Success		204		"Created"
// @Failure		400		{object}	common.ErrorResponse	"Invalid body or rejected by the store"
// @Failure		401		{object}	common.ErrorResponse
// @Security	BearerAuth
// @Router		/v1/relations [post]
func (rr *Routes) createRelations(w http.ResponseWriter, r *http.Request) {
	userID, ok := rr.resolveUser(w, r)
	if !ok {
		return
	}

	relations, err := validators.DecodeRelations(r.Body)
	if err != nil {
		common.WriteErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := rr.service.CreateRelations(r.Context(), userID, relations); err != nil {
		rr.writeMutationError(w, r, "create", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// updateRelation handles PUT /v1/relations
//
// @Summary		Update an element relation
// @Description	Replace the relation type between leftUrn and rightUrn
// @Tags		relations
// @Accept		json
// @Param		body	body	service.ElementRelation	true	"Relation to update"
// @Success		204		"Updated"
// @Failure		400		{object}	common.ErrorResponse
// @Failure		401		{object}	common.ErrorResponse
// @Security	BearerAuth
// @Router		/v1/relations [put]
func (rr *Routes) updateRelation(w http.ResponseWriter, r *http.Request) {
	userID, ok := rr.resolveUser(w, r)
	if !ok {
		return
	}

	relation, err := validators.DecodeRelation(r.Body)
	if err != nil {
		common.WriteErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := rr.service.UpdateRelation(r.Context(), userID, relation); err != nil {
		rr.writeMutationError(w, r, "update", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// deleteRelation handles DELETE /v1/relations
//
// The relation to remove is identified by the leftUrn and rightUrn of the body.
//
// @Summary		Delete an element relation
// @Tags		relations
// @Accept		json
// @Param		body	body	service.ElementRelation	true	"Relation to delete, identified by leftUrn and rightUrn"
// @Success		204		"Deleted"
// @Failure		400		{object}	common.ErrorResponse
// @Failure		401		{object}	common.ErrorResponse
// @Security	BearerAuth
// @Router		/v1/relations [delete]
func (rr *Routes) deleteRelation(w http.ResponseWriter, r *http.Request) {
	userID, ok := rr.resolveUser(w, r)
	if !ok {
		return
	}

	relation, err := validators.DecodeRelationKey(r.Body)
	if err != nil {
		common.WriteErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := rr.service.DeleteRelation(r.Context(), userID, relation); err != nil {
		rr.writeMutationError(w, r, "delete", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// writeMutationError answers 401 for a missing user and 400 with the store's
// message for everything else
func (*Routes) writeMutationError(w http.ResponseWriter, r *http.Request, op string, err error) {
	if errors.Is(err, service.ErrUnauthenticated) {
		common.WriteErrorResponse(w, "authentication required", http.StatusUnauthorized)
		return
	}

	slog.WarnContext(r.Context(), "Relation "+op+" rejected",
		"error", err,
		"request_id", middleware.GetReqID(r.Context()))
	common.WriteErrorResponse(w, storeMessage(err), http.StatusBadRequest)
}
