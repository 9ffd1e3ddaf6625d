package http

import (
	"errors"
	"net/http"

	"fueldelivery/internal/core/domain/model/agent"
	"fueldelivery/internal/core/domain/model/catalog"
	"fueldelivery/internal/pkg/errs"
)

const (
	kindNotFound          = "NotFound"
	kindForbidden         = "Forbidden"
	kindInvalidTransition = "InvalidTransition"
	kindAgentUnavailable  = "AgentUnavailable"
	kindAgentInUse        = "AgentInUse"
	kindPriceUnavailable  = "PriceUnavailable"
	kindInvalidInput      = "InvalidInput"
	kindUnauthorized      = "Unauthorized"
	kindInternal          = "Internal"
)

const internalMessage = "Something went wrong, please try again"

// problem is the JSON body of every refused request.
type problem struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// classify maps an error onto the service's error taxonomy. Agent errors are
// checked first because they may wrap a stale-version error.
func classify(err error) (string, int) {
	switch {
	case errors.Is(err, agent.ErrAgentUnavailable):
		return kindAgentUnavailable, http.StatusConflict
	case errors.Is(err, agent.ErrAgentInUse):
		return kindAgentInUse, http.StatusConflict
	case errors.Is(err, errs.ErrInvalidTransition):
		return kindInvalidTransition, http.StatusConflict
	case errors.Is(err, errs.ErrObjectNotFound):
		return kindNotFound, http.StatusNotFound
	case errors.Is(err, errs.ErrForbidden):
		return kindForbidden, http.StatusForbidden
	case errors.Is(err, catalog.ErrPriceUnavailable):
		return kindPriceUnavailable, http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return kindInvalidInput, http.StatusBadRequest
	}
	return kindInternal, http.StatusInternalServerError
}

// describe is the message shown to the client. Internal errors are not exposed.
func describe(kind string, err error) string {
	if kind == kindInternal {
		return internalMessage
	}
	return err.Error()
}
