package api

import (
	"errors"
	"net/http"

	"github.com/sartorproj/tabstat"
	"github.com/sartorproj/tabstat/dataset"
)

// ErrorBody is the JSON body of a failed request.
type ErrorBody struct {
	Kind  string `json:"kind"`
	Error string `json:"error"`
}

// StatusOf maps an analysis error to an HTTP status code. Bad selections
// and parameters are client errors; data that cannot be analyzed is
// unprocessable.
func StatusOf(err error) int {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, dataset.ErrUnsupportedEncoding):
		return http.StatusUnsupportedMediaType
	case errors.Is(err, tabstat.ErrInvalidSelection),
		errors.Is(err, tabstat.ErrInvalidParameter):
		return http.StatusBadRequest
	case errors.Is(err, tabstat.ErrEmptySeries),
		errors.Is(err, tabstat.ErrDivisionByZero),
		errors.Is(err, tabstat.ErrInsufficientData),
		errors.Is(err, tabstat.ErrUndefined):
		return http.StatusUnprocessableEntity
	}
	return http.StatusBadRequest
}

func kindOf(err error) string {
	for _, kind := range []error{
		tabstat.ErrInvalidSelection,
		tabstat.ErrInvalidParameter,
		tabstat.ErrEmptySeries,
		tabstat.ErrDivisionByZero,
		tabstat.ErrInsufficientData,
		tabstat.ErrUndefined,
		dataset.ErrUnsupportedEncoding,
	} {
		if errors.Is(err, kind) {
			return kind.Error()
		}
	}
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return "request too large"
	}
	return "bad request"
}

func errorResponse(err error) ImplResponse {
	return Response(StatusOf(err), ErrorBody{Kind: kindOf(err), Error: err.Error()})
}
