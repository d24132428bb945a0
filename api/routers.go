package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/sartorproj/tabstat/logger"
)

// A Route defines the parameters for an api endpoint.
type Route struct {
	Name        string
	Method      string
	Pattern     string
	HandlerFunc http.HandlerFunc
}

// Routes is a list of defined api endpoints.
type Routes []Route

// NewRouter creates a new router for the given routes.
func NewRouter(log logger.Logger, routes Routes) *mux.Router {
	router := mux.NewRouter().StrictSlash(true)
	for _, route := range routes {
		router.
			Methods(route.Method).
			Path(route.Pattern).
			Name(route.Name).
			Handler(Logger(log, route.HandlerFunc, route.Name))
	}
	return router
}

// Logger logs every request handled by inner.
func Logger(log logger.Logger, inner http.Handler, name string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		inner.ServeHTTP(w, r)
		log.Infof("%s %s %s %s", r.Method, r.RequestURI, name, time.Since(start))
	})
}

// ImplResponse is the status code and body of a response.
type ImplResponse struct {
	Code int
	Body interface{}
}

// Response returns an ImplResponse.
func Response(code int, body interface{}) ImplResponse {
	return ImplResponse{Code: code, Body: body}
}

// EncodeJSONResponse writes body as JSON with the given status code.
func EncodeJSONResponse(body interface{}, status int, w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json; charset=UTF-8")
	w.WriteHeader(status)
	if body == nil {
		return nil
	}
	return json.NewEncoder(w).Encode(body)
}
