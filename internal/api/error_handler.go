package api

import (
	"net/http"
	"strings"

	"github.com/sparkskytech/ieltsplan/internal/errors"
	"github.com/sparkskytech/ieltsplan/internal/logger"
)

// jsonRoutes answer errors as JSON regardless of the Accept header.
var jsonRoutes = map[string]bool{
	"/generate-plan": true,
	"/export-text":   true,
	"/export-pdf":    true,
}

// handleError centralizes error handling for HTTP responses
func handleError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromContext(r.Context())

	appErr, ok := errors.As(err)
	if !ok {
		appErr = errors.NewInternalError(err)
	}

	if appErr.Status >= 500 {
		log.Error("server error: %v", appErr)
	} else if appErr.Status >= 400 {
		log.Warn("client error: %v", appErr)
	} else {
		log.Debug("error: %v", appErr)
	}

	if jsonRoutes[r.URL.Path] || strings.Contains(r.Header.Get("Accept"), "application/json") {
		body := map[string]any{
			"success": false,
			"error":   appErr.Message,
			"code":    appErr.Code,
		}
		if appErr.Field != "" && appErr.Code == errors.ErrCodeValidation {
			body["field"] = appErr.Field
		}
		writeJSON(w, r, appErr.Status, body)
		return
	}

	http.Error(w, appErr.Message, appErr.Status)
}
