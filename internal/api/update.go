package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"github.com/rs/zerolog"

	"github.com/mealhub/remote-config/internal/auth"
	"github.com/mealhub/remote-config/internal/content"
)

// updateConfig serves PUT /admin/config/{key}?app=&screen=. Admin only.
// Body supplies only {value, type}; the identity arrives split across
// path and query. The write is the same unconditional overwrite as
// create, so updating an identity with no prior entry silently creates
// it. That asymmetry is a documented design choice, not an oversight.
func (a *API) updateConfig(ctx context.Context, req events.APIGatewayProxyRequest) events.APIGatewayProxyResponse {
	principal, err := auth.RequireAdmin(req)
	if err != nil {
		return errorResponse(http.StatusForbidden, "Forbidden: admin role required", codeForbidden)
	}

	key := req.PathParameters["key"]
	app := req.QueryStringParameters["app"]
	screen := req.QueryStringParameters["screen"]
	if key == "" || app == "" || screen == "" {
		return errorResponse(http.StatusBadRequest, "Missing required: key (path), app (query), screen (query)", "")
	}

	if !content.IsValidApp(app) {
		msg := fmt.Sprintf("App must be one of: %s", strings.Join(content.ValidApps, ", "))
		return errorResponse(http.StatusBadRequest, msg, "")
	}

	var raw content.RawPayload
	if req.Body != "" {
		if err := json.Unmarshal([]byte(req.Body), &raw); err != nil {
			return errorResponse(http.StatusBadRequest, "Invalid JSON body", "")
		}
	}

	// Merge the path/query identity into the payload before validation.
	raw.Key = key
	raw.Screen = screen

	payload, err := content.ValidatePayload(raw)
	if err != nil {
		return errorResponse(http.StatusBadRequest, err.Error(), "")
	}

	if err := a.store.Put(ctx, app, payload, principal.SubjectOrUnknown()); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).
			Str("app", app).
			Str("screen", screen).
			Str("key", key).
			Msg("config update failed")
		return errorResponse(http.StatusInternalServerError, genericServerError, codeUpdateError)
	}

	return ok(identity{App: app, Screen: screen, Key: key}, nil)
}
