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

// createConfig serves POST /admin/config. Admin only.
// Body: {app, screen, key, value, type}.
func (a *API) createConfig(ctx context.Context, req events.APIGatewayProxyRequest) events.APIGatewayProxyResponse {
	principal, err := auth.RequireAdmin(req)
	if err != nil {
		return errorResponse(http.StatusForbidden, "Forbidden: admin role required", codeForbidden)
	}

	if req.Body == "" {
		return errorResponse(http.StatusBadRequest, "Invalid request body", "")
	}
	var raw content.RawPayload
	if err := json.Unmarshal([]byte(req.Body), &raw); err != nil {
		return errorResponse(http.StatusBadRequest, "Invalid JSON body", "")
	}

	payload, err := content.ValidatePayload(raw)
	if err != nil {
		return errorResponse(http.StatusBadRequest, err.Error(), "")
	}

	if !content.IsValidApp(raw.App) {
		msg := fmt.Sprintf("App must be one of: %s", strings.Join(content.ValidApps, ", "))
		return errorResponse(http.StatusBadRequest, msg, "")
	}

	if err := a.store.Put(ctx, raw.App, payload, principal.SubjectOrUnknown()); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).
			Str("app", raw.App).
			Str("screen", payload.Screen).
			Str("key", payload.Key).
			Msg("config create failed")
		return errorResponse(http.StatusInternalServerError, genericServerError, codeCreateError)
	}

	return created(identity{App: raw.App, Screen: payload.Screen, Key: payload.Key})
}
