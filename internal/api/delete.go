package api

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"github.com/rs/zerolog"

	"github.com/mealhub/remote-config/internal/auth"
	"github.com/mealhub/remote-config/internal/content"
)

// deleteConfig serves DELETE /admin/config/{key}?app=&screen=. Admin
// only. The delete is unconditional, so removing an entry that was never
// written (or was already removed) still returns 204.
func (a *API) deleteConfig(ctx context.Context, req events.APIGatewayProxyRequest) events.APIGatewayProxyResponse {
	if _, err := auth.RequireAdmin(req); err != nil {
		return errorResponse(http.StatusForbidden, "Forbidden: admin role required", codeForbidden)
	}

	key := req.PathParameters["key"]
	app := req.QueryStringParameters["app"]
	screen := req.QueryStringParameters["screen"]
	if key == "" || app == "" || screen == "" {
		return errorResponse(http.StatusBadRequest, "Missing required: key (path), app (query), screen (query)", "")
	}

	if err := content.ValidateKey(key); err != nil {
		return errorResponse(http.StatusBadRequest, err.Error(), "")
	}
	if err := content.ValidateScreen(screen); err != nil {
		return errorResponse(http.StatusBadRequest, err.Error(), "")
	}
	if !content.IsValidApp(app) {
		msg := fmt.Sprintf("App must be one of: %s", strings.Join(content.ValidApps, ", "))
		return errorResponse(http.StatusBadRequest, msg, "")
	}

	if err := a.store.Delete(ctx, app, screen, key); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).
			Str("app", app).
			Str("screen", screen).
			Str("key", key).
			Msg("config delete failed")
		return errorResponse(http.StatusInternalServerError, genericServerError, codeDeleteError)
	}

	return noContent()
}
