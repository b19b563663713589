package api

import (
	"context"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/rs/zerolog"

	"github.com/mealhub/remote-config/internal/content"
)

// Downstream caches may hold the read view for five minutes. Advisory
// only; nothing in this service enforces freshness.
var cacheHeaders = map[string]string{"Cache-Control": "public, max-age=300"}

// getConfig serves GET /config?app=. Public, no auth. Returns the
// published entries for the app grouped by screen; an app with no
// published config gets an empty object, not an error.
func (a *API) getConfig(ctx context.Context, req events.APIGatewayProxyRequest) events.APIGatewayProxyResponse {
	app := req.QueryStringParameters["app"]
	if err := content.ValidateApp(app); err != nil {
		return errorResponse(http.StatusBadRequest, err.Error(), "")
	}

	entries, err := a.store.FetchPublished(ctx, app)
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Str("app", app).Msg("config fetch failed")
		return errorResponse(http.StatusInternalServerError, genericServerError, codeFetchError)
	}

	return ok(content.GroupByScreen(entries), cacheHeaders)
}
