package api

import (
	"context"
	"net/http"
	"regexp"
	"strings"

	"github.com/aws/aws-lambda-go/events"
)

var adminItemPath = regexp.MustCompile(`^/admin/config/[^/]+$`)

// Handle dispatches an API Gateway proxy event to the matching handler.
// It is the function handed to lambda.Start. Exactly one fallback exists
// for unmatched routes (404) and one catch-all for panics escaping a
// handler (500, HANDLER_ERROR). The returned error is always nil: every
// outcome is expressed as a response envelope.
func (a *API) Handle(ctx context.Context, req events.APIGatewayProxyRequest) (resp events.APIGatewayProxyResponse, err error) {
	log := a.logger.With().
		Str("request_id", req.RequestContext.RequestID).
		Str("method", req.HTTPMethod).
		Str("path", req.Path).
		Logger()
	ctx = log.WithContext(ctx)

	defer func() {
		if r := recover(); r != nil {
			log.Error().Any("panic", r).Msg("handler panicked")
			resp = errorResponse(http.StatusInternalServerError, genericServerError, codeHandlerError)
			err = nil
		}
	}()

	switch {
	case req.HTTPMethod == http.MethodGet && req.Path == "/config":
		resp = a.getConfig(ctx, req)
	case req.HTTPMethod == http.MethodPost && req.Path == "/admin/config":
		resp = a.createConfig(ctx, req)
	case req.HTTPMethod == http.MethodPut && adminItemPath.MatchString(req.Path):
		resp = a.updateConfig(ctx, withPathKey(req))
	case req.HTTPMethod == http.MethodDelete && adminItemPath.MatchString(req.Path):
		resp = a.deleteConfig(ctx, withPathKey(req))
	default:
		resp = errorResponse(http.StatusNotFound, "Not Found", codeNotFound)
	}

	log.Info().Int("status", resp.StatusCode).Msg("request completed")
	return resp, nil
}

// withPathKey makes sure the {key} path parameter is populated even when
// the event was not routed through an API Gateway resource with path
// parameters (e.g. a plain proxy+ integration).
func withPathKey(req events.APIGatewayProxyRequest) events.APIGatewayProxyRequest {
	if req.PathParameters["key"] != "" {
		return req
	}

	segments := strings.Split(req.Path, "/")
	key := segments[len(segments)-1]

	params := make(map[string]string, len(req.PathParameters)+1)
	for k, v := range req.PathParameters {
		params[k] = v
	}
	params["key"] = key
	req.PathParameters = params
	return req
}
