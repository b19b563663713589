// Package devproxy adapts plain HTTP requests into API Gateway proxy
// events so the Lambda router can be exercised behind a local server.
//
// Production requests carry claims attached by the API Gateway
// authorizer after it has verified the token. There is no authorizer
// locally, so the proxy decodes the bearer JWT without verifying its
// signature and injects the claims the same way the authorizer would.
// This is a development harness only and must never front real traffic.
package devproxy

import (
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// HandlerFunc is the Lambda entrypoint signature the proxy forwards to.
type HandlerFunc func(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error)

// Proxy serves the config API over plain HTTP for local development.
type Proxy struct {
	handle HandlerFunc
	logger zerolog.Logger
}

// New creates a Proxy forwarding to the given Lambda handler.
func New(handle HandlerFunc, logger zerolog.Logger) *Proxy {
	return &Proxy{
		handle: handle,
		logger: logger,
	}
}

// Routes mounts the API's route table on a chi router. Unmatched paths
// are still forwarded so the Lambda router produces its own 404
// envelope, identical to production.
func (p *Proxy) Routes() *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/config", p.forward)
	r.Post("/admin/config", p.forward)
	r.Put("/admin/config/{key}", p.forward)
	r.Delete("/admin/config/{key}", p.forward)
	r.NotFound(p.forward)

	return r
}

func (p *Proxy) forward(w http.ResponseWriter, r *http.Request) {
	event, err := buildEvent(r)
	if err != nil {
		p.logger.Error().Err(err).Msg("failed to build proxy event")
		http.Error(w, http.StatusText(http.StatusBadGateway), http.StatusBadGateway)
		return
	}

	resp, err := p.handle(r.Context(), event)
	if err != nil {
		p.logger.Error().Err(err).Msg("lambda handler returned an error")
		http.Error(w, http.StatusText(http.StatusBadGateway), http.StatusBadGateway)
		return
	}

	for k, v := range resp.Headers {
		w.Header().Set(k, v)
	}
	w.WriteHeader(resp.StatusCode)
	if resp.Body != "" {
		io.WriteString(w, resp.Body)
	}
}

// buildEvent translates the HTTP request into the proxy event shape the
// router expects: first query value wins, the chi {key} URL parameter
// becomes the path parameter, and a fresh request ID is synthesized.
func buildEvent(r *http.Request) (events.APIGatewayProxyRequest, error) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return events.APIGatewayProxyRequest{}, err
	}

	query := map[string]string{}
	for k, values := range r.URL.Query() {
		if len(values) > 0 {
			query[k] = values[0]
		}
	}

	pathParams := map[string]string{}
	if key := chi.URLParamFromCtx(r.Context(), "key"); key != "" {
		pathParams["key"] = key
	}

	event := events.APIGatewayProxyRequest{
		HTTPMethod:            r.Method,
		Path:                  r.URL.Path,
		QueryStringParameters: query,
		PathParameters:        pathParams,
		Body:                  string(body),
		RequestContext: events.APIGatewayProxyRequestContext{
			RequestID: uuid.NewString(),
		},
	}

	if claims := claimsFromAuthHeader(r.Header.Get("Authorization")); claims != nil {
		event.RequestContext.Authorizer = map[string]any{"claims": claims}
	}

	return event, nil
}

// claimsFromAuthHeader decodes the bearer token's claims without
// signature verification. Malformed headers and tokens yield nil, which
// downstream treats the same as an anonymous caller.
func claimsFromAuthHeader(header string) map[string]any {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return nil
	}
	raw := strings.TrimSpace(strings.TrimPrefix(header, prefix))
	if raw == "" {
		return nil
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
		return nil
	}
	return map[string]any(claims)
}
