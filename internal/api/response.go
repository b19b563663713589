package api

import (
	"encoding/json"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
)

// Stable machine-readable error codes, per handler.
const (
	codeForbidden    = "FORBIDDEN"
	codeNotFound     = "NOT_FOUND"
	codeHandlerError = "HANDLER_ERROR"
	codeFetchError   = "CONFIG_FETCH_ERROR"
	codeCreateError  = "CONFIG_CREATE_ERROR"
	codeUpdateError  = "CONFIG_UPDATE_ERROR"
	codeDeleteError  = "CONFIG_DELETE_ERROR"
)

// genericServerError is the message returned for store and handler
// failures. Details stay in the logs; callers get the stable code.
const genericServerError = "Internal server error"

type successBody struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

type errorBody struct {
	Success bool      `json:"success"`
	Error   errorInfo `json:"error"`
}

type errorInfo struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

func jsonResponse(status int, body any, headers map[string]string) events.APIGatewayProxyResponse {
	merged := map[string]string{"Content-Type": "application/json"}
	for k, v := range headers {
		merged[k] = v
	}

	encoded, err := json.Marshal(body)
	if err != nil {
		// Only reachable with an unmarshalable payload, which the
		// envelope types rule out.
		encoded = []byte(`{"success":false,"error":{"message":"Internal server error","code":"HANDLER_ERROR"}}`)
		status = http.StatusInternalServerError
	}

	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers:    merged,
		Body:       string(encoded),
	}
}

func ok(data any, headers map[string]string) events.APIGatewayProxyResponse {
	return jsonResponse(http.StatusOK, successBody{Success: true, Data: data}, headers)
}

func created(data any) events.APIGatewayProxyResponse {
	return jsonResponse(http.StatusCreated, successBody{Success: true, Data: data}, nil)
}

func noContent() events.APIGatewayProxyResponse {
	return events.APIGatewayProxyResponse{
		StatusCode: http.StatusNoContent,
		Headers:    map[string]string{"Content-Type": "application/json"},
	}
}

func errorResponse(status int, message, code string) events.APIGatewayProxyResponse {
	return jsonResponse(status, errorBody{Error: errorInfo{Message: message, Code: code}}, nil)
}
