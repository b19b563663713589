// Package auth extracts the caller's identity from the pre-verified
// authorizer claims attached to the inbound request. Token verification
// happens upstream (the API Gateway authorizer in production, the dev
// proxy locally); this package only reads what the verifier attached.
package auth

import (
	"errors"

	"github.com/aws/aws-lambda-go/events"
)

// RoleAdmin is the only role with write access to config entries.
const RoleAdmin = "admin"

// ErrForbidden is returned when the caller has no claims at all or lacks
// the required role. The two cases are deliberately indistinguishable.
var ErrForbidden = errors.New("admin role required")

// Principal is the typed identity of an authenticated caller.
type Principal struct {
	Role    string
	Subject string
}

// SubjectOrUnknown returns the subject claim, or "unknown" for callers
// whose token carried no sub. Used to attribute writes.
func (p Principal) SubjectOrUnknown() string {
	if p.Subject == "" {
		return "unknown"
	}
	return p.Subject
}

// FromRequest reads the principal from the request's authorizer claims.
// The second return is false when no claims are present.
func FromRequest(req events.APIGatewayProxyRequest) (Principal, bool) {
	claims, ok := req.RequestContext.Authorizer["claims"].(map[string]any)
	if !ok {
		return Principal{}, false
	}

	var p Principal
	if role, ok := claims["role"].(string); ok {
		p.Role = role
	}
	if sub, ok := claims["sub"].(string); ok {
		p.Subject = sub
	}
	return p, true
}

// RequireAdmin yields the caller's principal when the request carries the
// admin role, and ErrForbidden otherwise.
func RequireAdmin(req events.APIGatewayProxyRequest) (Principal, error) {
	p, ok := FromRequest(req)
	if !ok || p.Role != RoleAdmin {
		return Principal{}, ErrForbidden
	}
	return p, nil
}
