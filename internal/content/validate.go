package content

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strings"
)

// Screens and keys share the same identifier charset. The charset excludes
// '#', which the key encoding relies on as its separator.
var identPattern = regexp.MustCompile(`^[a-z0-9_]+$`)

// RawPayload is the untrusted body shape for create/update requests.
// Value is kept raw so non-string JSON values can be coerced to their
// serialized form before size validation.
type RawPayload struct {
	App    string          `json:"app"`
	Screen string          `json:"screen"`
	Key    string          `json:"key"`
	Value  json.RawMessage `json:"value"`
	Type   string          `json:"type"`
}

// Payload is a validated, normalized create/update payload. Once a
// RawPayload has passed ValidatePayload, business logic only ever sees
// this type.
type Payload struct {
	Screen string
	Key    string
	Value  string
	Type   Type
}

// IsValidApp reports membership in the closed app set.
func IsValidApp(app string) bool {
	return slices.Contains(ValidApps, app)
}

// ValidateApp checks the public read endpoint's app query parameter.
func ValidateApp(app string) error {
	if app == "" {
		return errors.New("Missing required query parameter: app")
	}
	if !IsValidApp(app) {
		return fmt.Errorf("Invalid app. Must be one of: %s", strings.Join(ValidApps, ", "))
	}
	return nil
}

// ValidateKey checks the config key format.
func ValidateKey(key string) error {
	if key == "" {
		return errors.New("Key is required")
	}
	if !identPattern.MatchString(key) {
		return errors.New("Key must match ^[a-z0-9_]+$")
	}
	return nil
}

// ValidateScreen checks the screen identifier format.
func ValidateScreen(screen string) error {
	if screen == "" {
		return errors.New("Screen is required")
	}
	if !identPattern.MatchString(screen) {
		return errors.New("Screen must match ^[a-z0-9_]+$")
	}
	return nil
}

// ValidateValueSize rejects values whose UTF-8 byte length reaches
// MaxValueBytes. The limit is strict: 10239 bytes passes, 10240 fails.
func ValidateValueSize(value string) error {
	if len(value) >= MaxValueBytes {
		return fmt.Errorf("Value exceeds maximum size of %dKB", MaxValueBytes/1024)
	}
	return nil
}

// ValidateType checks the content type tag.
func ValidateType(t string) error {
	if t == "" {
		return errors.New("Type is required")
	}
	switch Type(t) {
	case TypeText, TypeImage, TypeJSON:
		return nil
	}
	return errors.New("Type must be one of: text, image, json")
}

// ValidatePayload validates a create/update body and returns the
// normalized payload. Rules run in fixed order (screen, key, value size,
// type) and the first failure short-circuits.
func ValidatePayload(raw RawPayload) (Payload, error) {
	if err := ValidateScreen(raw.Screen); err != nil {
		return Payload{}, err
	}
	if err := ValidateKey(raw.Key); err != nil {
		return Payload{}, err
	}

	value := coerceValue(raw.Value)
	if err := ValidateValueSize(value); err != nil {
		return Payload{}, err
	}
	if err := ValidateType(raw.Type); err != nil {
		return Payload{}, err
	}

	return Payload{
		Screen: raw.Screen,
		Key:    raw.Key,
		Value:  value,
		Type:   Type(raw.Type),
	}, nil
}

// coerceValue turns the raw JSON value into the stored string form:
// JSON strings become their contents, anything else keeps its serialized
// JSON text, and an absent value becomes the empty string.
func coerceValue(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}
