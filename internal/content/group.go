package content

import "encoding/json"

// DecodeValue returns the presentation form of an entry's value. For JSON
// entries it attempts a decode and reports which branch was taken: decoded
// value with true, or the raw string with false when the stored value is
// not valid JSON (malformed stored JSON degrades to opaque text rather
// than failing the read). Non-JSON entries always pass through verbatim.
func DecodeValue(e Entry) (any, bool) {
	if e.Type != TypeJSON {
		return e.Value, false
	}
	var decoded any
	if err := json.Unmarshal([]byte(e.Value), &decoded); err != nil {
		return e.Value, false
	}
	return decoded, true
}

// GroupByScreen folds a flat entry list into the nested read view,
// screen -> key -> decoded value. Entries missing a screen or key are
// skipped; the write path never produces them, but stored data is not
// trusted blindly. Map iteration order is not significant.
func GroupByScreen(entries []Entry) map[string]map[string]any {
	byScreen := make(map[string]map[string]any)
	for _, e := range entries {
		if e.Screen == "" || e.Key == "" {
			continue
		}
		keys, ok := byScreen[e.Screen]
		if !ok {
			keys = make(map[string]any)
			byScreen[e.Screen] = keys
		}
		value, _ := DecodeValue(e)
		keys[e.Key] = value
	}
	return byScreen
}
