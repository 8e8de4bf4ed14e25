package fields

import (
	"encoding/json"
	"regexp"
	"slices"
	"strings"

	"github.com/goliatone/go-bootstrap3/pkg/attrs"
)

var attributeNamePattern = regexp.MustCompile(`^[A-Za-z_:][A-Za-z0-9_:.\-]*$`)

// ParseAttributes reads "key=value" lines (the attributes widget format) or a
// JSON object into an attribute map. A bare key maps to an empty value.
func ParseAttributes(raw string) (attrs.Attrs, error) {
	trimmed := strings.TrimSpace(raw)
	out := attrs.Attrs{}
	if trimmed == "" {
		return out, nil
	}
	if strings.HasPrefix(trimmed, "{") {
		if err := json.Unmarshal([]byte(trimmed), &out); err != nil {
			return nil, newValidationError("", CodeInvalid, "attributes must be a JSON object of strings")
		}
		return out, nil
	}
	for _, line := range strings.Split(trimmed, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		key, value, _ := strings.Cut(line, "=")
		out[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return out, nil
}

// FormatAttributes returns the stored JSON form of an attribute map.
func FormatAttributes(values attrs.Attrs) string {
	if len(values) == 0 {
		return ""
	}
	payload, err := json.Marshal(map[string]string(values))
	if err != nil {
		return ""
	}
	return string(payload)
}

// ValidateAttributes checks attribute names and rejects excluded keys.
func ValidateAttributes(field string, values attrs.Attrs, excluded []string) ValidationErrors {
	var errs ValidationErrors
	for _, key := range values.Keys() {
		if !attributeNamePattern.MatchString(key) {
			errs = append(errs, newValidationError(field, CodeInvalid, "%q is not a valid attribute name", key))
			continue
		}
		if slices.ContainsFunc(excluded, func(candidate string) bool {
			return strings.EqualFold(candidate, key)
		}) {
			errs = append(errs, newValidationError(field, CodeExcludedKey, "%q is not allowed as an attribute", key))
		}
	}
	return errs
}
