package plugins

import (
	"strconv"
	"strings"

	"github.com/goliatone/go-bootstrap3/pkg/fields"
)

// classList accumulates CSS class tokens, skipping empties and duplicates.
type classList struct {
	tokens []string
	seen   map[string]struct{}
}

func (c *classList) add(values ...string) {
	if c.seen == nil {
		c.seen = make(map[string]struct{})
	}
	for _, value := range values {
		for _, token := range strings.Fields(value) {
			if _, dup := c.seen[token]; dup {
				continue
			}
			c.seen[token] = struct{}{}
			c.tokens = append(c.tokens, token)
		}
	}
}

func (c *classList) String() string {
	return strings.Join(c.tokens, " ")
}

func parseOptionalInt(values map[string]string, key string) (*int, error) {
	raw := strings.TrimSpace(values[key])
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, &fields.ValidationError{Field: key, Code: fields.CodeInvalid, Message: "enter a whole number"}
	}
	return &n, nil
}
