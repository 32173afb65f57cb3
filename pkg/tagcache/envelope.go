package tagcache

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
)

// ErrCorruptPayload indicates the entry's data field could not be
// decoded: the envelope pattern did not match or the extracted payload
// is not valid JSON. Distinct from ErrCacheMiss so callers can tell a
// corrupt entry from an absent one.
var ErrCorruptPayload = errors.New("corrupt cache payload")

// The data field carries a foreign object-serialization envelope. The
// payload lives in a protected property named "content", marked by a
// NUL, a literal '*', another NUL and the property name, followed by a
// length-prefixed string:
//
//	\x00*\x00content";s:<len>:"<payload>";
//
// Only that slice is extracted; the rest of the envelope is ignored.
// The final payload byte is captured separately from the greedy body so
// a trailing escaped character cannot push the match past the closing
// quote into the trailer.
var contentPattern = regexp.MustCompile(`(?s)\x00\*\x00content";s:[0-9]+:"(.*)(.)";`)

// extractContent pulls the raw payload bytes out of the envelope.
func extractContent(data string) (string, error) {
	m := contentPattern.FindStringSubmatch(data)
	if m == nil {
		return "", fmt.Errorf("%w: content marker not found", ErrCorruptPayload)
	}
	return m[1] + m[2], nil
}

// DecodePayload extracts the embedded payload from a serialized
// envelope and decodes it as JSON into a dynamic value.
func DecodePayload(data string) (any, error) {
	content, err := extractContent(data)
	if err != nil {
		return nil, err
	}

	var payload any
	if err := json.Unmarshal([]byte(content), &payload); err != nil {
		return nil, fmt.Errorf("%w: decode content: %v", ErrCorruptPayload, err)
	}
	return payload, nil
}
