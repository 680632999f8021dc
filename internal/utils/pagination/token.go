package pagination

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"
)

const dateFormat = time.RFC3339Nano

// EncodeEntryToken creates a base64 encoded cursor from the occurrence
// date and identifier of the last entry on a page. Keyset pagination over
// (occurred_on, entry_id) needs both fields because many entries can
// share a date.
func EncodeEntryToken(occurredOn time.Time, entryID string) string {
	tokenStr := fmt.Sprintf("%s|%s", occurredOn.Format(dateFormat), entryID)
	return base64.StdEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeEntryToken parses the base64 encoded cursor back into the
// occurrence date and entry identifier.
func DecodeEntryToken(token string) (time.Time, string, error) {
	decodedBytes, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return time.Time{}, "", fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}
	tokenStr := string(decodedBytes)
	parts := strings.SplitN(tokenStr, "|", 2)
	if len(parts) != 2 {
		return time.Time{}, "", fmt.Errorf("invalid pagination token format (split)")
	}

	occurredOn, err := time.Parse(dateFormat, parts[0])
	if err != nil {
		return time.Time{}, "", fmt.Errorf("invalid pagination token format (date parse): %w", err)
	}
	if parts[1] == "" {
		return time.Time{}, "", fmt.Errorf("invalid pagination token format (empty entry id)")
	}

	return occurredOn, parts[1], nil
}
