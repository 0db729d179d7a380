package feed

import (
	"encoding/base64"
	"fmt"
	"time"
)

// Cursors are opaque forward-only pagination tokens: base64 over an
// RFC3339Nano UTC timestamp, the creation time of the last post a client
// has seen. Clients must not interpret the contents.

// EncodeCursor turns a post creation time into an opaque cursor.
func EncodeCursor(t time.Time) string {
	return base64.StdEncoding.EncodeToString([]byte(t.UTC().Format(time.RFC3339Nano)))
}

// DecodeCursor turns a cursor back into the timestamp boundary it encodes.
// A malformed cursor fails with ErrInvalidCursor — never a silent fallback
// to "now", which would reset the feed origin without the caller being able
// to tell the difference from an honestly empty feed.
func DecodeCursor(cursor string) (time.Time, error) {
	raw, err := base64.StdEncoding.DecodeString(cursor)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: bad encoding", ErrInvalidCursor)
	}
	t, err := time.Parse(time.RFC3339Nano, string(raw))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: bad timestamp", ErrInvalidCursor)
	}
	return t, nil
}
