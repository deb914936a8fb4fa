// Package uid generates identifiers for trips, days, items and chat messages.
package uid

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// New returns `prefix_<random>_<millis>` where random is hex taken from a
// version 4 UUID and millis is the current unix time in milliseconds, in hex.
func New(prefix string) string {
	if prefix == "" {
		prefix = "id"
	}
	return fmt.Sprintf("%s_%s_%s", prefix, random(), strconv.FormatInt(time.Now().UnixMilli(), 16))
}

// Message returns the identifier used for chat messages: `<createdAt>-<random>`.
func Message(createdAt int64) string {
	return fmt.Sprintf("%d-%s", createdAt, random())
}

func random() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:13]
}
