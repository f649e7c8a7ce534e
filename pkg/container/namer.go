package container

import (
	"strings"

	"github.com/google/uuid"
)

// NamePrefix marks every container name this service generates. Listing
// recognizes managed containers by it.
const NamePrefix = "container"

// generateName builds a fresh runtime name for the given resolved image
// reference. Colons are flattened to hyphens to keep the name valid for
// the daemon; the random token makes concurrent requests collision-free.
func generateName(resolved string) string {
	sanitized := strings.ReplaceAll(resolved, ":", "-")
	return NamePrefix + "-" + sanitized + "-" + uuid.New().String()
}
