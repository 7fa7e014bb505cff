package testutil

import (
	"os"
	"testing"
)

// GetEnvOrSkip returns the value of the environment variable, skipping the
// test when it is unset. Cloud-backed tests gate on their credentials this
// way so `go test ./...` stays green without them.
func GetEnvOrSkip(t *testing.T, key string) string {
	t.Helper()
	value := os.Getenv(key)
	if value == "" {
		t.Skipf("%s is not set, skipping", key)
	}
	return value
}
