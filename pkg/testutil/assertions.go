package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arthur-debert/npaths/pkg/types"
)

// Strings renders each path with String
func Strings(ps []types.Path) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.String()
	}
	return out
}

// AssertPath checks the rendering of p
func AssertPath(t *testing.T, expected string, p types.Path, msgAndArgs ...interface{}) bool {
	t.Helper()
	if !assert.NotNil(t, p, msgAndArgs...) {
		return false
	}
	return assert.Equal(t, expected, p.String(), msgAndArgs...)
}
