package redis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildRateLimitKey(t *testing.T) {
	assert.Equal(t, "ratelimit:generate:10.0.0.1", BuildRateLimitKey("10.0.0.1", "generate"))
}
