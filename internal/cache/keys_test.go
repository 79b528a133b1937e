package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateCacheKey(t *testing.T) {
	assert.Equal(t, "eduquest:docs:extract:abc123",
		GenerateCacheKey("docs", "extract", "abc123"))

	assert.Equal(t, "eduquest:docs:extract:abc123:p1_p2",
		GenerateCacheKey("docs", "extract", "abc123", "p1", "p2"))
}

func TestExtractionKey(t *testing.T) {
	assert.Equal(t, "eduquest:docs:extract:deadbeef", ExtractionKey("deadbeef"))
}
