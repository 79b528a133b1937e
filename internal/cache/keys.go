package cache

import "strings"

const (
	GlobalKeyPrefix = "eduquest"
)

// GenerateCacheKey generates a cache key for a given service, object type,
// and identifier. If paramsKey are provided, they are joined by "_" and
// appended to the cache key.
func GenerateCacheKey(serviceName, objectType, identifier string, paramsKey ...string) string {
	baseKey := strings.Join([]string{GlobalKeyPrefix, serviceName, objectType, identifier}, ":")
	if len(paramsKey) > 0 {
		return strings.Join([]string{baseKey, strings.Join(paramsKey, "_")}, ":")
	}
	return baseKey
}

// ExtractionKey is the cache key for a cleaned extraction result, keyed
// by the SHA-256 of the uploaded bytes.
func ExtractionKey(contentHash string) string {
	return GenerateCacheKey("docs", "extract", contentHash)
}
