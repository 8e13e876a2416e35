package cache

import "strings"

const (
	GlobalKeyPrefix = "mcqquiz"

	ServiceAuth = "auth"
	ServiceQuiz = "quiz"
)

// GenerateCacheKey generates a cache key for a given service, object type, and identifier.
// If paramsKey are provided, they are joined by "_" and appended to the cache key.
func GenerateCacheKey(serviceName, objectType, identifier string, paramsKey ...string) string {
	baseKey := strings.Join([]string{GlobalKeyPrefix, serviceName, objectType, identifier}, ":")
	if len(paramsKey) > 0 {
		return strings.Join([]string{baseKey, strings.Join(paramsKey, "_")}, ":")
	}
	return baseKey
}

// SessionKey is the hash holding a login session.
func SessionKey(sessionID string) string {
	return GenerateCacheKey(ServiceAuth, "session", sessionID)
}

// SubjectLevelsKey caches the distinct (subject, level) listing.
func SubjectLevelsKey() string {
	return GenerateCacheKey(ServiceQuiz, "subject_levels", "all")
}
