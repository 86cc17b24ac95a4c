package common

const (
	// RedisKeyPredictionCache is the cache key for normalized prediction
	// results: ticker, horizon days, model kind.
	RedisKeyPredictionCache = "prediction:%s:%d:%s"

	// UpstreamDownMarkerKey marks the upstream model service as
	// unreachable in the in-memory cache for the cooldown window.
	UpstreamDownMarkerKey = "upstream:down"
)
