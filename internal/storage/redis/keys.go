package redis

import "fmt"

// Key prefix for all scorekeeper data
const keyPrefix = "pbscore"

// redisKey maps a port key into the configured namespace
func redisKey(namespace, key string) string {
	return fmt.Sprintf("%s:%s:%s", keyPrefix, namespace, key)
}
