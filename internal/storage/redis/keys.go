package redis

import "fmt"

// Key prefix for all puzzle data
const keyPrefix = "drophunt"

// kvKey returns the Redis key holding the value for a logical key
func kvKey(key string) string {
	return fmt.Sprintf("%s:kv:%s", keyPrefix, key)
}
