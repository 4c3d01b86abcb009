package redis_ser

import "strings"

const (
	Prefix = "blogapi:"
)

func GetRedisKey(key string) string {
	return Prefix + key
}

// BuildKey 以冒号拼接多级key
func BuildKey(parts ...string) string {
	return GetRedisKey(strings.Join(parts, ":"))
}
