package cache

import (
	redisstore "github.com/eko/gocache/store/redis/v4"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
)

var S *redisstore.RedisStore

func NewCache() error {
	client := redis.NewClient(&redis.Options{
		Addr: viper.GetString("cache.addr"),
		DB:   viper.GetInt("cache.db"),
	})
	S = redisstore.NewRedis(client)

	return nil
}
