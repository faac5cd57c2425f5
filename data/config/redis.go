package config

import (
	"time"

	"github.com/spf13/viper"
)

// Redis redis config struct
type Redis struct {
	Addr         string        `json:"addr" yaml:"addr"`
	Username     string        `json:"username" yaml:"username"`
	Password     string        `json:"password" yaml:"password"`
	Db           int           `json:"db" yaml:"db"`
	ReadTimeout  time.Duration `json:"read_timeout" yaml:"read_timeout"`
	WriteTimeout time.Duration `json:"write_timeout" yaml:"write_timeout"`
	DialTimeout  time.Duration `json:"dial_timeout" yaml:"dial_timeout"`
	TTL          time.Duration `json:"ttl" yaml:"ttl"`
	Prefix       string        `json:"prefix" yaml:"prefix"`
}

// Enabled reports whether a redis address is configured
func (r *Redis) Enabled() bool {
	return r != nil && r.Addr != ""
}

func getRedisConfigs(v *viper.Viper) *Redis {
	prefix := "microservicio"
	if v.IsSet("data.redis.prefix") {
		prefix = v.GetString("data.redis.prefix")
	}
	ttl := 5 * time.Minute
	if v.IsSet("data.redis.ttl") {
		ttl = v.GetDuration("data.redis.ttl")
	}
	return &Redis{
		Addr:         v.GetString("data.redis.addr"),
		Username:     v.GetString("data.redis.username"),
		Password:     v.GetString("data.redis.password"),
		Db:           v.GetInt("data.redis.db"),
		ReadTimeout:  v.GetDuration("data.redis.read_timeout"),
		WriteTimeout: v.GetDuration("data.redis.write_timeout"),
		DialTimeout:  v.GetDuration("data.redis.dial_timeout"),
		TTL:          ttl,
		Prefix:       prefix,
	}
}
