// Package redis connects to Redis with go-redis, retrying until the server
// answers PING, and exposes a health check for readiness probes.
//
//	var cfg redis.Config
//	config.MustLoad(&cfg)
//	client, err := redis.Connect(ctx, cfg)
package redis
