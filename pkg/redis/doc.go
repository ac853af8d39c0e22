// Package redis connects to a Redis server from env-tagged configuration,
// with bounded retries so a frontend process starting alongside its Redis
// container does not crash-loop. The SDK uses it to back the shared durable
// session record; see session.NewRedisRecordStore.
package redis
