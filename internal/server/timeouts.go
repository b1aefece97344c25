package server

import "time"

// writeTimeout covers queue waits plus the upstream round trip.
const (
	readTimeout  = 10 * time.Second
	writeTimeout = 2 * time.Minute
	idleTimeout  = 60 * time.Second
)

// shutdownTimeout remains a var for tests to override.
var shutdownTimeout = 10 * time.Second

// redisPingTimeout bounds the startup connectivity check.
var redisPingTimeout = 2 * time.Second
