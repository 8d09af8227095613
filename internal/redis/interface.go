package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client wraps redis.UniversalClient so callers never import go-redis directly
type Client interface {
	redis.UniversalClient
}

// Pipeliner is the command batch handed to TxPipelined callbacks
type Pipeliner = redis.Pipeliner

// IntCmd is the deferred result of an integer command inside a pipeline
type IntCmd = redis.IntCmd

// Nil is returned by reads that find no key
const Nil = redis.Nil
