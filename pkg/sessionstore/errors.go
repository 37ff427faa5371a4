package sessionstore

import "errors"

var (
	// ErrTokenNotFound indicates no token is persisted in this scope
	ErrTokenNotFound = errors.New("sessionstore: token not found")

	// ErrEmptyToken indicates an empty string was passed to Write
	ErrEmptyToken = errors.New("sessionstore: empty token")

	// ErrStorageUnavailable indicates the persistence medium failed
	ErrStorageUnavailable = errors.New("sessionstore: storage unavailable")

	// ErrInvalidConnString indicates the Redis connection URL cannot be parsed
	ErrInvalidConnString = errors.New("sessionstore: invalid redis connection string")

	// ErrRedisNotReady indicates all Redis connection attempts failed
	ErrRedisNotReady = errors.New("sessionstore: redis not ready")
)
