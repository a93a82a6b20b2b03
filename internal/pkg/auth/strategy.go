package auth

import "time"

// Strategy issues and verifies bearer tokens. A non-positive ttl falls back
// to the strategy default.
type Strategy interface {
	IssueToken(userID int64, ttl time.Duration) (string, error)
	ParseToken(token string) (int64, error)
	Name() string
}

type Options struct {
	DefaultTTL time.Duration
}
