package auth

import "time"

// Strategy issues and validates session tokens. The subject is the
// authenticated user's email address.
type Strategy interface {
	IssueToken(subject string) (string, error)
	ParseToken(token string) (string, error)
	Name() string
}

type Options struct {
	TTL time.Duration
}
