package usecase

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
	ErrRateLimited           = errors.New("rate limited")

	// ErrFetchFailed and ErrParseFailed classify unit-of-work failures from the scrape source.
	ErrFetchFailed = errors.New("upstream fetch failed")
	ErrParseFailed = errors.New("upstream markup not recognized")
)

// CooldownError rejects a player match scrape requested before the cooldown elapsed.
type CooldownError struct {
	PlayerName    string
	LastScrapedAt time.Time
	RetryAt       time.Time
	Remaining     time.Duration
}

func (e *CooldownError) Error() string {
	return fmt.Sprintf("%s: match history for %q was scraped at %s, retry after %s (in %s)",
		ErrRateLimited, e.PlayerName,
		e.LastScrapedAt.UTC().Format(time.RFC3339),
		e.RetryAt.UTC().Format(time.RFC3339),
		e.Remaining.Round(time.Second))
}

func (e *CooldownError) Unwrap() error {
	return ErrRateLimited
}

func asCooldown(err error) (*CooldownError, bool) {
	var target *CooldownError
	if errors.As(err, &target) {
		return target, true
	}
	return nil, false
}
