// Package engine wraps the machine translation service behind a small
// interface so the rest of the tool can be tested against a fake.
package engine

import (
	"context"
	"time"

	"github.com/bregydoc/gtranslate"
)

// Engine translates one unit of text between two languages. The call
// blocks for the duration of the network round trip; any timeout or
// retry behavior is whatever the underlying client provides.
type Engine interface {
	Translate(ctx context.Context, text, srcLang, destLang string) (string, error)
}

// Google calls the free Google translate endpoint. The endpoint is
// unauthenticated and rate limited, so a fixed pause is applied before
// every request when Delay is set.
type Google struct {
	// Delay is slept before each request. Zero disables the pause.
	Delay time.Duration
}

// NewGoogle returns a client with the given inter-request delay.
func NewGoogle(delay time.Duration) *Google {
	return &Google{Delay: delay}
}

// Translate sends text to the translation endpoint.
func (g *Google) Translate(ctx context.Context, text, srcLang, destLang string) (string, error) {
	if g.Delay > 0 {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(g.Delay):
		}
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return gtranslate.TranslateWithParams(text, gtranslate.TranslationParams{
		From: srcLang,
		To:   destLang,
	})
}
