// Package config holds the settings for zecid's long-running server.
package config

import (
	"errors"
	"flag"
	"fmt"
	"time"
)

// ErrInvalid is returned by Validate for unusable settings.
var ErrInvalid = errors.New("invalid config")

// Serve captures HTTP server configuration.
type Serve struct {
	Addr string
	// RateLimit is the sustained requests per second; 0 disables limiting.
	RateLimit float64
	Burst     int

	ReadHeaderTimeout time.Duration
	ShutdownTimeout   time.Duration

	// DataFile optionally replaces the built-in reference tables.
	DataFile string
}

// DefaultServe returns the server defaults.
func DefaultServe() Serve {
	return Serve{
		Addr:              ":3000",
		RateLimit:         20,
		Burst:             40,
		ReadHeaderTimeout: 5 * time.Second,
		ShutdownTimeout:   10 * time.Second,
	}
}

// RegisterFlags binds s to flags on fs, using the current values as defaults.
func (s *Serve) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&s.Addr, "addr", s.Addr, "listen address")
	fs.Float64Var(&s.RateLimit, "rate", s.RateLimit, "requests per second, 0 disables limiting")
	fs.IntVar(&s.Burst, "burst", s.Burst, "rate limit burst size")
	fs.DurationVar(&s.ShutdownTimeout, "shutdown-timeout", s.ShutdownTimeout, "graceful shutdown timeout")
	fs.StringVar(&s.DataFile, "data", s.DataFile, "yaml reference data file")
}

// Validate rejects settings the server cannot run with.
func (s Serve) Validate() error {
	if s.Addr == "" {
		return fmt.Errorf("%w: empty listen address", ErrInvalid)
	}
	if s.RateLimit < 0 {
		return fmt.Errorf("%w: negative rate %v", ErrInvalid, s.RateLimit)
	}
	if s.RateLimit > 0 && s.Burst < 1 {
		return fmt.Errorf("%w: burst must be at least 1 when limiting", ErrInvalid)
	}
	if s.ShutdownTimeout <= 0 {
		return fmt.Errorf("%w: shutdown timeout must be positive", ErrInvalid)
	}
	return nil
}
