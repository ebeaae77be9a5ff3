// SPDX-License-Identifier: Apache-2.0

// Package config holds the handful of process-wide settings the lexer reads
// as its "global configuration" collaborator: whether deprecations should be
// treated as errors, and the vendor/version strings substituted for
// __VENDOR__ and __VERSION__. It is built with functional options, the same
// construction pattern internal/driver and internal/lexer use.
package config

const (
	DefaultVendor  = "Vesper Reference Compiler"
	DefaultVersion = "1.0"
)

type Config struct {
	DeprecationsAsErrors bool
	Vendor               string
	Version              string
}

type Option func(*Config)

func WithDeprecationsAsErrors() Option {
	return func(c *Config) { c.DeprecationsAsErrors = true }
}

func WithVendor(vendor string) Option {
	return func(c *Config) { c.Vendor = vendor }
}

func WithVersion(version string) Option {
	return func(c *Config) { c.Version = version }
}

func New(opts ...Option) *Config {
	c := &Config{Vendor: DefaultVendor, Version: DefaultVersion}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
