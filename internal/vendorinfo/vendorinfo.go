// SPDX-License-Identifier: Apache-2.0

// Package vendorinfo adapts a *config.Config into the lexer's VendorInfo
// collaborator contract: a Vendor string substituted verbatim for
// __VENDOR__, and a Version string of the form "N.M…" the lexer parses into
// 1000*major+minor for __VERSION__.
package vendorinfo

import "github.com/vesper-lang/vesperc/internal/config"

type Info struct {
	cfg *config.Config
}

func New(cfg *config.Config) *Info {
	return &Info{cfg: cfg}
}

func (i *Info) Vendor() string {
	return i.cfg.Vendor
}

func (i *Info) Version() string {
	return i.cfg.Version
}
