// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fut

import (
	"github.com/brickingsoft/errors"
)

var (
	// Closed reports that a channel future's transport was closed before
	// a value was ever sent. Surfaced by ChannelFuture.Resolve instead of
	// blocking forever.
	Closed = errors.Define("fut: closed without a value")
	// Discarded reports a send on a resolver whose paired future was
	// discarded. Surfaced to the sender, never swallowed.
	Discarded = errors.Define("fut: paired future discarded")
	// AlreadyResolved reports a Send on a resolver already consumed by an
	// earlier Send or Close. The paired future never observes the extra
	// value; first value wins.
	AlreadyResolved = errors.Define("fut: value already sent")
)

// IsClosed reports whether err means the transport closed without a value.
func IsClosed(err error) bool {
	return errors.Is(err, Closed)
}

// IsDiscarded reports whether err means the paired future was discarded.
func IsDiscarded(err error) bool {
	return errors.Is(err, Discarded)
}

// IsAlreadyResolved reports whether err means the resolver was already used.
func IsAlreadyResolved(err error) bool {
	return errors.Is(err, AlreadyResolved)
}
