// Package keystore holds signing key material behind a small interface,
// so callers that build and sign events never need to know whether a
// key lives in memory, a hardware module, or a remote agent.
package keystore

import (
	"context"

	"github.com/libkeri/keri/keri"
)

// Keeper looks up and signs with keys addressed by their own qualified
// verification key (qb64), the same string KERI uses as a basic
// identifier prefix. Every method takes a context so an implementation
// backed by a remote agent or hardware module can time out or cancel a
// call a local MemoryKeeper never needs to.
type Keeper interface {
	// ListPrefixes returns the qb64 verification keys this Keeper holds
	// signing material for.
	ListPrefixes(context.Context) ([]string, error)

	// GetVerfer returns the public verification key for prefix.
	GetVerfer(context.Context, string) (keri.Verfer, error)

	// SignEvent produces a non-indexed signature over ser with the key
	// addressed by prefix.
	SignEvent(context.Context, string, []byte) (keri.Cigar, error)

	// SignIndexed produces an indexed signature over ser with the key
	// addressed by prefix, tagged with its position in a key list.
	SignIndexed(context.Context, string, []byte, uint16) (keri.Siger, error)
}
