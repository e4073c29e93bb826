package keystore

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/libkeri/keri/keri"
)

// MemoryKeeper holds unencrypted signing keys in process memory. It is
// meant for tests, CLIs, and short-lived agents; anything that outlives
// a single process should implement Keeper against real key storage
// instead.
type MemoryKeeper struct {
	mu      sync.RWMutex
	signers map[string]keri.Signer
}

// NewMemoryKeeper returns an empty MemoryKeeper.
func NewMemoryKeeper() *MemoryKeeper {
	return &MemoryKeeper{signers: make(map[string]keri.Signer)}
}

// Add registers signer under its own verification key's qb64 prefix and
// returns that prefix.
func (k *MemoryKeeper) Add(signer keri.Signer) (string, error) {
	prefix, err := signer.Verfer().Qb64()
	if err != nil {
		return "", err
	}
	k.mu.Lock()
	defer k.mu.Unlock()
	k.signers[prefix] = signer
	return prefix, nil
}

// Generate creates a fresh signer and registers it, returning its prefix.
func (k *MemoryKeeper) Generate(transferable bool) (string, error) {
	signer, err := keri.NewSigner(transferable)
	if err != nil {
		return "", err
	}
	return k.Add(signer)
}

func (k *MemoryKeeper) lookup(prefix string) (keri.Signer, error) {
	k.mu.RLock()
	defer k.mu.RUnlock()
	signer, ok := k.signers[prefix]
	if !ok {
		return keri.Signer{}, fmt.Errorf("keystore: no key for prefix %q", prefix)
	}
	return signer, nil
}

// ListPrefixes implements Keeper.
func (k *MemoryKeeper) ListPrefixes(_ context.Context) ([]string, error) {
	k.mu.RLock()
	defer k.mu.RUnlock()
	out := make([]string, 0, len(k.signers))
	for prefix := range k.signers {
		out = append(out, prefix)
	}
	sort.Strings(out)
	return out, nil
}

// GetVerfer implements Keeper.
func (k *MemoryKeeper) GetVerfer(_ context.Context, prefix string) (keri.Verfer, error) {
	signer, err := k.lookup(prefix)
	if err != nil {
		return keri.Verfer{}, err
	}
	return signer.Verfer(), nil
}

// SignEvent implements Keeper.
func (k *MemoryKeeper) SignEvent(_ context.Context, prefix string, ser []byte) (keri.Cigar, error) {
	signer, err := k.lookup(prefix)
	if err != nil {
		return keri.Cigar{}, err
	}
	return signer.Sign(ser)
}

// SignIndexed implements Keeper.
func (k *MemoryKeeper) SignIndexed(_ context.Context, prefix string, ser []byte, index uint16) (keri.Siger, error) {
	signer, err := k.lookup(prefix)
	if err != nil {
		return keri.Siger{}, err
	}
	return signer.SignIndexed(ser, index)
}

var _ Keeper = (*MemoryKeeper)(nil)
