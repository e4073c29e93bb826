package keri

import (
	"bytes"
	"crypto/rand"
	"testing"
)

func TestMatterQb64RoundTrip(t *testing.T) {
	cases := []struct {
		name   string
		code   string
		rawLen int
	}{
		{"ed25519-seed", CodeEd25519Seed, 32},
		{"ed25519-verkey", CodeEd25519, 32},
		{"blake3-digest", CodeBlake3_256, 32},
		{"salt-128", CodeSalt128, 16},
		{"ecdsa-secp256k1-seed", CodeECDSA256k1Seed, 32},
		{"ed448-seed", CodeEd448Seed, 56},
		{"x448", CodeX448, 56},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			raw := make([]byte, c.rawLen)
			if _, err := rand.Read(raw); err != nil {
				t.Fatal(err)
			}

			m, err := NewMatterFromRaw(c.code, raw, 0)
			if err != nil {
				t.Fatalf("NewMatterFromRaw: %v", err)
			}

			qb64, err := m.Qb64()
			if err != nil {
				t.Fatalf("Qb64: %v", err)
			}

			back, err := NewMatterFromQb64(qb64)
			if err != nil {
				t.Fatalf("NewMatterFromQb64(%q): %v", qb64, err)
			}
			if back.Code() != c.code {
				t.Errorf("code = %q, want %q", back.Code(), c.code)
			}
			if !bytes.Equal(back.Raw(), raw) {
				t.Errorf("raw = %x, want %x", back.Raw(), raw)
			}
		})
	}
}

func TestMatterQb2RoundTrip(t *testing.T) {
	raw := bytes.Repeat([]byte{0xAB}, 32)
	m, err := NewMatterFromRaw(CodeBlake3_256, raw, 0)
	if err != nil {
		t.Fatal(err)
	}

	qb2, err := m.Qb2()
	if err != nil {
		t.Fatalf("Qb2: %v", err)
	}

	back, err := NewMatterFromQb2(qb2)
	if err != nil {
		t.Fatalf("NewMatterFromQb2: %v", err)
	}
	if back.Code() != CodeBlake3_256 || !bytes.Equal(back.Raw(), raw) {
		t.Errorf("round trip mismatch: code=%q raw=%x", back.Code(), back.Raw())
	}
}

func TestMatterCountCodeRoundTrip(t *testing.T) {
	m, err := NewMatterFromRaw(CodeCountBase64, nil, 12)
	if err != nil {
		t.Fatal(err)
	}
	qb64, err := m.Qb64()
	if err != nil {
		t.Fatal(err)
	}
	if len(qb64) != 4 {
		t.Fatalf("count qb64 length = %d, want 4", len(qb64))
	}
	back, err := NewMatterFromQb64(qb64)
	if err != nil {
		t.Fatal(err)
	}
	if back.Index() != 12 {
		t.Errorf("index = %d, want 12", back.Index())
	}
}

func TestMatterUnknownCode(t *testing.T) {
	if _, err := NewMatterFromRaw("Z", make([]byte, 32), 0); err == nil {
		t.Fatal("expected error for unknown code")
	}
}

func TestMatterShortInput(t *testing.T) {
	if _, err := NewMatterFromQb64("AA"); err == nil {
		t.Fatal("expected shortage error for truncated input")
	} else if _, ok := err.(*ShortageError); !ok {
		t.Errorf("error type = %T, want *ShortageError", err)
	}
}

func TestMatterTransferableDigestive(t *testing.T) {
	raw := make([]byte, 32)
	nonTrans, err := NewMatterFromRaw(CodeEd25519N, raw, 0)
	if err != nil {
		t.Fatal(err)
	}
	if nonTrans.Transferable() {
		t.Error("CodeEd25519N should not be transferable")
	}

	digest, err := NewMatterFromRaw(CodeSHA2_256, raw, 0)
	if err != nil {
		t.Fatal(err)
	}
	if !digest.Digestive() {
		t.Error("CodeSHA2_256 should be digestive")
	}
	if digest.Transferable() != true {
		t.Error("CodeSHA2_256 should be transferable")
	}
}
