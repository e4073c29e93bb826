package keri

import "testing"

func TestPrefixerFromVerferBasic(t *testing.T) {
	signer, err := NewSigner(true)
	if err != nil {
		t.Fatal(err)
	}
	verferQb64, err := signer.Verfer().Qb64()
	if err != nil {
		t.Fatal(err)
	}
	ked := buildInceptionKED(t, verferQb64)

	p, err := NewPrefixerFromVerfer(CodeEd25519, ked)
	if err != nil {
		t.Fatal(err)
	}
	prefixQb64, err := p.Qb64()
	if err != nil {
		t.Fatal(err)
	}
	if prefixQb64 != verferQb64 {
		t.Errorf("basic prefix = %q, want %q", prefixQb64, verferQb64)
	}

	ok, err := p.Verify(ked)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if !ok {
		t.Error("basic prefix failed to verify against its own event")
	}
}

func TestPrefixerNonTransferableRejectsNonEmptyNext(t *testing.T) {
	signer, err := NewSignerFromSeed(make([]byte, 32), false)
	if err != nil {
		t.Fatal(err)
	}
	verferQb64, err := signer.Verfer().Qb64()
	if err != nil {
		t.Fatal(err)
	}

	ked := buildInceptionKED(t, verferQb64)
	ked.Set("n", []any{"some-next-key-digest"})

	if _, err := NewPrefixerFromVerfer(CodeEd25519N, ked); err == nil {
		t.Fatal("expected derivation error for non-empty next-key commitment on a non-transferable prefix")
	}

	// A prefix derived correctly from an event with an empty "n" must
	// still reject a tampered copy of that event carrying a non-empty one.
	p, err := NewPrefixerFromVerfer(CodeEd25519N, buildInceptionKED(t, verferQb64))
	if err != nil {
		t.Fatal(err)
	}
	ok, err := p.Verify(ked)
	if err == nil || ok {
		t.Error("Verify should reject a non-transferable prefix whose event carries a non-empty next-key commitment")
	}
}

func TestPrefixerSelfAddressing(t *testing.T) {
	signer, err := NewSigner(true)
	if err != nil {
		t.Fatal(err)
	}
	verferQb64, err := signer.Verfer().Qb64()
	if err != nil {
		t.Fatal(err)
	}
	ked := buildInceptionKED(t, verferQb64)

	p, err := NewPrefixerSelfAddressing(CodeBlake3_256, ked)
	if err != nil {
		t.Fatal(err)
	}
	if !p.Digestive() {
		t.Fatal("self-addressing prefix should be digestive")
	}

	ok, err := p.Verify(ked)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if !ok {
		t.Error("self-addressing prefix failed to verify against its own event")
	}

	tampered := ked.Clone()
	tampered.Set("s", "1")
	ok, err = p.Verify(tampered)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if ok {
		t.Error("self-addressing prefix verified against a tampered event")
	}
}

func TestPrefixerSelfSigning(t *testing.T) {
	signer, err := NewSigner(true)
	if err != nil {
		t.Fatal(err)
	}
	verferQb64, err := signer.Verfer().Qb64()
	if err != nil {
		t.Fatal(err)
	}
	ked := buildInceptionKED(t, verferQb64)

	p, err := NewPrefixerSelfSigning(signer, ked)
	if err != nil {
		t.Fatal(err)
	}
	if p.Code() != CodeEd25519Sig {
		t.Errorf("code = %q, want %q", p.Code(), CodeEd25519Sig)
	}

	ok, err := p.Verify(ked)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if !ok {
		t.Error("self-signing prefix failed to verify against its own event")
	}
}
