package keri

import "testing"

func TestSignerSignAndVerify(t *testing.T) {
	signer, err := NewSigner(true)
	if err != nil {
		t.Fatal(err)
	}
	msg := []byte("key event body")

	cig, err := signer.Sign(msg)
	if err != nil {
		t.Fatal(err)
	}
	if !signer.Verfer().Verify(msg, cig.Raw()) {
		t.Error("non-indexed signature failed to verify")
	}
	if signer.Verfer().Verify([]byte("tampered"), cig.Raw()) {
		t.Error("non-indexed signature verified against the wrong message")
	}

	if v, ok := cig.Verfer(); !ok || v.Code() != signer.Verfer().Code() {
		t.Error("Cigar did not retain its attached verfer")
	}
}

func TestSignerSignIndexed(t *testing.T) {
	signer, err := NewSigner(true)
	if err != nil {
		t.Fatal(err)
	}
	msg := []byte("key event body")

	sgr, err := signer.SignIndexed(msg, 3)
	if err != nil {
		t.Fatal(err)
	}
	if sgr.Index() != 3 {
		t.Errorf("Index() = %d, want 3", sgr.Index())
	}
	if !signer.Verfer().Verify(msg, sgr.Raw()) {
		t.Error("indexed signature failed to verify")
	}

	qb64, err := sgr.Qb64()
	if err != nil {
		t.Fatal(err)
	}
	back, err := NewSigerFromQb64(qb64)
	if err != nil {
		t.Fatal(err)
	}
	if back.Index() != 3 {
		t.Errorf("round-tripped Index() = %d, want 3", back.Index())
	}
	if !signer.Verfer().Verify(msg, back.Raw()) {
		t.Error("round-tripped indexed signature failed to verify")
	}
}

func TestSignerSeedRoundTrip(t *testing.T) {
	signer, err := NewSigner(false)
	if err != nil {
		t.Fatal(err)
	}
	seedQb64, err := signer.Qb64()
	if err != nil {
		t.Fatal(err)
	}

	back, err := NewSignerFromQb64(seedQb64, false)
	if err != nil {
		t.Fatal(err)
	}
	if back.Verfer().Code() != CodeEd25519N {
		t.Errorf("Verfer code = %q, want %q", back.Verfer().Code(), CodeEd25519N)
	}

	msg := []byte("x")
	sig, err := back.Sign(msg)
	if err != nil {
		t.Fatal(err)
	}
	if !signer.Verfer().Verify(msg, sig.Raw()) {
		t.Error("round-tripped seed produced a signature the original key disagrees with")
	}
}
