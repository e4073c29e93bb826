package keri

import "testing"

func TestSalterStretchDeterministic(t *testing.T) {
	s, err := NewSalter()
	if err != nil {
		t.Fatal(err)
	}

	a, err := s.Stretch("signer", 0, TierLow)
	if err != nil {
		t.Fatal(err)
	}
	b, err := s.Stretch("signer", 0, TierLow)
	if err != nil {
		t.Fatal(err)
	}
	if string(a) != string(b) {
		t.Error("stretching the same salt/path/index/tier twice produced different seeds")
	}

	c, err := s.Stretch("signer", 1, TierLow)
	if err != nil {
		t.Fatal(err)
	}
	if string(a) == string(c) {
		t.Error("different indices produced the same seed")
	}
}

func TestSalterSignerAt(t *testing.T) {
	s, err := NewSalter()
	if err != nil {
		t.Fatal(err)
	}
	signer, err := s.SignerAt("signer", 0, TierLow, true)
	if err != nil {
		t.Fatal(err)
	}
	sig, err := signer.Sign([]byte("hello"))
	if err != nil {
		t.Fatal(err)
	}
	if !signer.Verfer().Verify([]byte("hello"), sig.Raw()) {
		t.Error("signature from a salt-derived signer failed to verify")
	}
}

func TestSalterQb64RoundTrip(t *testing.T) {
	s, err := NewSalter()
	if err != nil {
		t.Fatal(err)
	}
	qb64, err := s.Qb64()
	if err != nil {
		t.Fatal(err)
	}
	back, err := NewSalterFromQb64(qb64)
	if err != nil {
		t.Fatal(err)
	}
	a, _ := s.Stretch("x", 0, TierLow)
	b, _ := back.Stretch("x", 0, TierLow)
	if string(a) != string(b) {
		t.Error("round-tripped salter stretched differently")
	}
}
