package keri

import "testing"

func TestCounterRoundTrip(t *testing.T) {
	cases := []struct {
		code string
		n    uint16
	}{
		{CodeCountBase64, 0},
		{CodeCountBase2, 1},
		{CodeCountBase64, 4095},
	}

	for _, c := range cases {
		cnt, err := NewCounter(c.code, c.n)
		if err != nil {
			t.Fatalf("NewCounter(%q, %d): %v", c.code, c.n, err)
		}
		qb64, err := cnt.Qb64()
		if err != nil {
			t.Fatal(err)
		}
		back, err := NewCounterFromQb64(qb64)
		if err != nil {
			t.Fatal(err)
		}
		if back.Count() != c.n {
			t.Errorf("Count() = %d, want %d", back.Count(), c.n)
		}
	}
}

func TestCounterRejectsOverflow(t *testing.T) {
	if _, err := NewCounter(CodeCountBase64, 4096); err == nil {
		t.Fatal("expected error for count exceeding two base64 digits")
	}
}

func TestSeqnerRoundTrip(t *testing.T) {
	cases := []uint64{0, 1, 42, 1 << 40}
	for _, sn := range cases {
		s, err := NewSeqner(sn)
		if err != nil {
			t.Fatal(err)
		}
		qb64, err := s.Qb64()
		if err != nil {
			t.Fatal(err)
		}
		back, err := NewSeqnerFromQb64(qb64)
		if err != nil {
			t.Fatal(err)
		}
		if back.Sn() != sn {
			t.Errorf("Sn() = %d, want %d", back.Sn(), sn)
		}
	}
}
