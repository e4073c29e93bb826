package keri

import "testing"

func TestDigesterVerify(t *testing.T) {
	codes := []string{CodeBlake3_256, CodeBlake2b_256, CodeBlake2s_256, CodeSHA3_256, CodeSHA2_256}
	ser := []byte("the quick brown fox")

	for _, code := range codes {
		t.Run(code, func(t *testing.T) {
			d, err := NewDigester(code, ser)
			if err != nil {
				t.Fatalf("NewDigester: %v", err)
			}
			ok, err := d.Verify(ser)
			if err != nil {
				t.Fatalf("Verify: %v", err)
			}
			if !ok {
				t.Error("digest failed to verify against its own serialization")
			}
			ok, err = d.Verify([]byte("tampered"))
			if err != nil {
				t.Fatalf("Verify: %v", err)
			}
			if ok {
				t.Error("digest verified against the wrong serialization")
			}
		})
	}
}

func TestDigesterCompareCrossAlgorithm(t *testing.T) {
	ser := []byte("event body")

	d1, err := NewDigester(CodeBlake3_256, ser)
	if err != nil {
		t.Fatal(err)
	}
	d2, err := NewDigester(CodeSHA2_256, ser)
	if err != nil {
		t.Fatal(err)
	}

	ok, err := d1.Compare(ser, d2)
	if err != nil {
		t.Fatalf("Compare: %v", err)
	}
	if !ok {
		t.Error("digests of the same serialization under different algorithms should compare equal")
	}

	d3, err := NewDigester(CodeSHA2_256, []byte("different event"))
	if err != nil {
		t.Fatal(err)
	}
	ok, err = d1.Compare(ser, d3)
	if err != nil {
		t.Fatalf("Compare: %v", err)
	}
	if ok {
		t.Error("digest of a different serialization should not compare equal")
	}
}

func TestDigesterRejectsNonDigestCode(t *testing.T) {
	if _, err := NewDigester(CodeEd25519Seed, []byte("x")); err == nil {
		t.Fatal("expected error using a non-digest code")
	}
}
