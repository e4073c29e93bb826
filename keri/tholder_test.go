package keri

import "testing"

func TestTholderNumericDedup(t *testing.T) {
	th, err := NewTholderNumeric(2, 3)
	if err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		name    string
		indices []int
		want    bool
	}{
		{"enough distinct", []int{0, 1}, true},
		{"duplicate does not count twice", []int{1, 1}, false},
		{"three distinct exceeds threshold", []int{0, 1, 2}, true},
		{"single index insufficient", []int{0}, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := th.Satisfy(c.indices)
			if err != nil {
				t.Fatalf("Satisfy: %v", err)
			}
			if got != c.want {
				t.Errorf("Satisfy(%v) = %v, want %v", c.indices, got, c.want)
			}
		})
	}
}

func TestTholderNumericRejectsOutOfRange(t *testing.T) {
	if _, err := NewTholderNumeric(5, 3); err == nil {
		t.Fatal("expected error for threshold exceeding key count")
	}
	if _, err := NewTholderNumeric(0, 3); err == nil {
		t.Fatal("expected error for zero threshold")
	}
}

func TestTholderWeightedSingleClause(t *testing.T) {
	th, err := NewTholderWeighted([][]string{{"1/2", "1/2", "1/2"}}, 3)
	if err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		name    string
		indices []int
		want    bool
	}{
		{"two halves satisfy", []int{0, 1}, true},
		{"one half insufficient", []int{0}, false},
		{"all three satisfy", []int{0, 1, 2}, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := th.Satisfy(c.indices)
			if err != nil {
				t.Fatalf("Satisfy: %v", err)
			}
			if got != c.want {
				t.Errorf("Satisfy(%v) = %v, want %v", c.indices, got, c.want)
			}
		})
	}
}

func TestTholderWeightedMultiClause(t *testing.T) {
	// Clause 0 covers indices 0,1 (each weight 1/2); clause 1 covers index 2
	// (weight 1). Both clauses must independently reach 1.
	th, err := NewTholderWeighted([][]string{{"1/2", "1/2"}, {"1"}}, 3)
	if err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		name    string
		indices []int
		want    bool
	}{
		{"clause 0 half-satisfied only", []int{0}, false},
		{"clause 0 satisfied, clause 1 missing", []int{0, 1}, false},
		{"both clauses satisfied", []int{0, 1, 2}, true},
		{"clause 1 alone insufficient", []int{2}, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := th.Satisfy(c.indices)
			if err != nil {
				t.Fatalf("Satisfy: %v", err)
			}
			if got != c.want {
				t.Errorf("Satisfy(%v) = %v, want %v", c.indices, got, c.want)
			}
		})
	}
}

func TestParseTholderNumeric(t *testing.T) {
	th, err := ParseTholder("2", 3)
	if err != nil {
		t.Fatal(err)
	}
	if th.Weighted() {
		t.Fatal("expected numeric threshold")
	}
	if th.Num() != 2 {
		t.Errorf("Num() = %d, want 2", th.Num())
	}
}

func TestParseTholderWeightedList(t *testing.T) {
	sith := []any{"1/2", "1/2"}
	th, err := ParseTholder(sith, 2)
	if err != nil {
		t.Fatal(err)
	}
	if !th.Weighted() {
		t.Fatal("expected weighted threshold")
	}
	ok, err := th.Satisfy([]int{0, 1})
	if err != nil || !ok {
		t.Errorf("expected both halves to satisfy, ok=%v err=%v", ok, err)
	}
}

func TestTholderWeightedRejectsOutOfRangeIndex(t *testing.T) {
	th, err := NewTholderWeighted([][]string{{"1/2", "1/2"}}, 2)
	if err != nil {
		t.Fatal(err)
	}
	got, err := th.Satisfy([]int{0, 1, 99})
	if err != nil {
		t.Fatalf("Satisfy: %v", err)
	}
	if got {
		t.Error("Satisfy with an out-of-range index should be false, got true")
	}
}

func TestTholderNumericRejectsOutOfRangeIndex(t *testing.T) {
	th, err := NewTholderNumeric(2, 3)
	if err != nil {
		t.Fatal(err)
	}
	got, err := th.Satisfy([]int{0, 99})
	if err != nil {
		t.Fatalf("Satisfy: %v", err)
	}
	if got {
		t.Error("Satisfy with an out-of-range index should be false, got true")
	}
}

func TestTholderWeightedRejectsBadWeight(t *testing.T) {
	if _, err := NewTholderWeighted([][]string{{"2"}}, 1); err == nil {
		t.Fatal("expected error for weight greater than 1")
	}
	if _, err := NewTholderWeighted([][]string{{"not-a-fraction"}}, 1); err == nil {
		t.Fatal("expected error for unparseable weight")
	}
}
