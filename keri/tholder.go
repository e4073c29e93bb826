package keri

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// Tholder evaluates whether a set of signing-key indices satisfies a
// signing threshold, which is expressed either as a plain count or as
// one or more clauses of fractional weights that must each sum to at
// least one.
type Tholder struct {
	weighted  bool
	num       int
	text      string // numeric: the original hex sith text
	clauses   [][]string
	clauseOf  map[int]int
	weightOf  map[int]*big.Rat
	numClause int
	size      int
}

// NewTholderNumeric builds a plain-count threshold: num distinct signing
// indices, out of size total, must sign.
func NewTholderNumeric(num, size int) (Tholder, error) {
	if num < 1 {
		return Tholder{}, newValidation("threshold must be at least 1, got %d", num)
	}
	if num > size {
		return Tholder{}, newValidation("threshold %d exceeds key count %d", num, size)
	}
	return Tholder{num: num, size: size, text: fmt.Sprintf("%x", num)}, nil
}

// NewTholderWeighted builds a fractional-weighted threshold from a list
// of clauses, each a list of weight strings like "1/2" or "1". Clauses
// partition the key list in order: the first clause covers the first
// len(clauses[0]) keys, and so on. Every clause must independently sum
// to at least one for the threshold to be satisfied.
func NewTholderWeighted(clauses [][]string, size int) (Tholder, error) {
	t := Tholder{
		weighted: true,
		clauses:  make([][]string, len(clauses)),
		clauseOf: make(map[int]int),
		weightOf: make(map[int]*big.Rat),
	}

	idx := 0
	for ci, clause := range clauses {
		if len(clause) == 0 {
			return Tholder{}, newValidation("clause %d is empty", ci)
		}
		t.clauses[ci] = append([]string(nil), clause...)
		for _, w := range clause {
			r, ok := new(big.Rat).SetString(w)
			if !ok {
				return Tholder{}, newValidation("invalid weight %q", w)
			}
			if r.Sign() <= 0 || r.Cmp(big.NewRat(1, 1)) > 0 {
				return Tholder{}, newValidation("weight %q out of (0,1] range", w)
			}
			t.clauseOf[idx] = ci
			t.weightOf[idx] = r
			idx++
		}
	}
	if idx > size {
		return Tholder{}, newValidation("threshold references %d keys, have %d", idx, size)
	}
	t.numClause = len(clauses)
	t.size = size
	return t, nil
}

// ParseTholder builds a Tholder from a decoded "sith" field: a hex
// numeric string, a flat list of weight strings (one clause), or a list
// of lists of weight strings (multiple clauses).
func ParseTholder(sith any, size int) (Tholder, error) {
	switch v := sith.(type) {
	case string:
		n, err := strconv.ParseInt(v, 16, 64)
		if err != nil {
			return Tholder{}, newValidation("invalid numeric threshold %q: %v", v, err)
		}
		th, err := NewTholderNumeric(int(n), size)
		if err != nil {
			return Tholder{}, err
		}
		th.text = v
		return th, nil

	case []any:
		if len(v) == 0 {
			return Tholder{}, newValidation("empty threshold list")
		}
		if _, ok := v[0].(string); ok {
			clause := make([]string, len(v))
			for i, e := range v {
				s, ok := e.(string)
				if !ok {
					return Tholder{}, newValidation("threshold weight at index %d is not a string", i)
				}
				clause[i] = s
			}
			return NewTholderWeighted([][]string{clause}, size)
		}

		clauses := make([][]string, len(v))
		for i, e := range v {
			sub, ok := e.([]any)
			if !ok {
				return Tholder{}, newValidation("threshold clause %d is not a list", i)
			}
			clause := make([]string, len(sub))
			for j, w := range sub {
				s, ok := w.(string)
				if !ok {
					return Tholder{}, newValidation("threshold weight at clause %d index %d is not a string", i, j)
				}
				clause[j] = s
			}
			clauses[i] = clause
		}
		return NewTholderWeighted(clauses, size)

	default:
		return Tholder{}, newValidation("unsupported threshold encoding %T", sith)
	}
}

// Limen returns the threshold's canonical commitment string: the
// original hex text for a numeric threshold, or its clauses' original
// weight text joined by ',' within a clause and '&' between clauses for
// a weighted one. Nexter folds this string rather than sith's raw bytes,
// so callers should route every sith value through ParseTholder (or one
// of the New* constructors) before committing to it.
func (t Tholder) Limen() string {
	if !t.weighted {
		return t.text
	}
	parts := make([]string, len(t.clauses))
	for i, c := range t.clauses {
		parts[i] = strings.Join(c, ",")
	}
	return strings.Join(parts, "&")
}

// defaultSithNum computes the simple-majority default threshold for n
// keys: ceil(n/2).
func defaultSithNum(n int) int {
	return (n + 1) / 2
}

// Weighted reports whether this is a fractional-weighted threshold.
func (t Tholder) Weighted() bool { return t.weighted }

// Num returns the plain count for a numeric threshold, or 0 for a
// weighted one.
func (t Tholder) Num() int { return t.num }

// Satisfy reports whether the distinct set of signing indices satisfies
// the threshold. Duplicate indices (the same signer counted twice) are
// deduplicated before evaluation.
func (t Tholder) Satisfy(indices []int) (bool, error) {
	seen := make(map[int]bool, len(indices))
	for _, i := range indices {
		if i < 0 || i >= t.size {
			return false, nil
		}
		seen[i] = true
	}

	if !t.weighted {
		return len(seen) >= t.num, nil
	}

	sums := make([]*big.Rat, t.numClause)
	for i := range sums {
		sums[i] = new(big.Rat)
	}
	for idx := range seen {
		w, ok := t.weightOf[idx]
		if !ok {
			return false, nil // index outside any clause is out of range
		}
		ci := t.clauseOf[idx]
		sums[ci].Add(sums[ci], w)
	}

	one := big.NewRat(1, 1)
	for _, s := range sums {
		if s.Cmp(one) < 0 {
			return false, nil
		}
	}
	return true, nil
}
