package keri

import "encoding/binary"

// Seqner is a key event sequence number, qualified the same way as any
// other crypto material so it can sit inline in an attachment group
// alongside signatures and receipts.
type Seqner struct {
	Matter
}

// NewSeqner wraps a sequence number.
func NewSeqner(sn uint64) (Seqner, error) {
	raw := make([]byte, 16)
	binary.BigEndian.PutUint64(raw[8:], sn)
	m, err := NewMatterFromRaw(CodeSeqNum, raw, 0)
	if err != nil {
		return Seqner{}, err
	}
	return Seqner{Matter: m}, nil
}

// NewSeqnerFromQb64 parses a previously qualified sequence number.
func NewSeqnerFromQb64(qb64 string) (Seqner, error) {
	m, err := NewMatterFromQb64(qb64)
	if err != nil {
		return Seqner{}, err
	}
	if m.Code() != CodeSeqNum {
		return Seqner{}, newValidation("code %q is not a sequence number code", m.Code())
	}
	return Seqner{Matter: m}, nil
}

// Sn returns the sequence number.
func (s Seqner) Sn() uint64 {
	return binary.BigEndian.Uint64(s.Raw()[8:])
}
