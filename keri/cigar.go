package keri

// Cigar is non-indexed signature material: a signature with no
// accompanying key-list position, used when the signer's identity is
// conveyed some other way (e.g. a receipt keyed by the signer's prefix).
type Cigar struct {
	Matter
	verfer *Verfer
}

// NewCigar wraps a raw Ed25519 signature as non-indexed material.
func NewCigar(raw []byte) (Cigar, error) {
	m, err := NewMatterFromRaw(CodeEd25519Sig, raw, 0)
	if err != nil {
		return Cigar{}, err
	}
	return Cigar{Matter: m}, nil
}

// NewCigarFromQb64 wraps previously qualified non-indexed signature
// material.
func NewCigarFromQb64(qb64 string) (Cigar, error) {
	m, err := NewMatterFromQb64(qb64)
	if err != nil {
		return Cigar{}, err
	}
	if m.Code() != CodeEd25519Sig {
		return Cigar{}, newValidation("code %q is not a non-indexed signature code", m.Code())
	}
	return Cigar{Matter: m}, nil
}

// AttachVerfer records the key that produced this signature so a later
// verification pass does not need to carry it alongside the Cigar
// separately. It is a setter, not a verification step.
func (c *Cigar) AttachVerfer(v Verfer) { c.verfer = &v }

// Verfer returns the key previously attached with AttachVerfer, or false
// if none was attached.
func (c Cigar) Verfer() (Verfer, bool) {
	if c.verfer == nil {
		return Verfer{}, false
	}
	return *c.verfer, true
}
