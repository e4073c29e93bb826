package keri

// Counter is a count-class attachment header: it tells a stream reader
// how many qualified items of one kind (signatures, receipts, seals)
// follow it, so they can be read without scanning for a terminator.
type Counter struct {
	Matter
}

// NewCounter builds a Counter for n following items. code selects the
// attachment group's own encoding (CodeCountBase64 for a base64 stream,
// CodeCountBase2 for packed binary).
func NewCounter(code string, n uint16) (Counter, error) {
	m, err := NewMatterFromRaw(code, nil, n)
	if err != nil {
		return Counter{}, err
	}
	return Counter{Matter: m}, nil
}

// NewCounterFromQb64 parses a Counter off the front of qb64.
func NewCounterFromQb64(qb64 string) (Counter, error) {
	m, err := NewMatterFromQb64(qb64)
	if err != nil {
		return Counter{}, err
	}
	if m.Code() != CodeCountBase64 && m.Code() != CodeCountBase2 {
		return Counter{}, newValidation("code %q is not a count code", m.Code())
	}
	return Counter{Matter: m}, nil
}

// Count returns the number of attachments the counter announces.
func (c Counter) Count() uint16 { return c.Index() }
