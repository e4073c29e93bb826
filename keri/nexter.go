package keri

// Nexter is the next-key commitment: a single digest that binds the
// controller's next signing threshold and next key list without
// revealing either until they are rotated in. It folds the per-key
// digests together with XOR rather than hashing their concatenation, so
// the commitment's size never grows with the key count. The fold is
// keyed to a Tholder's canonical Limen string rather than sith's raw
// value, so a flat weight list and the same weights given as one nested
// clause fold to the same commitment. Limen keeps the original text of a
// numeric threshold and of each weight, so "2" and "02" commit
// differently.
type Nexter struct {
	Digester
}

// NewNexter derives the commitment digest, under code, for rotating to
// sith and keys: each key is digested with Blake3-256 before folding.
func NewNexter(code string, sith string, keys []string) (Nexter, error) {
	th, err := ParseTholder(sith, len(keys))
	if err != nil {
		return Nexter{}, err
	}
	return newNexterFromKeys(code, th, keys)
}

// NewNexterFromDigs derives the commitment digest from pre-computed qb64
// key digests, skipping the per-key digest step NewNexter performs.
func NewNexterFromDigs(code string, sith string, digs []string) (Nexter, error) {
	th, err := ParseTholder(sith, len(digs))
	if err != nil {
		return Nexter{}, err
	}
	keyDigests, err := decodeDigests(digs)
	if err != nil {
		return Nexter{}, err
	}
	return newNexterFromDigests(code, th, keyDigests)
}

// NewNexterFromKED derives the commitment digest from a KED's "k" key
// list and its own "kt" threshold field. When "kt" is absent, it
// defaults to simple majority: ceil(|k|/2).
func NewNexterFromKED(code string, ked *KED) (Nexter, error) {
	keys, err := kedStringList(ked, "k")
	if err != nil {
		return Nexter{}, err
	}
	th, err := tholderFromKED(ked, "kt", len(keys))
	if err != nil {
		return Nexter{}, err
	}
	return newNexterFromKeys(code, th, keys)
}

// NewNexterFromQb64 wraps a previously derived commitment digest.
func NewNexterFromQb64(qb64 string) (Nexter, error) {
	d, err := NewDigesterFromQb64(qb64)
	if err != nil {
		return Nexter{}, err
	}
	return Nexter{Digester: d}, nil
}

// Verify reports whether sith and keys fold, under this Nexter's
// algorithm, to the committed digest.
func (n Nexter) Verify(sith string, keys []string) (bool, error) {
	th, err := ParseTholder(sith, len(keys))
	if err != nil {
		return false, err
	}
	return n.verify(th, keys)
}

// VerifyKED reports whether ked's "k" key list and "kt" threshold field
// (or its simple-majority default) fold to the committed digest.
func (n Nexter) VerifyKED(ked *KED) (bool, error) {
	keys, err := kedStringList(ked, "k")
	if err != nil {
		return false, err
	}
	th, err := tholderFromKED(ked, "kt", len(keys))
	if err != nil {
		return false, err
	}
	return n.verify(th, keys)
}

func (n Nexter) verify(th Tholder, keys []string) (bool, error) {
	digs, err := digestKeys(keys)
	if err != nil {
		return false, err
	}
	folded, err := foldCommitment(th.Limen(), digs)
	if err != nil {
		return false, err
	}
	return subtleEqual(folded, n.Raw()), nil
}

func newNexterFromKeys(code string, th Tholder, keys []string) (Nexter, error) {
	digs, err := digestKeys(keys)
	if err != nil {
		return Nexter{}, err
	}
	return newNexterFromDigests(code, th, digs)
}

func newNexterFromDigests(code string, th Tholder, digs [][]byte) (Nexter, error) {
	folded, err := foldCommitment(th.Limen(), digs)
	if err != nil {
		return Nexter{}, err
	}
	m, err := NewMatterFromRaw(code, folded, 0)
	if err != nil {
		return Nexter{}, err
	}
	return Nexter{Digester: Digester{Matter: m}}, nil
}

func digestKeys(keys []string) ([][]byte, error) {
	digs := make([][]byte, len(keys))
	for i, key := range keys {
		d, err := digest(CodeBlake3_256, []byte(key))
		if err != nil {
			return nil, err
		}
		digs[i] = d
	}
	return digs, nil
}

func decodeDigests(digs []string) ([][]byte, error) {
	out := make([][]byte, len(digs))
	for i, d := range digs {
		dg, err := NewDigesterFromQb64(d)
		if err != nil {
			return nil, err
		}
		out[i] = dg.Raw()
	}
	return out, nil
}

// foldCommitment xor-folds each key digest in keyDigests into the digest
// of limen, byte by byte.
func foldCommitment(limen string, keyDigests [][]byte) ([]byte, error) {
	folded, err := digest(CodeBlake3_256, []byte(limen))
	if err != nil {
		return nil, err
	}
	for _, kd := range keyDigests {
		for i := range folded {
			if i < len(kd) {
				folded[i] ^= kd[i]
			}
		}
	}
	return folded, nil
}

// kedStringList reads field from ked as a list of strings.
func kedStringList(ked *KED, field string) ([]string, error) {
	v, ok := ked.Get(field)
	if !ok {
		return nil, newDerivation("event has no %q field", field)
	}
	raw, ok := v.([]any)
	if !ok {
		return nil, newDerivation("%q field is not a list", field)
	}
	out := make([]string, len(raw))
	for i, e := range raw {
		s, ok := e.(string)
		if !ok {
			return nil, newDerivation("%q field entry %d is not a string", field, i)
		}
		out[i] = s
	}
	return out, nil
}

// tholderFromKED parses field from ked as a Tholder, defaulting to
// simple-majority of n when field is absent.
func tholderFromKED(ked *KED, field string, n int) (Tholder, error) {
	v, ok := ked.Get(field)
	if !ok {
		return NewTholderNumeric(defaultSithNum(n), n)
	}
	return ParseTholder(v, n)
}
