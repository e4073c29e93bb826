package keri

// category classifies a derivation code by how many selector characters
// it occupies and whether it carries a trailing base64 index.
type category int

const (
	catOne   category = iota // one ASCII selector char, e.g. "E"
	catTwo                   // two char code, selector '0'
	catFour                  // four char code, selector '1'
	catCount                 // two char code + 2 char base64 index, selector '-'
	catSig                   // indexed signature code (two or four char)
)

// codeEntry is one row of the static code tables: the fixed sizes and
// predicate flags that go with a derivation code.
type codeEntry struct {
	FullLen      int // total qb64 characters, including the code itself
	RawLen       int // decoded raw byte length
	IdxLen       int // base64 index characters embedded after the code (count codes)
	Category     category
	Transferable bool
	Digestive    bool
}

// One-character derivation codes (CryOneDex in the reference implementation).
const (
	CodeEd25519Seed = "A" // Ed25519 seed for a private key
	CodeEd25519N    = "B" // Ed25519 verification key, non-transferable basic derivation
	CodeX25519      = "C" // X25519 public encryption key
	CodeEd25519     = "D" // Ed25519 verification key, transferable basic derivation
	CodeBlake3_256  = "E" // Blake3-256 digest, self-addressing derivation
	CodeBlake2b_256 = "F" // Blake2b-256 digest, self-addressing derivation
	CodeBlake2s_256 = "G" // Blake2s-256 digest, self-addressing derivation
	CodeSHA3_256    = "H" // SHA3-256 digest, self-addressing derivation
	CodeSHA2_256    = "I" // SHA2-256 digest, self-addressing derivation

	// CodeECDSA256k1Seed, CodeEd448Seed, and CodeX448 round out the
	// one-char table so Matter recognizes material using these codes
	// instead of rejecting it as unknown. The module's cipher suite is
	// Ed25519-only (see Verfer/Signer), so no constructor produces or
	// consumes these codes; they exist for parsing, not derivation.
	CodeECDSA256k1Seed = "J" // ECDSA secp256k1 seed (unsupported cipher suite)
	CodeEd448Seed      = "K" // Ed448 seed (unsupported cipher suite)
	CodeX448           = "L" // X448 public encryption key (unsupported cipher suite)
)

// Two-character derivation codes (CryTwoDex).
const (
	CodeSalt128       = "0A" // 128 bit random seed/salt
	CodeEd25519Sig    = "0B" // Ed25519 signature, self-signing derivation
	CodeECDSA256k1Sig = "0C" // ECDSA secp256k1 signature (table reserved, unsupported)
	CodeSeqNum        = "0D" // 128 bit big-endian sequence number
)

// Count-class derivation codes (CryCntDex): attachment counters.
const (
	CodeCountBase64 = "-A" // count of base64-qualified attachments following
	CodeCountBase2  = "-B" // count of binary-qualified attachments following
)

// Indexed-signature derivation codes (SigTwoDex / SigFourDex).
const (
	SigCodeEd25519 = "A" // one-char cipher selector + one-char index -> two-char code
)

const countIdxMax = 4095 // maximum count value given two base64 digits

var oneCharTable = map[string]codeEntry{
	CodeEd25519Seed: {FullLen: 44, RawLen: 32, Category: catOne, Transferable: true},
	CodeEd25519N:    {FullLen: 44, RawLen: 32, Category: catOne, Transferable: false},
	CodeX25519:      {FullLen: 44, RawLen: 32, Category: catOne, Transferable: true},
	CodeEd25519:     {FullLen: 44, RawLen: 32, Category: catOne, Transferable: true},
	CodeBlake3_256:  {FullLen: 44, RawLen: 32, Category: catOne, Transferable: true, Digestive: true},
	CodeBlake2b_256: {FullLen: 44, RawLen: 32, Category: catOne, Transferable: true, Digestive: true},
	CodeBlake2s_256: {FullLen: 44, RawLen: 32, Category: catOne, Transferable: true, Digestive: true},
	CodeSHA3_256:    {FullLen: 44, RawLen: 32, Category: catOne, Transferable: true, Digestive: true},
	CodeSHA2_256:    {FullLen: 44, RawLen: 32, Category: catOne, Transferable: true, Digestive: true},

	CodeECDSA256k1Seed: {FullLen: 44, RawLen: 32, Category: catOne, Transferable: true},
	CodeEd448Seed:      {FullLen: 76, RawLen: 56, Category: catOne, Transferable: true},
	CodeX448:           {FullLen: 76, RawLen: 56, Category: catOne, Transferable: true},
}

var twoCharTable = map[string]codeEntry{
	CodeSalt128:       {FullLen: 24, RawLen: 16, Category: catTwo, Transferable: true},
	CodeEd25519Sig:    {FullLen: 88, RawLen: 64, Category: catTwo, Transferable: true},
	CodeECDSA256k1Sig: {FullLen: 88, RawLen: 64, Category: catTwo, Transferable: true},
	CodeSeqNum:        {FullLen: 24, RawLen: 16, Category: catTwo, Transferable: true},
}

var fourCharTable = map[string]codeEntry{
	// reserved for four-character basic/self-signing codes (ECDSA/Ed448
	// families); none are exercised by this module's Ed25519-only scope,
	// kept so the selector dispatch in Matter stays total over '1'.
}

var countTable = map[string]codeEntry{
	CodeCountBase64: {FullLen: 4, RawLen: 0, IdxLen: 2, Category: catCount},
	CodeCountBase2:  {FullLen: 4, RawLen: 0, IdxLen: 2, Category: catCount},
}

// sigTwoTable: one-char cipher selector + one-char base64 index -> 2 char
// total code, 88 char qb64, 64 byte raw signature.
var sigTwoTable = map[string]codeEntry{
	SigCodeEd25519: {FullLen: 88, RawLen: 64, IdxLen: 1, Category: catSig},
}

// sigFourTable: two-char cipher selector + two-char base64 index -> 4 char
// total code, 156 char qb64, 114 byte raw signature (reserved for Ed448).
var sigFourTable = map[string]codeEntry{}

// MinMaterialSize is the minimum full_len across every non-signature
// table; below this many bytes an exfil cannot even read a selector.
var MinMaterialSize = minFullLen(oneCharTable, twoCharTable, fourCharTable, countTable)

func minFullLen(tables ...map[string]codeEntry) int {
	min := -1
	for _, t := range tables {
		for _, e := range t {
			if min == -1 || e.FullLen < min {
				min = e.FullLen
			}
		}
	}
	return min
}

// lookupCode resolves code to its table entry across every non-signature
// category, or reports it unknown.
func lookupCode(code string) (codeEntry, bool) {
	if e, ok := oneCharTable[code]; ok {
		return e, true
	}
	if e, ok := twoCharTable[code]; ok {
		return e, true
	}
	if e, ok := fourCharTable[code]; ok {
		return e, true
	}
	if e, ok := countTable[code]; ok {
		return e, true
	}
	return codeEntry{}, false
}

// isTransferable reports whether code is not one of the non-transferable
// basic derivation codes. Codes missing from the tables count as
// transferable.
func isTransferable(code string) bool {
	e, ok := lookupCode(code)
	return !ok || e.Transferable
}

// isDigestive reports whether code names a digest algorithm.
func isDigestive(code string) bool {
	e, ok := lookupCode(code)
	return ok && e.Digestive
}
