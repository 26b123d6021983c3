package zippy

import "strconv"

// Kind identifies the category of a CorruptInputError. Callers that need
// to distinguish error causes (rather than just failing) should switch on
// Kind rather than comparing error strings.
type Kind int

const (
	// TruncatedInput means a bit or byte read ran past the end of the
	// source buffer.
	TruncatedInput Kind = iota + 1
	// InvalidBlockType means a block header declared btype == 3.
	InvalidBlockType
	// InvalidStoredBlock means a stored block's len/nlen fields were not
	// one's complements of each other.
	InvalidStoredBlock
	// InvalidTable means a code-length alphabet was malformed:
	// over-subscribed, incomplete (other than a lone 1-bit code), empty, or
	// larger than the alphabet's max_codes.
	InvalidTable
	// InvalidCode means a decoded Huffman code had a zero length field or
	// a symbol value out of range for its alphabet.
	InvalidCode
	// InvalidRepeat means code-length symbol 16 appeared before any
	// literal code length had been emitted.
	InvalidRepeat
	// InvalidDistance means a back-reference distance reached before the
	// start of the output.
	InvalidDistance
)

func (k Kind) String() string {
	switch k {
	case TruncatedInput:
		return "truncated input"
	case InvalidBlockType:
		return "invalid block type"
	case InvalidStoredBlock:
		return "invalid stored block length"
	case InvalidTable:
		return "invalid Huffman table"
	case InvalidCode:
		return "invalid code"
	case InvalidRepeat:
		return "invalid code-length repeat"
	case InvalidDistance:
		return "invalid back-reference distance"
	default:
		return "unknown inflate error"
	}
}

// CorruptInputError reports that the DEFLATE bitstream being decoded is
// invalid. Offset is the approximate byte position in the source buffer at
// which the problem was detected. Decoding is terminal on error: no
// resynchronization is attempted and any bytes already appended to the
// destination are not contractually valid.
type CorruptInputError struct {
	Kind   Kind
	Offset int
}

func (e *CorruptInputError) Error() string {
	return "inflate: " + e.Kind.String() + " at offset " + strconv.Itoa(e.Offset)
}

// Is reports whether target is the same Kind, so callers can write
// errors.Is(err, zippy.InvalidDistance) instead of a type switch.
func (e *CorruptInputError) Is(target error) bool {
	k, ok := target.(Kind)
	return ok && k == e.Kind
}

func (k Kind) Error() string { return k.String() }

func corrupt(kind Kind, offset int) error {
	return &CorruptInputError{Kind: kind, Offset: offset}
}
