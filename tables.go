package zippy

// Constant data from RFC 1951. These tables, and the fixed Huffman decode
// tables block.go builds from them once, are the only process-wide state in
// this package; none of them is mutated after it is built.
//
// baseLengths/extraLengthBits and baseDistances/extraDistanceBits are
// the same RFC 1951 tables the reference encoder in this repository's
// history carried as lengthBase/lengthExtraBits and offsetBase/
// offsetExtraBits (there, expressed relative to baseMatchLength=3 and
// baseMatchOffset=1); here they are folded back into absolute values so
// the block decoder can use them directly.

const (
	maxCodeLength = 15 // RFC 1951 §3.2.7
	maxNumLit     = 286
	maxNumDist    = 30
	numFixedLit   = 288 // fixed literal/length codes, including unused 286-287
	numFixedDist  = 32  // fixed distance codes, including unused 30-31
	numCodeLens   = 19
	endOfBlock    = 256
)

// codeLengthOrder is the order in which the 3-bit code-length
// code-lengths are transmitted for a dynamic block (RFC 1951 §3.2.7).
var codeLengthOrder = [numCodeLens]int{
	16, 17, 18, 0, 8, 7, 9, 6, 10, 5, 11, 4, 12, 3, 13, 2, 14, 1, 15,
}

// baseLengths and extraLengthBits decode length symbols 257..285 into a
// match length: length = baseLengths[sym-257] + readBits(extraLengthBits[sym-257]).
var baseLengths = [29]int{
	3, 4, 5, 6, 7, 8, 9, 10, 11, 13,
	15, 17, 19, 23, 27, 31, 35, 43, 51, 59,
	67, 83, 99, 115, 131, 163, 195, 227, 258,
}

var extraLengthBits = [29]uint{
	0, 0, 0, 0, 0, 0, 0, 0, 1, 1,
	1, 1, 2, 2, 2, 2, 3, 3, 3, 3,
	4, 4, 4, 4, 5, 5, 5, 5, 0,
}

// baseDistances and extraDistanceBits decode distance symbols 0..29 into
// a back-reference distance the same way.
var baseDistances = [30]int{
	1, 2, 3, 4, 5, 7, 9, 13, 17, 25,
	33, 49, 65, 97, 129, 193, 257, 385, 513, 769,
	1025, 1537, 2049, 3073, 4097, 6145, 8193, 12289, 16385, 24577,
}

var extraDistanceBits = [30]uint{
	0, 0, 0, 0, 1, 1, 2, 2, 3, 3,
	4, 4, 5, 5, 6, 6, 7, 7, 8, 8,
	9, 9, 10, 10, 11, 11, 12, 12, 13, 13,
}

// fixedLiteralLengths is the RFC 1951 §3.2.6 default literal/length code
// length assignment used by fixed (btype=1) blocks. Symbols 286 and 287
// complete the code space; they never decode to a valid length.
var fixedLiteralLengths = func() [numFixedLit]int {
	var lens [numFixedLit]int
	for i := 0; i < 144; i++ {
		lens[i] = 8
	}
	for i := 144; i < 256; i++ {
		lens[i] = 9
	}
	for i := 256; i < 280; i++ {
		lens[i] = 7
	}
	for i := 280; i < numFixedLit; i++ {
		lens[i] = 8
	}
	return lens
}()

// fixedDistanceLengths is the RFC 1951 §3.2.6 default distance code
// length assignment: every one of the 32 distance codes gets 5 bits. Codes
// 30 and 31 complete the code space; they never decode to a valid distance.
var fixedDistanceLengths = func() [numFixedDist]int {
	var lens [numFixedDist]int
	for i := range lens {
		lens[i] = 5
	}
	return lens
}()
