package a

// Every digit group here obeys its family width.
var (
	invoiceTotal = 1_000_000
	batchSize    = 10_000
	retries      = 10
	percent      = 100
	flagMask     = 0b1010_1111
	flagBit      = 0b1
	fileMode     = 0o7_7777
	pageLimit    = 0xF_FFFF
	wordMask     = 0xFFFF
	lookalike    = 0x1e10
	quarterScale = 0x1p-2
	samplePeriod = 1_000i
)

// Broken groupings.
var (
	wrongLead   = 1000_000     // want `NSP001 DEC Invalid`
	wrongTail   = 10_00        // want `NSP001 DEC Invalid`
	unseparated = 1000000      // want `NSP001 DEC Invalid`
	legacyOctal = 0777         // want `NSP001 DEC Invalid`
	brokenBits  = 0b101_0_1111 // want `NSP011 BIN Invalid`
	brokenMode  = 0o77_77      // want `NSP021 OCT Invalid`
	brokenMask  = 0xFFFFF_FFFF // want `NSP031 HEX Invalid`
	brokenExp   = 0x1.8p3      // want `NSP031 HEX Invalid`
	brokenImag  = 10_00i       // want `NSP001 DEC Invalid`
)

// Non-numeric literal kinds are never inspected, whatever their text spells.
var (
	label   = "1000_000"
	divider = '_'
)

const budget = 12_500_000

func total() int {
	return budget + invoiceTotal + batchSize + retries + percent
}
