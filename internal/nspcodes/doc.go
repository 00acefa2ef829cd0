// Package nspcodes defines the canonical NSP-series diagnostic codes emitted
// by nsplint.
//
// Every numeral family owns a ten-wide code slot, so downstream tooling can
// filter or suppress findings by family prefix:
//
//	001–009  decimal literals
//	011–019  binary literals
//	021–029  octal literals
//	031–039  hexadecimal literals
//	041–049  point float literals (reserved, validation not implemented)
//	051–059  exponent float literals (reserved, validation not implemented)
//
// Only the first code of each slot is in use today. The diagnostic text is
// fixed as "<code> <family mnemonic> Invalid":
//
//	nspcodes.NSP001Decimal.Message()     → "NSP001 DEC Invalid"
//	nspcodes.NSP031Hexadecimal.Message() → "NSP031 HEX Invalid"
//
// Codes are stable; never renumber existing ones.
package nspcodes
