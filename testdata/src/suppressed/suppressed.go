package suppressed

var quiet = 1000_000 //nsplint:ignore migrated table id

//nsplint:off
var muted = 1000_000
var alsoMuted = 0xFFFFF_FFFF

//nsplint:on

var loud = 1000_000 // want `NSP001 DEC Invalid`

// nsplint:off reads as prose because of the space.
var prose = 1000_000 // want `NSP001 DEC Invalid`
