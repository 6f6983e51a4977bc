// Package terminal puts the controlling terminal into raw mode and turns the
// bytes it delivers into key presses.
//
// Reads are bounded by the VTIME timeout installed by EnableRawMode: a read
// with no pending input returns after about 100ms with nothing, which the
// Decoder uses to tell a lone ESC from the start of an escape sequence.
package terminal
