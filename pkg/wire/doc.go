// Package wire implements the serial command protocol: frame
// reassembly from the raw byte stream and decoding of command
// payloads.
package wire

// Inbound frames are JSON documents terminated by a single NUL byte:
//
//	{"axisInfo":[1500,1500,1500,1500,1500,1500]}\x00
//
// Outbound frames share the JSON encoding but terminate with a line
// break (see package telemetry).
//
// The assembler is fed one byte at a time and never blocks. A frame
// exceeding the buffer capacity before its terminator is discarded
// entirely and the assembler resynchronizes on the next byte.
//
// Producer: surface station
// Consumer: thruster controller
