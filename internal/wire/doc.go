// Package wire implements the byte-level framing of the Mercurial command
// server pipe protocol.
//
// Every frame starts with a one-byte channel tag. The output, error, and
// debug channels carry a big-endian uint32 length followed by that many
// payload bytes; the result, input, and line-input channels carry a single
// big-endian uint32 value. Commands are written as the literal bytes
// "runcommand\n" followed by a big-endian uint32 length and the NUL-joined
// argument blob.
package wire
