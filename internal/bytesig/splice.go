package bytesig

import "encoding/binary"

// PutUint32 splices a little-endian uint32 into template at off, returning
// the same slice for chaining. It is used to build synthetic machine-code
// templates (e.g. the immediate operand of a 32-bit PUSH or MOV instruction)
// and, in tests, to construct fixtures for the scanners in
// internal/scanner.
func PutUint32(template []byte, off int, v uint32) []byte {
	binary.LittleEndian.PutUint32(template[off:off+4], v)
	return template
}

// PutInt32 splices a little-endian signed 32-bit displacement into template
// at off.
func PutInt32(template []byte, off int, v int32) []byte {
	return PutUint32(template, off, uint32(v))
}

// Uint32At reads a little-endian uint32 out of buf at off without bounds
// checking beyond what a normal slice index would do.
func Uint32At(buf []byte, off int) uint32 {
	return binary.LittleEndian.Uint32(buf[off : off+4])
}

// Int32At reads a little-endian signed 32-bit value out of buf at off.
func Int32At(buf []byte, off int) int32 {
	return int32(Uint32At(buf, off))
}
