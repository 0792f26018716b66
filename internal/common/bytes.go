package common

// WipeByteArray zeroes buf in place. Callers use it to scrub passwords
// from memory once they are no longer needed.
func WipeByteArray(buf []byte) {
	for i := range buf {
		buf[i] = 0
	}
}
