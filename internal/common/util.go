// Package common holds small helpers shared by the client packages.
package common

// WipeByteArray zeroes b in place. Used for password buffers once they have
// been copied into a request.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
