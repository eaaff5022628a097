package utils

import "bytes"

// sniffLength defines the maximum number of bytes inspected when detecting binary content.
const sniffLength = 8000

// IsBinary reports whether the provided byte slice appears to contain binary
// data. A NUL byte within the sniffed prefix is treated as conclusive; text in
// a legacy single-byte encoding never contains NUL and still decodes.
func IsBinary(data []byte) bool {
	if len(data) == 0 {
		return false
	}
	sniffed := data
	if len(sniffed) > sniffLength {
		sniffed = sniffed[:sniffLength]
	}
	return bytes.IndexByte(sniffed, 0) >= 0
}
