package qqwry

import (
	"golang.org/x/text/encoding/simplifiedchinese"
)

// decodeGBK converts raw GBK bytes to a UTF-8 string. The decode never
// fails: x/text decoders substitute U+FFFD for invalid input, and the
// raw bytes are returned as-is in the unreachable error case.
func decodeGBK(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	out, err := simplifiedchinese.GBK.NewDecoder().Bytes(b)
	if err != nil {
		return string(b)
	}
	return string(out)
}
