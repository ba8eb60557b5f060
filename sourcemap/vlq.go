package sourcemap

import "fmt"

// base64Chars is the standard base64 alphabet used by VLQ mapping segments.
const base64Chars = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

// charToInt is the reverse lookup for base64Chars; -1 marks invalid bytes.
var charToInt = func() [256]int8 {
	var table [256]int8
	for i := range table {
		table[i] = -1
	}
	for i := 0; i < len(base64Chars); i++ {
		table[base64Chars[i]] = int8(i)
	}
	return table
}()

// appendVLQ appends the base64 VLQ encoding of value to dst.
// The sign lives in the least significant bit of the first digit;
// continuation is signalled by bit 5 of each digit.
func appendVLQ(dst []byte, value int) []byte {
	var v uint
	if value < 0 {
		v = (uint(-value) << 1) | 1
	} else {
		v = uint(value) << 1
	}
	for {
		digit := v & 31
		v >>= 5
		if v != 0 {
			digit |= 32
		}
		dst = append(dst, base64Chars[digit])
		if v == 0 {
			return dst
		}
	}
}

// decodeVLQ decodes one VLQ value from s starting at pos, returning the
// value and the index of the first byte after it.
func decodeVLQ(s string, pos int) (value, next int, err error) {
	var (
		result uint
		shift  uint
	)
	for {
		if pos >= len(s) {
			return 0, 0, fmt.Errorf("truncated VLQ value at offset %d", pos)
		}
		digit := charToInt[s[pos]]
		if digit < 0 {
			return 0, 0, fmt.Errorf("invalid VLQ character %q at offset %d", s[pos], pos)
		}
		pos++
		result |= uint(digit&31) << shift
		if digit&32 == 0 {
			break
		}
		shift += 5
	}
	if result&1 != 0 {
		return -int(result >> 1), pos, nil
	}
	return int(result >> 1), pos, nil
}
