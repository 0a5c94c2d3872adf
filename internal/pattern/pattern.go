// Package pattern implements first-occurrence byte pattern searches shared by
// the single-field JSON extractor and the launcher's gzip payload sniffing.
package pattern

import "bytes"

// GzipMagic is the gzip stream magic followed by the DEFLATE method byte.
var GzipMagic = []byte{0x1f, 0x8b, 0x08}

// HeaderBreakGzip matches the end of HTTP headers (CRLF CRLF) immediately
// followed by the gzip magic, marking where a compressed body begins inside
// a raw response.
var HeaderBreakGzip = []byte{0x0d, 0x0a, 0x0d, 0x0a, 0x1f, 0x8b}

// Find reports the byte offsets of the first occurrence of needle in
// haystack: beg is the first matched byte, end the last.
func Find(needle, haystack []byte) (beg, end int, ok bool) {
	if len(needle) == 0 {
		return 0, 0, false
	}
	i := bytes.Index(haystack, needle)
	if i < 0 {
		return 0, 0, false
	}
	return i, i + len(needle) - 1, true
}

// GzipPayload returns the trailing slice of data beginning at the first gzip
// magic marker.
func GzipPayload(data []byte) ([]byte, bool) {
	beg, _, ok := Find(GzipMagic, data)
	if !ok {
		return nil, false
	}
	return data[beg:], true
}
