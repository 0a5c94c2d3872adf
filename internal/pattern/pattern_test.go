package pattern

import (
	"bytes"
	"testing"
)

func TestFind(t *testing.T) {
	beg, end, ok := Find([]byte("ab"), []byte("xxabyy"))
	if !ok || beg != 2 || end != 3 {
		t.Fatalf("got beg=%d end=%d ok=%v", beg, end, ok)
	}
	// overlap handling: the match straddles a false start
	beg, end, ok = Find([]byte("ab"), []byte("aab"))
	if !ok || beg != 1 || end != 2 {
		t.Fatalf("got beg=%d end=%d ok=%v", beg, end, ok)
	}
	if _, _, ok = Find([]byte("zz"), []byte("xxabyy")); ok {
		t.Fatalf("expected no match")
	}
	if _, _, ok = Find(nil, []byte("xx")); ok {
		t.Fatalf("empty needle should not match")
	}
}

func TestGzipPayload(t *testing.T) {
	raw := append([]byte("HTTP/1.1 200 OK\r\nContent-Encoding: gzip\r\n\r\n"), GzipMagic...)
	raw = append(raw, 0xde, 0xad)
	payload, ok := GzipPayload(raw)
	if !ok {
		t.Fatalf("expected payload")
	}
	if !bytes.HasPrefix(payload, GzipMagic) {
		t.Fatalf("payload should start at the magic: %x", payload[:3])
	}
	if len(payload) != len(GzipMagic)+2 {
		t.Fatalf("len: %d", len(payload))
	}
	if _, ok := GzipPayload([]byte("plain text")); ok {
		t.Fatalf("expected no payload")
	}
}
