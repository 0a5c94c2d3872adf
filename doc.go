package stowatch

// Package stowatch provides:
//
// - A recursive-descent JSON decoder producing a typed Value tree (Parse/ParseBytes)
// - A stable error model via ParseError (code, offending rune/substring, offset)
// - Strict decoding: duplicate object keys, trailing separators, and unbounded
//   nesting are hard errors rather than silent behavior
// - A cheap single-field extractor (ExtractString) for callers that only need
//   one string member out of a larger document
//
// Design policy:
// - Keep only public APIs in the root package; put detailed implementations under internal/.
// - Place the launcher status client under launcher/ and the CLI under cmd/stowatch.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	v, err := stowatch.Parse(`{"server_status":"up"}`)
//	obj, err := v.Members()
//	status, err := obj["server_status"].Text()
//
//	raw, err := stowatch.ExtractString(body, "server_status")
