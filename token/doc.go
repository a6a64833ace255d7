// Package token provides the streaming JSON token reader and writer the
// adapter engine operates on.
//
// The actual JSON grammar work (quoting, escaping, number syntax, structural
// validation) is delegated to jsontext; this package adds what adapters
// need on top of it:
//
//   - a peek-based cursor API (Peek, NextName, NextString, ...)
//   - dotted-path tracking for error reporting, e.g. "$.items[2].id"
//   - the serialize-nulls flag on the writer
//
// Malformed-input errors from jsontext are propagated unchanged.
package token
