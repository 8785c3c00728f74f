// Package parser turns source byte streams into parallel (objects, labels)
// parse results.
//
// Concrete parsers are looked up through a registration-based capability
// table: Register binds a stable string identifier to a factory, and the
// pipeline's configuration surface resolves identifiers through New.
package parser
