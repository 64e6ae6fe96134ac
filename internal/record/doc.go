// Package record defines the typed records of a Hypernomicon database that
// the extractor works on: debates, positions and arguments. Each collection is
// a separate tagged type with its required and optional attributes spelled
// out, so a missing display name or a dangling parent reference is an
// explicit, testable condition instead of an ad hoc attribute lookup.
//
// Identifiers are unique only inside their own collection. A position and an
// argument may share the same numeric id.
package record
