// Package table defines the in-memory rectangular dataset the rest of
// dataproj moves between files: ordered named columns of equal length, an
// optional row index, and a nil-cell missing marker.
//
// It also owns the per-column structured/plain classification used by the
// codec and the shared error taxonomy (not found, ambiguous, invalid
// argument) classified via errors.Is.
package table
