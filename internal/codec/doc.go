// Package codec encodes tables to delimited text or JSON files and decodes
// them back, including the schema-free structured-column round-trip: columns
// whose non-missing cells are uniformly lists or mappings are serialized as
// JSON text on write and opportunistically recovered on read.
//
// The heuristic is deliberate about its failure modes. Classification is
// recomputed on every write and never mutates the caller's table; on read, a
// column is only replaced when every one of its cells parses as JSON, so a
// partially JSON-looking column stays plain text. A plain-text column whose
// every cell happens to be valid JSON will be decoded — that is the accepted
// cost of not requiring a schema.
//
// All writes go through a temp-file-and-rename step, so a failed encode never
// leaves a truncated file at the destination. Paths ending in .gz or .zst are
// transparently compressed and decompressed.
package codec
