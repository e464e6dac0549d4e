// Package wealthpulse consolidates broker and retirement-account statements
// into a single portfolio snapshot.
//
// Statement files are parsed by the per-institution adapters in the
// statement subpackage, merged by the consolidation engine in this package,
// and persisted as a JSON snapshot that downstream rendering reads.
package wealthpulse
