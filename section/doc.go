// Package section defines the fixed-size on-disk sections of an archive
// blob: the header and the per-series index entries. All multi-byte fields
// are little-endian.
package section
