// Package extract turns source files into the flat documents the
// alignment pipeline consumes. It reads plain text directly, unpacks
// EPUB archives chapter by chapter, and delegates PDF parsing to the
// tabula library. Each extractor produces the full text plus every
// embedded image with its relative position in reading order.
package extract
