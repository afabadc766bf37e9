// Package model defines the data types shared by the interleave pipeline:
// the extracted Document for each language, the structured front/main/back
// split, text Segments, and the AlignedDocument produced for rendering.
//
// All types in this package are plain values. They are created once by the
// stage that owns them and are read-only afterwards; no type here carries
// behavior beyond small accessors.
package model
