// Package match pairs extracted images across the two language editions
// and attaches them to aligned text blocks.
//
// Four mutually exclusive strategies are available: inline (no pairing,
// every image stands alone), position (k-th with k-th), page (nearest
// relative position, greedy one-to-one), and proximity (equal or nearby
// aligned-block index). Whatever the strategy, every input image ends up
// exactly once in the output, either inside a matched pair or attached
// unmatched to the nearest block; images are never silently dropped.
// Whether an image renders side by side or full-width is a property of
// the resulting data (both sides present or not), not a separate flag.
package match
