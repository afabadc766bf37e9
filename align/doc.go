// Package align pairs segment sequences from two languages into ordered
// bilingual blocks and composes the final aligned document.
//
// Pairing is strictly positional: the i-th segment of one language pairs
// with the i-th segment of the other. When the sequences differ in length
// the tail of the longer one is kept as blocks with one side absent. This
// simplicity is deliberate and load-bearing: the aligner assumes roughly
// parallel texts and performs no semantic resynchronization, so its output
// is predictable and its failure mode (drift after an omitted sentence) is
// visible rather than silently patched.
package align
