package match

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/tsawler/interleave/model"
)

// ErrUnknownMode reports an unrecognized image match mode. This is a
// configuration error and surfaces as a hard failure, unlike data
// irregularities which degrade to unmatched images.
var ErrUnknownMode = errors.New("match: unknown image match mode")

// Mode selects the image matching strategy.
type Mode int

const (
	// Inline attaches each image to a block on its own, with no
	// cross-language pairing.
	Inline Mode = iota
	// Position pairs the k-th image of one language with the k-th of
	// the other, regardless of location.
	Position
	// Page pairs images by nearest relative position in the document,
	// with greedy one-to-one assignment.
	Page
	// Proximity pairs images whose nearest aligned-block indices are
	// equal, or within a configurable tolerance window.
	Proximity
)

// String returns the mode's configuration name.
func (m Mode) String() string {
	switch m {
	case Inline:
		return "inline"
	case Position:
		return "position"
	case Page:
		return "page"
	case Proximity:
		return "proximity"
	default:
		return "unknown"
	}
}

// Valid reports whether the mode is a recognized value.
func (m Mode) Valid() bool {
	return m >= Inline && m <= Proximity
}

// ParseMode converts a configuration string to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "inline":
		return Inline, nil
	case "position":
		return Position, nil
	case "page":
		return Page, nil
	case "proximity":
		return Proximity, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// DefaultMaxDrift is the default page-mode cap on the relative-position
// distance between paired images, as a fraction of document length.
const DefaultMaxDrift = 0.10

// Config holds the image matching parameters.
type Config struct {
	// Mode is the matching strategy.
	Mode Mode

	// MaxDrift caps the position distance for page-mode pairs. Values
	// <= 0 select DefaultMaxDrift. A language-1 image whose nearest
	// available counterpart lies further than this stays unmatched.
	MaxDrift float64

	// Tolerance is the proximity-mode block-index window. Zero pairs
	// only images on the same block.
	Tolerance int
}

// DefaultConfig returns the default matching parameters (page mode drift
// cap, zero proximity tolerance).
func DefaultConfig() Config {
	return Config{Mode: Position, MaxDrift: DefaultMaxDrift}
}

// Attach distributes the two image lists across the aligned blocks
// according to the configured strategy. It returns a new block slice; the
// input blocks are not modified. Every input image appears exactly once in
// the result. When there are images but no blocks, a single empty block is
// synthesized to hold them.
func Attach(blocks []model.AlignedBlock, images1, images2 []model.Image, cfg Config) ([]model.AlignedBlock, error) {
	if !cfg.Mode.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMode, int(cfg.Mode))
	}
	if len(images1) == 0 && len(images2) == 0 {
		return blocks, nil
	}

	out := make([]model.AlignedBlock, len(blocks))
	copy(out, blocks)
	if len(out) == 0 {
		out = []model.AlignedBlock{{}}
	}

	switch cfg.Mode {
	case Inline:
		attachInline(out, images1, images2)
	case Position:
		attachByPosition(out, images1, images2)
	case Page:
		attachByPage(out, images1, images2, cfg)
	case Proximity:
		attachByProximity(out, images1, images2, cfg)
	}
	return out, nil
}

// attachInline places every image on its own, full-width, at the block
// nearest its relative position.
func attachInline(blocks []model.AlignedBlock, images1, images2 []model.Image) {
	for _, img := range images1 {
		place(blocks, img.Position, model.ImagePair{Image1: ref(img)})
	}
	for _, img := range images2 {
		place(blocks, img.Position, model.ImagePair{Image2: ref(img)})
	}
}

// attachByPosition pairs index-for-index; tail leftovers stay unmatched.
func attachByPosition(blocks []model.AlignedBlock, images1, images2 []model.Image) {
	n := len(images1)
	if len(images2) < n {
		n = len(images2)
	}
	for k := 0; k < n; k++ {
		place(blocks, images1[k].Position, model.ImagePair{
			Image1:     ref(images1[k]),
			Image2:     ref(images2[k]),
			Confidence: model.ConfidenceExact,
		})
	}
	for _, img := range images1[n:] {
		place(blocks, img.Position, model.ImagePair{Image1: ref(img)})
	}
	for _, img := range images2[n:] {
		place(blocks, img.Position, model.ImagePair{Image2: ref(img)})
	}
}

// attachByPage pairs each language-1 image with the closest available
// language-2 image by relative position. Assignment is greedy in
// increasing order of language-1 position: once a language-2 image is
// consumed it cannot be reused, and ties break toward the earlier
// extraction index. A nearest candidate further than the drift cap leaves
// the image unmatched rather than forcing an implausible pair.
func attachByPage(blocks []model.AlignedBlock, images1, images2 []model.Image, cfg Config) {
	drift := cfg.MaxDrift
	if drift <= 0 {
		drift = DefaultMaxDrift
	}

	order := make([]int, len(images1))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		ia, ib := images1[order[a]], images1[order[b]]
		if ia.Position != ib.Position {
			return ia.Position < ib.Position
		}
		return ia.Index < ib.Index
	})

	used := make([]bool, len(images2))
	partner := make(map[int]int, len(images1))
	for _, a := range order {
		best, bestDist := -1, math.Inf(1)
		for b := range images2 {
			if used[b] {
				continue
			}
			d := math.Abs(images1[a].Position - images2[b].Position)
			if d < bestDist || (d == bestDist && best >= 0 && images2[b].Index < images2[best].Index) {
				best, bestDist = b, d
			}
		}
		if best >= 0 && bestDist <= drift {
			used[best] = true
			partner[a] = best
		}
	}

	for a, img := range images1 {
		if b, ok := partner[a]; ok {
			place(blocks, img.Position, model.ImagePair{
				Image1:     ref(img),
				Image2:     ref(images2[b]),
				Confidence: model.ConfidenceInferred,
			})
			continue
		}
		place(blocks, img.Position, model.ImagePair{Image1: ref(img)})
	}
	for b, img := range images2 {
		if !used[b] {
			place(blocks, img.Position, model.ImagePair{Image2: ref(img)})
		}
	}
}

// attachByProximity associates each image with the aligned-block index
// nearest its extraction point in its own language, then pairs images
// whose indices are equal or within the tolerance window. Equal indices
// yield an exact match; a nonzero window yields an inferred one.
func attachByProximity(blocks []model.AlignedBlock, images1, images2 []model.Image, cfg Config) {
	tol := cfg.Tolerance
	if tol < 0 {
		tol = 0
	}

	idx1 := make([]int, len(images1))
	for i, img := range images1 {
		idx1[i] = blockIndex(img.Position, len(blocks))
	}
	idx2 := make([]int, len(images2))
	for i, img := range images2 {
		idx2[i] = blockIndex(img.Position, len(blocks))
	}

	used := make([]bool, len(images2))
	for a, img := range images1 {
		best, bestDist := -1, tol+1
		for b := range images2 {
			if used[b] {
				continue
			}
			d := idx1[a] - idx2[b]
			if d < 0 {
				d = -d
			}
			if d < bestDist {
				best, bestDist = b, d
			}
		}
		if best >= 0 {
			used[best] = true
			conf := model.ConfidenceInferred
			if idx1[a] == idx2[best] {
				conf = model.ConfidenceExact
			}
			blocks[idx1[a]].Images = append(blocks[idx1[a]].Images, model.ImagePair{
				Image1:     ref(img),
				Image2:     ref(images2[best]),
				Confidence: conf,
			})
			continue
		}
		blocks[idx1[a]].Images = append(blocks[idx1[a]].Images, model.ImagePair{Image1: ref(img)})
	}
	for b, img := range images2 {
		if !used[b] {
			blocks[idx2[b]].Images = append(blocks[idx2[b]].Images, model.ImagePair{Image2: ref(img)})
		}
	}
}

// blockIndex maps a relative position in [0,1] to a block index.
func blockIndex(pos float64, n int) int {
	idx := int(pos * float64(n))
	if idx < 0 {
		return 0
	}
	if idx >= n {
		return n - 1
	}
	return idx
}

// place appends a pair to the block nearest the given relative position.
func place(blocks []model.AlignedBlock, pos float64, pair model.ImagePair) {
	i := blockIndex(pos, len(blocks))
	blocks[i].Images = append(blocks[i].Images, pair)
}

func ref(img model.Image) *model.Image {
	c := img
	return &c
}
