package pngenc

// Variant selects which of the three historical encoder implementations
// produces the PNG (spec.md §9, "Three parallel implementations").
type Variant int

const (
	// V2 emits the sub filter for every row and a same-scanline literal
	// run-length back-reference scheme.
	V2 Variant = iota
	// V3 emits no filter and searches for matches across the current
	// and immediately preceding row only.
	V3
	// V4 picks a filter per row via the minimum-sum-of-absolute-differences
	// heuristic and searches for matches with a hash-chain matcher. It
	// runs single-threaded.
	V4
	// V4MC is V4 sharded across a worker pool of row bands, each
	// independently filtered and matched, then joined into one deflate
	// block.
	V4MC
)

func (v Variant) String() string {
	switch v {
	case V2:
		return "V2"
	case V3:
		return "V3"
	case V4:
		return "V4"
	case V4MC:
		return "V4MC"
	default:
		return "unknown"
	}
}

// Event reports one unit of encode progress: a completed row band under
// V4MC, a completed row under V2 and V3, or the single completed pass
// under V4.
type Event struct {
	Band, Total int
}

// Options configures Encode.
type Options struct {
	Variant Variant
	// Workers bounds concurrency for V4MC; ignored otherwise. <= 0 means
	// runtime.NumCPU(), which Encode picks itself.
	Workers int
	// Bands sets the number of row bands for V4MC; defaults to Workers
	// when <= 0, matching the single-shard-per-worker common case.
	Bands int
	// Progress, if non-nil, is called after each band (V4MC), after each
	// row (V2, V3) or once (V4) completes. The Go equivalent of the external
	// timing/diagnostic collaborator spec.md places out of scope for the
	// encoder itself — wired here as an optional observability hook.
	Progress func(Event)
}
