package backtrack

// A search stops consulting its prefilter once the candidates turn out to be
// dense: after trackerWarmup candidates, fewer than trackerMinSkip bytes
// skipped per candidate on average. The rest of the window is scanned position
// by position.
const (
	trackerWarmup  = 64
	trackerMinSkip = 4
)

// tracker measures how far a prefilter moves the scan per candidate during
// one Execute call.
type tracker struct {
	candidates int
	skipped    int
	active     bool
}

func (t *tracker) reset(active bool) {
	*t = tracker{active: active}
}

// observe records a candidate at pos returned by a Find that started at from.
func (t *tracker) observe(from, pos int) {
	t.candidates++
	t.skipped += pos - from
	if t.candidates >= trackerWarmup && t.skipped < t.candidates*trackerMinSkip {
		t.active = false
	}
}
