package signature

// windowSize is the number of samples needed to draw one segment.
const windowSize = 4

// window is the rolling buffer of the most recent samples of a stroke.
type window struct {
	samples [windowSize]Sample
	n       int
}

func (w *window) len() int { return w.n }

func (w *window) full() bool { return w.n == windowSize }

// push appends s. It reports false, leaving the window unchanged, if the
// window is already full.
func (w *window) push(s Sample) bool {
	if w.full() {
		return false
	}
	w.samples[w.n] = s
	w.n++
	return true
}

// evict drops the oldest sample.
func (w *window) evict() {
	if w.n == 0 {
		return
	}
	copy(w.samples[:], w.samples[1:w.n])
	w.n--
	w.samples[w.n] = Sample{}
}

func (w *window) at(i int) Sample { return w.samples[i] }

func (w *window) reset() { *w = window{} }
