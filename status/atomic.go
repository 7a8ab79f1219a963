package status

import (
	"math"
	"sync/atomic"
)

// MaxLabelLen caps stored label text so overlay rows stay on one line
const MaxLabelLen = 32

// Float is an atomic float64; the zero value reads 0.0
type Float struct {
	bits atomic.Uint64
}

func (f *Float) Set(v float64) { f.bits.Store(math.Float64bits(v)) }

func (f *Float) Get() float64 { return math.Float64frombits(f.bits.Load()) }

// Add adds delta with a CAS loop and returns the new value
func (f *Float) Add(delta float64) float64 {
	for {
		old := f.bits.Load()
		next := math.Float64frombits(old) + delta
		if f.bits.CompareAndSwap(old, math.Float64bits(next)) {
			return next
		}
	}
}

// Label is an atomic string truncated to MaxLabelLen
type Label struct {
	ptr atomic.Pointer[string]
}

func (l *Label) Set(v string) {
	if len(v) > MaxLabelLen {
		v = v[:MaxLabelLen]
	}
	l.ptr.Store(&v)
}

func (l *Label) Get() string {
	if p := l.ptr.Load(); p != nil {
		return *p
	}
	return ""
}
