package system

import (
	"image"
	"sync"

	"go.uber.org/atomic"
)

// FramePool recycles *image.RGBA preview frames. Frames are bucketed by
// their exact bounds; a preview renders every frame at one size, so after
// the first few frames no further allocations happen.
type FramePool struct {
	mu      sync.RWMutex
	buckets map[image.Rectangle]*sync.Pool

	allocs atomic.Int64
}

// NewFramePool creates an empty pool.
func NewFramePool() *FramePool {
	return &FramePool{buckets: make(map[image.Rectangle]*sync.Pool)}
}

var frames = NewFramePool()

// GetImage takes a frame with the given bounds from the shared pool.
// Its pixels are undefined; callers clear it before drawing.
func GetImage(rect image.Rectangle) *image.RGBA { return frames.Get(rect) }

// PutImage hands a frame back to the shared pool.
func PutImage(img *image.RGBA) { frames.Put(img) }

// Get returns a frame with bounds rect, allocating one if the bucket is empty.
func (p *FramePool) Get(rect image.Rectangle) *image.RGBA {
	return p.bucket(rect, true).Get().(*image.RGBA)
}

// Put ignores nil frames and sizes this pool never handed out.
func (p *FramePool) Put(img *image.RGBA) {
	if img == nil {
		return
	}
	if b := p.bucket(img.Rect, false); b != nil {
		b.Put(img)
	}
}

// Allocations reports how many frames the pool has had to allocate.
func (p *FramePool) Allocations() int64 { return p.allocs.Load() }

func (p *FramePool) bucket(rect image.Rectangle, create bool) *sync.Pool {
	p.mu.RLock()
	b := p.buckets[rect]
	p.mu.RUnlock()
	if b != nil || !create {
		return b
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if b = p.buckets[rect]; b == nil {
		b = &sync.Pool{New: func() any {
			p.allocs.Inc()
			return image.NewRGBA(rect)
		}}
		p.buckets[rect] = b
	}
	return b
}
