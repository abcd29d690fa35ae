package forms

import "sync"

// cleanable is the hook NextFrame drives on every registered store.
type cleanable interface {
	Cleanup(currentFrame uint64)
}

// Every FrameStore registers itself here so one NextFrame call sweeps
// them all. The counter is shared package state, like the stores.
var (
	cleanupList  []cleanable
	cleanupMu    sync.Mutex
	currentFrame uint64
)

func registerStore(s cleanable) {
	cleanupMu.Lock()
	cleanupList = append(cleanupList, s)
	cleanupMu.Unlock()
}

// NextFrame advances the frame counter and sweeps every registered store.
// Form.Update calls it once per frame; entries not touched since the
// previous frame are dropped.
func NextFrame() {
	currentFrame++
	cleanupMu.Lock()
	stores := cleanupList
	cleanupMu.Unlock()

	for _, s := range stores {
		s.Cleanup(currentFrame)
	}
}

// CurrentFrameCount returns the frame counter.
func CurrentFrameCount() uint64 {
	return currentFrame
}

type storeEntry[T any] struct {
	value     T
	lastFrame uint64
}

// FrameStore caches per-frame derived values and drops entries that stop
// being recomputed. The package keeps one for text measurements;
// applications can create their own for expensive derivations:
//
//	var glyphRunStore = forms.NewFrameStore[GlyphRun]()
//
//	func shapedRun(f forms.Font, text string) GlyphRun {
//	    key := forms.HashString(text)
//	    if run := glyphRunStore.GetIfExists(key); run != nil {
//	        return *run
//	    }
//	    ...
//	}
//
// Values must be recomputable: keys are hashes and collisions, while
// vanishingly rare, are possible.
type FrameStore[T any] struct {
	entries map[ID]*storeEntry[T]
	mu      sync.RWMutex
}

// NewFrameStore creates a store and registers it for the NextFrame sweep.
// Create stores once, at package level.
func NewFrameStore[T any]() *FrameStore[T] {
	s := &FrameStore[T]{entries: make(map[ID]*storeEntry[T])}
	registerStore(s)
	return s
}

// touch marks an existing entry used this frame and returns its value.
func (s *FrameStore[T]) touch(id ID) *T {
	s.mu.RLock()
	e, ok := s.entries[id]
	s.mu.RUnlock()
	if !ok {
		return nil
	}
	s.mu.Lock()
	e.lastFrame = currentFrame
	s.mu.Unlock()
	return &e.value
}

// Get returns the value under id, creating it from defaultVal when absent.
// The returned pointer is writable and the entry counts as used this
// frame. Safe for concurrent use.
func (s *FrameStore[T]) Get(id ID, defaultVal T) *T {
	if v := s.touch(id); v != nil {
		return v
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	// Racing creators both miss touch; only the first one lands here
	// before the entry exists.
	if e, ok := s.entries[id]; ok {
		e.lastFrame = currentFrame
		return &e.value
	}
	e := &storeEntry[T]{value: defaultVal, lastFrame: currentFrame}
	s.entries[id] = e
	return &e.value
}

// GetIfExists returns the value under id, or nil. It neither creates an
// entry nor marks one used, so probing does not extend a lifetime.
func (s *FrameStore[T]) GetIfExists(id ID) *T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if e, ok := s.entries[id]; ok {
		return &e.value
	}
	return nil
}

// Set stores value under id and marks the entry used this frame.
func (s *FrameStore[T]) Set(id ID, value T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok := s.entries[id]; ok {
		e.value = value
		e.lastFrame = currentFrame
		return
	}
	s.entries[id] = &storeEntry[T]{value: value, lastFrame: currentFrame}
}

// Delete removes the entry under id, if any.
func (s *FrameStore[T]) Delete(id ID) {
	s.mu.Lock()
	delete(s.entries, id)
	s.mu.Unlock()
}

// Cleanup drops entries not touched since the previous frame. NextFrame
// calls it after incrementing the counter, hence the frame-1 threshold.
func (s *FrameStore[T]) Cleanup(frame uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	threshold := frame - 1
	for id, e := range s.entries {
		if e.lastFrame < threshold {
			delete(s.entries, id)
		}
	}
}

// Len returns the number of live entries.
func (s *FrameStore[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Clear drops every entry immediately.
func (s *FrameStore[T]) Clear() {
	s.mu.Lock()
	s.entries = make(map[ID]*storeEntry[T])
	s.mu.Unlock()
}
