package radar

import (
	"sync"
	"time"
)

// DefaultFrameInterval is the autoplay tick period.
const DefaultFrameInterval = 500 * time.Millisecond

// Player steps through a radar timeline's frames, either by explicit seeks
// or by a periodic autoplay tick. It holds the concatenated past+nowcast
// frame list, the current index, and the playback flag.
//
// All operations degrade to no-ops on an empty frame list; there are no
// error states. Play is idempotent, and Stop returns only after the tick
// goroutine has exited, so no Advance can land after Stop.
type Player struct {
	mu       sync.Mutex
	frames   []Frame
	index    int
	playing  bool
	interval time.Duration

	stopTick chan struct{}
	tickDone chan struct{}
}

// NewPlayer creates a stopped Player positioned on the most recent
// historical frame of the given timeline.
func NewPlayer(t Timeline) *Player {
	p := &Player{interval: DefaultFrameInterval}
	p.Replace(t)
	return p
}

// Replace swaps in a fresh timeline wholesale. The index resets to the last
// past frame; a stale index into a differently aligned frame list carries
// no meaning. The playback flag is left as-is.
func (p *Player) Replace(t Timeline) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.frames = t.AllFrames()
	p.index = len(t.Past) - 1
	if p.index < 0 {
		p.index = 0
	}
}

// Advance steps to the next frame, wrapping past the final nowcast frame
// back to the first past frame.
func (p *Player) Advance() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if len(p.frames) == 0 {
		return
	}
	p.index = (p.index + 1) % len(p.frames)
}

// Seek jumps to the given frame index, clamped to the valid range. An
// explicit seek interrupts autoplay.
func (p *Player) Seek(i int) {
	p.mu.Lock()
	n := len(p.frames)
	if n > 0 {
		if i < 0 {
			i = 0
		}
		if i > n-1 {
			i = n - 1
		}
		p.index = i
	}
	playing := p.playing
	p.mu.Unlock()

	if playing {
		p.Stop()
	}
}

// TogglePlayback flips between playing and stopped.
func (p *Player) TogglePlayback() {
	p.mu.Lock()
	playing := p.playing
	p.mu.Unlock()

	if playing {
		p.Stop()
	} else {
		p.Play()
	}
}

// Play starts the autoplay tick. Calling Play while already playing does
// nothing; there is never more than one tick goroutine.
func (p *Player) Play() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.playing {
		return
	}
	p.playing = true
	p.stopTick = make(chan struct{})
	p.tickDone = make(chan struct{})
	go p.tickLoop(p.stopTick, p.tickDone)
}

// Stop halts autoplay and waits for the tick goroutine to exit before
// returning.
func (p *Player) Stop() {
	p.mu.Lock()
	if !p.playing {
		p.mu.Unlock()
		return
	}
	p.playing = false
	stop, done := p.stopTick, p.tickDone
	p.stopTick, p.tickDone = nil, nil
	p.mu.Unlock()

	close(stop)
	<-done
}

// Close is the mandatory teardown: it stops any running tick so the player
// does not leak a timer that keeps it alive.
func (p *Player) Close() {
	p.Stop()
}

func (p *Player) tickLoop(stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			// A tick racing a concurrent Stop must not advance.
			select {
			case <-stop:
				return
			default:
			}
			p.Advance()
		}
	}
}

// Index returns the current frame index.
func (p *Player) Index() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.index
}

// IsPlaying reports whether autoplay is running.
func (p *Player) IsPlaying() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.playing
}

// FrameCount returns the number of frames in the timeline.
func (p *Player) FrameCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.frames)
}

// CurrentFrame returns the frame under the cursor, if any.
func (p *Player) CurrentFrame() (Frame, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.index < 0 || p.index >= len(p.frames) {
		return Frame{}, false
	}
	return p.frames[p.index], true
}
