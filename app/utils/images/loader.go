package images

import (
	"context"
	"io"
	"net/http"
	"sync"
	"time"
)

// maxProbeBytes caps how much of the origin image is read when looking for
// an EXIF chunk.
const maxProbeBytes = 2 << 20

// Loader tracks the presentation state of one image slot: which of the CDN,
// origin, and placeholder URLs should currently be shown, and what rotation
// applies. A slot can be re-pointed at a new source; probe results from a
// superseded source are discarded.
type Loader struct {
	mu sync.Mutex

	client     *http.Client
	enableExif bool
	blur       bool

	res       Resolution
	gen       int
	cancel    context.CancelFunc
	probeDone chan struct{}

	originalLoaded bool
	failed         bool
	exifDeg        int
	exifSet        bool
	dimDeg         int
}

// Presentation is a point-in-time snapshot handed to the template / JSON
// layer.
type Presentation struct {
	DisplayURL string `json:"display_url"`
	Rotation   int    `json:"rotation"`
	Blur       bool   `json:"blur"`
	Loaded     bool   `json:"loaded"`
	Failed     bool   `json:"failed"`
}

// NewLoader builds a loader. A nil client falls back to a 10 second default,
// matching the outbound clients elsewhere in the app.
func NewLoader(client *http.Client, enableExif, blur bool) *Loader {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	closed := make(chan struct{})
	close(closed)
	return &Loader{client: client, enableExif: enableExif, blur: blur, probeDone: closed}
}

// SetSource points the loader at a new resolution, resetting every flag so
// a recycled slot never shows stale state. Any in-flight probe for the
// previous source is cancelled and its result ignored.
func (l *Loader) SetSource(ctx context.Context, res Resolution) {
	l.mu.Lock()
	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
	l.gen++
	gen := l.gen
	l.res = res
	l.originalLoaded = false
	l.failed = false
	l.exifDeg = 0
	l.exifSet = false
	l.dimDeg = 0

	if !res.Progressive() {
		// single URL, nothing to swap: treat as loaded immediately
		l.originalLoaded = true
		closed := make(chan struct{})
		close(closed)
		l.probeDone = closed
		l.mu.Unlock()
		return
	}

	probeCtx, cancel := context.WithCancel(ctx)
	l.cancel = cancel
	done := make(chan struct{})
	l.probeDone = done
	origin := res.Origin
	wantExif := l.enableExif && IsWebP(res.Source)
	l.mu.Unlock()

	go func() {
		defer close(done)
		body, ok := l.probe(probeCtx, origin, wantExif)

		l.mu.Lock()
		defer l.mu.Unlock()
		if l.gen != gen {
			// source changed while the probe was in flight
			return
		}
		if !ok {
			// probe failed: stay on the CDN rendition indefinitely
			return
		}
		l.originalLoaded = true
		if wantExif {
			if deg, found := ParseExifOrientation(body); found {
				l.exifDeg = deg
				l.exifSet = true
			}
		}
	}()
}

func (l *Loader) probe(ctx context.Context, url string, wantBody bool) ([]byte, bool) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, false
	}
	resp, err := l.client.Do(req)
	if err != nil {
		return nil, false
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, false
	}
	if !wantBody {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxProbeBytes))
		return nil, true
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxProbeBytes))
	if err != nil {
		return nil, false
	}
	return body, true
}

// Wait blocks until the current probe has settled. Test hook and a
// convenience for synchronous render paths.
func (l *Loader) Wait() {
	l.mu.Lock()
	done := l.probeDone
	l.mu.Unlock()
	<-done
}

// MarkError records that the currently displayed image failed to render;
// the slot falls back to the placeholder and stops swapping.
func (l *Loader) MarkError() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.failed = true
	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
}

// ObserveDimensions feeds back the natural size of the rendered image. A
// landscape frame gets a supplementary 90 degree rotation guess; an EXIF
// tag, when present, always wins over this heuristic.
func (l *Loader) ObserveDimensions(width, height int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if width > height {
		l.dimDeg = 90
	} else {
		l.dimDeg = 0
	}
}

// DisplayURL returns the URL the slot should currently render.
func (l *Loader) DisplayURL() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.displayURLLocked()
}

func (l *Loader) displayURLLocked() string {
	if l.failed {
		return PlaceholderPath
	}
	if l.originalLoaded {
		return l.res.Origin
	}
	return l.res.CDN
}

// Rotation returns the rotation to apply, EXIF first, dimension heuristic
// as fallback.
func (l *Loader) Rotation() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rotationLocked()
}

func (l *Loader) rotationLocked() int {
	if l.exifSet && l.exifDeg != 0 {
		return l.exifDeg
	}
	return l.dimDeg
}

// Snapshot returns the full presentation state. Blur only applies while the
// low-quality rendition is showing during a real progressive load.
func (l *Loader) Snapshot() Presentation {
	l.mu.Lock()
	defer l.mu.Unlock()
	return Presentation{
		DisplayURL: l.displayURLLocked(),
		Rotation:   l.rotationLocked(),
		Blur:       l.blur && l.res.Progressive() && !l.originalLoaded && !l.failed,
		Loaded:     l.originalLoaded,
		Failed:     l.failed,
	}
}

// Close cancels any in-flight probe.
func (l *Loader) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
}
