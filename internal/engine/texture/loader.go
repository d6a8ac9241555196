package texture

import (
	"context"
	"image"
	"sync"

	"go.uber.org/zap"

	"github.com/Faultbox/earthview/internal/logger"
)

// Fetcher returns the raw bytes behind a source.
type Fetcher interface {
	Load(ctx context.Context, source string) ([]byte, error)
}

// Request names one texture to load.
type Request struct {
	Key    string
	Source string
}

// Result is the outcome of one Request. Exactly one of Image and Err is set.
type Result struct {
	Key    string
	Source string
	Image  *image.RGBA
	Err    error
}

// Loader fetches and decodes textures in the background. Results are
// handed back to the caller's thread through Drain, so whoever owns the
// GL context decides when uploads happen.
type Loader struct {
	fetcher Fetcher
	maxSize int

	ctx     context.Context
	cancel  context.CancelFunc
	results chan Result
	wg      sync.WaitGroup

	// Only touched by the draining goroutine.
	pending int
}

// NewLoader creates a loader. maxSize caps decoded dimensions (0 = no cap).
func NewLoader(fetcher Fetcher, maxSize int) *Loader {
	ctx, cancel := context.WithCancel(context.Background())
	return &Loader{
		fetcher: fetcher,
		maxSize: maxSize,
		ctx:     ctx,
		cancel:  cancel,
		results: make(chan Result, 8),
	}
}

// Start launches one goroutine per request.
func (l *Loader) Start(reqs ...Request) {
	for _, req := range reqs {
		l.pending++
		l.wg.Add(1)
		go func(req Request) {
			defer l.wg.Done()
			res := l.load(req)
			select {
			case l.results <- res:
			case <-l.ctx.Done():
			}
		}(req)
	}
}

func (l *Loader) load(req Request) Result {
	res := Result{Key: req.Key, Source: req.Source}

	data, err := l.fetcher.Load(l.ctx, req.Source)
	if err != nil {
		res.Err = err
		return res
	}

	img, err := Decode(data, req.Source)
	if err != nil {
		res.Err = err
		return res
	}

	res.Image = Downscale(img, l.maxSize)
	if res.Image != img {
		logger.Debug("texture downscaled",
			zap.String("key", req.Key),
			zap.Int("from", img.Bounds().Dx()),
			zap.Int("to", res.Image.Bounds().Dx()),
		)
	}
	return res
}

// Pending returns how many started requests have not been drained yet.
func (l *Loader) Pending() int {
	return l.pending
}

// Drain hands every finished result to apply without blocking.
func (l *Loader) Drain(apply func(Result)) int {
	n := 0
	for {
		select {
		case res := <-l.results:
			l.pending--
			n++
			apply(res)
		default:
			return n
		}
	}
}

// Close cancels outstanding fetches and waits for their goroutines.
func (l *Loader) Close() {
	l.cancel()
	l.wg.Wait()
}
