package invis

import (
	"context"
	"errors"
	"sync"
)

// ErrSuperseded is returned by Navigate when a later Navigate started
// before this one finished. Its result was discarded.
var ErrSuperseded = errors.New("navigation superseded")

// PageState is the lifecycle of the article page's current slug
type PageState int

const (
	PageIdle PageState = iota
	PageLoading
	PageReady
	PageNotFound
)

func (s PageState) String() string {
	switch s {
	case PageIdle:
		return "idle"
	case PageLoading:
		return "loading"
	case PageReady:
		return "ready"
	case PageNotFound:
		return "not_found"
	default:
		return "unknown"
	}
}

// PageSnapshot is the committed state of an ArticlePage
type PageSnapshot struct {
	Slug  string
	State PageState
	View  *ArticleView
}

// ArticlePage holds the article being viewed. Each Navigate takes a
// generation ticket; only the holder of the latest ticket may commit, so a
// slow load for an old slug never overwrites a newer one.
type ArticlePage struct {
	loader ArticleLoader
	opts   ViewOptions

	mu         sync.Mutex
	generation uint64
	current    PageSnapshot
}

// NewArticlePage creates an idle page
func NewArticlePage(loader ArticleLoader, opts ViewOptions) *ArticlePage {
	return &ArticlePage{loader: loader, opts: opts}
}

// Navigate loads the collection and builds the view for slug. The page is
// in PageLoading until the load completes. If another Navigate began in the
// meantime the result is dropped and ErrSuperseded returned.
func (p *ArticlePage) Navigate(ctx context.Context, slug string) (*ArticleView, error) {
	p.mu.Lock()
	p.generation++
	ticket := p.generation
	p.current = PageSnapshot{Slug: slug, State: PageLoading}
	p.mu.Unlock()

	articles := p.loader.Load(ctx, VariantArticle)
	view, err := BuildArticleView(articles, slug, p.opts)

	p.mu.Lock()
	defer p.mu.Unlock()

	if ticket != p.generation {
		return nil, ErrSuperseded
	}

	if err != nil {
		p.current = PageSnapshot{Slug: slug, State: PageNotFound}
		return nil, err
	}
	p.current = PageSnapshot{Slug: slug, State: PageReady, View: view}
	return view, nil
}

// Current returns the committed state
func (p *ArticlePage) Current() PageSnapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.current
}
