package invis

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/vimldn/invis/metrics"
	"github.com/vimldn/invis/models"
	"github.com/vimldn/invis/storage"
)

var tracer = otel.Tracer("github.com/vimldn/invis")

// ArticleLoader produces the article collection for a page variant
type ArticleLoader interface {
	Load(ctx context.Context, variant Variant) []models.Article
}

// Loader fetches, parses and normalizes the articles CSV on every call.
// Nothing is cached between loads.
type Loader struct {
	source   storage.Source
	schedule Schedule
	logger   *slog.Logger
	now      func() time.Time
}

// NewLoader creates a Loader reading from source
func NewLoader(source storage.Source, schedule Schedule, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{
		source:   source,
		schedule: schedule,
		logger:   logger,
		now:      time.Now,
	}
}

// Load returns the collection for variant. Fetch and parse failures are
// logged and yield an empty collection. The listing variant only returns
// articles whose publish date has passed.
func (l *Loader) Load(ctx context.Context, variant Variant) []models.Article {
	ctx, span := tracer.Start(ctx, "invis.Load")
	defer span.End()
	span.SetAttributes(attribute.String("invis.variant", variant.String()))

	text, err := l.source.Fetch(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "fetch failed")
		metrics.ArticleLoadsTotal.WithLabelValues(metrics.LoadFetchFailed).Inc()
		l.logger.Warn("failed to fetch articles", "variant", variant.String(), "error", err)
		return []models.Article{}
	}

	rows, err := ParseRows(text)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "parse failed")
		metrics.ArticleLoadsTotal.WithLabelValues(metrics.LoadParseFailed).Inc()
		l.logger.Warn("failed to parse articles", "variant", variant.String(), "error", err)
		return []models.Article{}
	}

	articles := Normalize(rows, OptionsFor(variant, l.schedule))
	total := len(articles)
	if variant == VariantListing {
		articles = Published(articles, l.now())
	}

	span.SetAttributes(
		attribute.Int("invis.rows", len(rows)),
		attribute.Int("invis.articles", len(articles)),
	)
	metrics.ArticleLoadsTotal.WithLabelValues(metrics.LoadOK).Inc()
	metrics.ArticlesLoaded.Set(float64(total))

	l.logger.Debug("articles loaded",
		"variant", variant.String(),
		"rows", len(rows),
		"articles", total,
		"visible", len(articles))

	return articles
}
