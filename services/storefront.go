package services

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/HSouheill/barrim_storefront/cache"
	"github.com/HSouheill/barrim_storefront/carousel"
	"github.com/HSouheill/barrim_storefront/catalog"
	"github.com/HSouheill/barrim_storefront/models"
)

const (
	CarouselHero   = "hero"
	CarouselAds    = "ads"
	CarouselEvents = "events"
)

// StorefrontOptions are the per-site knobs of the storefront feeds.
type StorefrontOptions struct {
	HeroCacheTTL     time.Duration
	AdCacheTTL       time.Duration
	EventCacheTTL    time.Duration
	BrandCacheTTL    time.Duration
	CategoryCacheTTL time.Duration

	CarouselInterval     time.Duration
	HeroRefreshInterval  time.Duration
	AdRefreshInterval    time.Duration
	EventRefreshInterval time.Duration

	DefaultBannerLink    string
	DefaultBrandLogo     string
	DefaultCategoryImage string
}

// Storefront assembles what the shop pages render from the cached feeds.
// Read paths never fail: an upstream error degrades to an empty section.
type Storefront struct {
	Hero       *Feed[models.Banner]
	Ads        *Feed[models.Banner]
	Events     *Feed[models.EventBanner]
	Brands     *Feed[models.Brand]
	Categories *Feed[models.Category]

	opts   StorefrontOptions
	now    func() time.Time
	logger zerolog.Logger
}

func NewStorefront(api *APIClient, store cache.Store, opts StorefrontOptions, logger zerolog.Logger) *Storefront {
	logger = logger.With().Str("component", "storefront").Logger()
	s := &Storefront{opts: opts, now: time.Now, logger: logger}
	clock := func() time.Time { return s.now() }

	s.Hero = &Feed[models.Banner]{
		Key: cache.KeyHeroBanners, TTL: opts.HeroCacheTTL, Store: store,
		Fetch: api.Banners, Keep: models.Banner.Displayable, Now: clock, Logger: logger,
	}
	s.Ads = &Feed[models.Banner]{
		Key: cache.KeyAdBanners, TTL: opts.AdCacheTTL, Store: store,
		Fetch: api.Banners, Keep: models.Banner.Displayable, Now: clock, Logger: logger,
	}
	s.Events = &Feed[models.EventBanner]{
		Key: cache.KeyEventBanners, TTL: opts.EventCacheTTL, Store: store,
		Fetch: api.EventBanners,
		Keep:  func(e models.EventBanner) bool { return e.Displayable(s.now()) },
		Now:   clock, Logger: logger,
	}
	s.Brands = &Feed[models.Brand]{
		Key: cache.KeyBrands, TTL: opts.BrandCacheTTL, Store: store,
		Fetch: func(ctx context.Context) ([]models.Brand, error) { return api.Brands(ctx, nil) },
		Keep:  func(b models.Brand) bool { return b.Active },
		Now:   clock, Logger: logger,
	}
	s.Categories = &Feed[models.Category]{
		Key: cache.KeyCategories, TTL: opts.CategoryCacheTTL, Store: store,
		Fetch: api.Categories, Now: clock, Logger: logger,
	}
	return s
}

func (s *Storefront) warn(err error, section string) {
	if err == nil || errors.Is(err, context.Canceled) {
		return
	}
	s.logger.Warn().Err(err).Str("section", section).Msg("section rendered empty")
}

func (s *Storefront) carouselView(ctx context.Context, feed *Feed[models.Banner], section string) models.CarouselView {
	banners, err := feed.Load(ctx)
	s.warn(err, section)

	items := make([]models.Banner, 0, len(banners))
	for _, b := range banners {
		items = append(items, b.WithDefaults(s.opts.DefaultBannerLink))
	}
	return models.CarouselView{
		State:      string(carousel.StateOf(false, len(items))),
		Items:      items,
		IntervalMs: s.opts.CarouselInterval.Milliseconds(),
	}
}

func (s *Storefront) HeroCarousel(ctx context.Context) models.CarouselView {
	return s.carouselView(ctx, s.Hero, CarouselHero)
}

func (s *Storefront) AdCarousel(ctx context.Context) models.CarouselView {
	return s.carouselView(ctx, s.Ads, CarouselAds)
}

func (s *Storefront) EventBanners(ctx context.Context) []models.EventBannerView {
	events, err := s.Events.Load(ctx)
	s.warn(err, CarouselEvents)
	return s.eventViews(events)
}

func (s *Storefront) eventViews(events []models.EventBanner) []models.EventBannerView {
	now := s.now()
	views := make([]models.EventBannerView, 0, len(events))
	for _, e := range events {
		views = append(views, models.EventBannerView{
			EventBanner:    e,
			Countdown:      e.Countdown(now),
			FormattedPrice: FormatPrice(e.Product.Price),
		})
	}
	return views
}

// BrandMarquee returns the brand strip. The track repeats the list once so
// the scroll animation can wrap around seamlessly.
func (s *Storefront) BrandMarquee(ctx context.Context) models.BrandMarquee {
	brands, err := s.Brands.Load(ctx)
	s.warn(err, "brands")

	out := make([]models.Brand, 0, len(brands))
	for _, b := range brands {
		out = append(out, b.WithDefaults(s.opts.DefaultBrandLogo))
	}
	track := make([]models.Brand, 0, 2*len(out))
	track = append(track, out...)
	track = append(track, out...)

	return models.BrandMarquee{
		Brands:          out,
		Track:           track,
		DurationSeconds: marqueeDuration(len(out)),
	}
}

// marqueeDuration keeps the scroll speed steady as the brand count grows.
func marqueeDuration(n int) int {
	const perBrand, minimum = 3, 20
	if d := n * perBrand; d > minimum {
		return d
	}
	return minimum
}

func (s *Storefront) allCategories(ctx context.Context) []models.Category {
	categories, err := s.Categories.Load(ctx)
	s.warn(err, "categories")

	out := make([]models.Category, 0, len(categories))
	for _, c := range categories {
		out = append(out, c.WithDefaults(s.opts.DefaultCategoryImage))
	}
	return out
}

func (s *Storefront) TopCategories(ctx context.Context) []models.Category {
	return catalog.TopLevel(s.allCategories(ctx))
}

// SubCategories returns the children of parentID and the parent itself when
// it is known.
func (s *Storefront) SubCategories(ctx context.Context, parentID string) (*models.Category, []models.Category) {
	categories := s.allCategories(ctx)
	children := catalog.Children(categories, parentID)
	if parent, ok := catalog.Find(categories, parentID); ok {
		return &parent, children
	}
	return nil, children
}

func (s *Storefront) CategoryTree(ctx context.Context) []models.CategoryNode {
	return catalog.Tree(s.allCategories(ctx))
}

// Home loads every home page section concurrently. A failing section is
// empty rather than an error; the only error is the caller's context ending,
// which stops the remaining sections and discards the page.
func (s *Storefront) Home(ctx context.Context) (models.Home, error) {
	var home models.Home
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		home.Hero = s.HeroCarousel(gctx)
		return gctx.Err()
	})
	g.Go(func() error {
		home.Ads = s.AdCarousel(gctx)
		return gctx.Err()
	})
	g.Go(func() error {
		home.Events = s.EventBanners(gctx)
		return gctx.Err()
	})
	g.Go(func() error {
		home.Brands = s.BrandMarquee(gctx)
		return gctx.Err()
	})
	g.Go(func() error {
		home.Categories = s.TopCategories(gctx)
		return gctx.Err()
	})
	if err := g.Wait(); err != nil {
		return models.Home{}, err
	}
	return home, nil
}

// InvalidateBanners drops the cached banner lists after an admin write.
func (s *Storefront) InvalidateBanners(ctx context.Context) {
	for _, feed := range []*Feed[models.Banner]{s.Hero, s.Ads} {
		if err := feed.Invalidate(ctx); err != nil {
			s.logger.Warn().Err(err).Str("key", feed.Key).Msg("cache invalidation failed")
		}
	}
}

func (s *Storefront) InvalidateBrands(ctx context.Context) {
	if err := s.Brands.Invalidate(ctx); err != nil {
		s.logger.Warn().Err(err).Str("key", s.Brands.Key).Msg("cache invalidation failed")
	}
}

// LiveCarousel is a carousel that can be watched over a websocket. Load goes
// through the cache; Reload always asks the backend and serves pushed
// refreshes, which follow admin writes.
type LiveCarousel struct {
	Name            string
	RefreshInterval time.Duration
	Load            func(ctx context.Context) ([]interface{}, error)
	Reload          func(ctx context.Context) ([]interface{}, error)
}

func bannerItems(load func(ctx context.Context) ([]models.Banner, error), defaultLink string) func(ctx context.Context) ([]interface{}, error) {
	return func(ctx context.Context) ([]interface{}, error) {
		list, err := load(ctx)
		if err != nil {
			return nil, err
		}
		items := make([]interface{}, 0, len(list))
		for _, b := range list {
			items = append(items, b.WithDefaults(defaultLink))
		}
		return items, nil
	}
}

func (s *Storefront) eventItems(load func(ctx context.Context) ([]models.EventBanner, error)) func(ctx context.Context) ([]interface{}, error) {
	return func(ctx context.Context) ([]interface{}, error) {
		events, err := load(ctx)
		if err != nil {
			return nil, err
		}
		views := s.eventViews(events)
		items := make([]interface{}, 0, len(views))
		for _, v := range views {
			items = append(items, v)
		}
		return items, nil
	}
}

// LiveCarousels lists the carousels viewers can subscribe to, by name.
func (s *Storefront) LiveCarousels() map[string]LiveCarousel {
	link := s.opts.DefaultBannerLink
	return map[string]LiveCarousel{
		CarouselHero: {
			Name:            CarouselHero,
			RefreshInterval: s.opts.HeroRefreshInterval,
			Load:            bannerItems(s.Hero.Load, link),
			Reload:          bannerItems(s.Hero.Reload, link),
		},
		CarouselAds: {
			Name:            CarouselAds,
			RefreshInterval: s.opts.AdRefreshInterval,
			Load:            bannerItems(s.Ads.Load, link),
			Reload:          bannerItems(s.Ads.Reload, link),
		},
		CarouselEvents: {
			Name:            CarouselEvents,
			RefreshInterval: s.opts.EventRefreshInterval,
			Load:            s.eventItems(s.Events.Load),
			Reload:          s.eventItems(s.Events.Reload),
		},
	}
}
