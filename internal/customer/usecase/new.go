package usecase

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"cseboard/internal/customer"
	"cseboard/internal/customer/repository"
	"cseboard/pkg/log"
	"cseboard/pkg/metrics"
)

// Options holds optional collaborators of the use case.
type Options struct {
	// CacheSize bounds the Detail read cache. Zero or negative disables it.
	CacheSize int
	CacheTTL  time.Duration
	Metrics   metrics.Recorder
}

// implUseCase is the private implementation of customer.UseCase.
type implUseCase struct {
	repo    repository.Repository
	l       log.Logger
	cache   *expirable.LRU[string, customer.Record]
	metrics metrics.Recorder

	// cacheMu orders cache fills against invalidations. writeGen counts
	// writes per Org; a read only fills the cache if no write happened
	// while it was in flight.
	cacheMu  sync.Mutex
	writeGen map[string]uint64
}

// New creates a new customer UseCase implementation.
func New(repo repository.Repository, l log.Logger, opt Options) *implUseCase {
	uc := &implUseCase{
		repo:    repo,
		l:       l,
		metrics: opt.Metrics,
	}
	if uc.metrics == nil {
		uc.metrics = metrics.Nop()
	}
	if opt.CacheSize > 0 {
		uc.cache = expirable.NewLRU[string, customer.Record](opt.CacheSize, nil, opt.CacheTTL)
		uc.writeGen = make(map[string]uint64)
	}
	return uc
}
