// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package estimates

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/vechain/govunlock/api/utils"
	"github.com/vechain/govunlock/cache"
	"github.com/vechain/govunlock/gov"
	"github.com/vechain/govunlock/log"
	"github.com/vechain/govunlock/metrics"
)

var (
	logger = log.WithContext("pkg", "estimates")

	metricEstimateCount  = metrics.LazyLoadCounterVec("estimate_count", []string{"source"})
	metricEstimateChunks = metrics.LazyLoadHistogram("estimate_chunks", metrics.BucketChunks)
	metricBatchRequests  = metrics.LazyLoadCounter("estimate_batch_request_count")
	metricCacheSize      = metrics.LazyLoadGauge("estimate_cache_size")
)

// Options of the estimates API.
type Options struct {
	CacheSize   int // cached estimates, 0 disables the cache
	BatchLimit  int // max requests of one batch
	Parallelism int // max estimates of a batch computed at once
}

type Estimates struct {
	network string
	params  gov.Params
	opts    Options
	cache   *cache.LRU[gov.Hash, *Estimate]
}

// New creates the estimates API estimating with params by default.
func New(network string, params gov.Params, opts Options) (*Estimates, error) {
	e := &Estimates{
		network: network,
		params:  params,
		opts:    opts,
	}
	if e.opts.BatchLimit <= 0 {
		e.opts.BatchLimit = 100
	}
	if e.opts.Parallelism <= 0 {
		e.opts.Parallelism = 4
	}
	if opts.CacheSize > 0 {
		c, err := cache.NewLRU[gov.Hash, *Estimate](opts.CacheSize)
		if err != nil {
			return nil, errors.Wrap(err, "create estimate cache")
		}
		e.cache = c
	}
	return e, nil
}

// Estimate computes, or looks up in the cache, the estimate of one request.
func (e *Estimates) Estimate(req *EstimateRequest) (*Estimate, error) {
	if req.Snapshot == nil {
		return nil, utils.BadRequest(errors.New("snapshot: required"))
	}
	if err := req.Snapshot.Validate(); err != nil {
		return nil, utils.BadRequest(errors.WithMessage(err, "snapshot"))
	}
	params := req.Params.Apply(e.params)
	hash := req.Snapshot.Hash(params)

	compute := func(gov.Hash) (*Estimate, error) {
		est := newEstimate(req.Snapshot, params, hash)
		metricEstimateChunks().Observe(int64(len(est.Chunks)))
		return est, nil
	}
	if e.cache == nil {
		metricEstimateCount().AddWithLabel(1, map[string]string{"source": "computed"})
		return compute(hash)
	}

	est, source, err := e.cache.GetOrLoad(hash, compute)
	if err != nil {
		return nil, err
	}
	label := "cache"
	switch source {
	case cache.Loaded:
		label = "computed"
	case cache.Shared:
		label = "shared"
	}
	metricEstimateCount().AddWithLabel(1, map[string]string{"source": label})
	metricCacheSize().Set(int64(e.cache.Len()))

	if changed, hit, miss := e.cache.Stats().Stats(); changed {
		logger.Debug("estimate cache stats", "hit", hit, "miss", miss, "rate", e.cache.Stats().HitRate())
	}
	return est, nil
}

// Batch estimates every request, at most Parallelism at once. A failing request
// does not fail the others.
func (e *Estimates) Batch(reqs []*EstimateRequest) ([]*BatchResult, error) {
	if len(reqs) > e.opts.BatchLimit {
		return nil, utils.BadRequest(errors.Errorf("batch of %d requests exceeds the limit %d", len(reqs), e.opts.BatchLimit))
	}

	metricBatchRequests().Add(int64(len(reqs)))

	results := make([]*BatchResult, len(reqs))
	var g errgroup.Group
	g.SetLimit(e.opts.Parallelism)
	for i, req := range reqs {
		g.Go(func() error {
			if req == nil {
				results[i] = &BatchResult{Error: "request: required"}
				return nil
			}
			est, err := e.Estimate(req)
			if err != nil {
				if utils.StatusCode(err) != http.StatusBadRequest {
					return errors.WithMessagef(err, "requests[%d]", i)
				}
				results[i] = &BatchResult{Error: err.Error()}
				return nil
			}
			results[i] = &BatchResult{Estimate: est}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (e *Estimates) handleEstimate(w http.ResponseWriter, req *http.Request) error {
	var body EstimateRequest
	if err := utils.ParseJSON(req.Body, &body); err != nil {
		return utils.BadRequest(errors.WithMessage(err, "body"))
	}
	est, err := e.Estimate(&body)
	if err != nil {
		return err
	}
	return utils.WriteJSON(w, est)
}

func (e *Estimates) handleBatch(w http.ResponseWriter, req *http.Request) error {
	var body []*EstimateRequest
	if err := utils.ParseJSON(req.Body, &body); err != nil {
		return utils.BadRequest(errors.WithMessage(err, "body"))
	}
	results, err := e.Batch(body)
	if err != nil {
		return err
	}
	return utils.WriteJSON(w, results)
}

func (e *Estimates) handleParams(w http.ResponseWriter, _ *http.Request) error {
	return utils.WriteJSON(w, &Params{Network: e.network, Params: e.params})
}

func (e *Estimates) Mount(root *mux.Router, pathPrefix string) {
	sub := root.PathPrefix(pathPrefix).Subrouter()

	sub.Path("/estimates").
		Methods(http.MethodPost).
		Name("estimates_post").
		HandlerFunc(utils.WrapHandlerFunc(e.handleEstimate))
	sub.Path("/estimates/batch").
		Methods(http.MethodPost).
		Name("estimates_post_batch").
		HandlerFunc(utils.WrapHandlerFunc(e.handleBatch))
	sub.Path("/params").
		Methods(http.MethodGet).
		Name("params_get").
		HandlerFunc(utils.WrapHandlerFunc(e.handleParams))
}
