package service

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
	json "github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"miles-advisor/domain"
	"miles-advisor/repository"
)

// ResultCache memoises evaluator output in a CacheRepository. Evaluators are
// pure for a given valuation profile, so keys carry a fingerprint of the
// profile and a hit is always equivalent to recomputing.
type ResultCache struct {
	repo    repository.CacheRepository
	ttl     time.Duration
	profile string
	logger  zerolog.Logger
}

func NewResultCache(
	repo repository.CacheRepository,
	ttl time.Duration,
	valuation domain.Valuation,
	logger zerolog.Logger,
) *ResultCache {
	profile := strconv.FormatUint(valuationFingerprint(valuation), 16)
	return &ResultCache{
		repo:    repo,
		ttl:     ttl,
		profile: profile,
		logger:  logger.With().Str("component", "result_cache").Str("profile", profile).Logger(),
	}
}

// cacheKey is kind, the profile fingerprint and the xxhash of the
// canonical JSON input.
func (c *ResultCache) cacheKey(kind string, input []byte) string {
	return kind + ":" + c.profile + ":" + strconv.FormatUint(xxhash.Sum64(input), 16)
}

// valuationFingerprint hashes every field of v with map entries in sorted
// order, so equal profiles hash equally across processes.
func valuationFingerprint(v domain.Valuation) uint64 {
	d := xxhash.New()
	fmt.Fprintf(d, "rates=%v,%v;comfort=%d;", v.LowRate, v.HighRate, v.ComfortHoursThreshold)

	pairs := make([]domain.CabinPair, 0, len(v.Multipliers))
	for pair := range v.Multipliers {
		pairs = append(pairs, pair)
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].From != pairs[j].From {
			return pairs[i].From < pairs[j].From
		}
		return pairs[i].To < pairs[j].To
	})
	for _, pair := range pairs {
		fmt.Fprintf(d, "mult=%d>%d:%v;", pair.From, pair.To, v.Multipliers[pair])
	}

	for _, tier := range v.StatusLadder {
		fmt.Fprintf(d, "tier=%s:%v:%d;", tier.Name, tier.PQP, tier.PQF)
	}

	for _, name := range sortedKeys(v.TravelPatterns) {
		p := v.TravelPatterns[name]
		fmt.Fprintf(d, "pattern=%s:%d:%v:%v:%v:%v;",
			name, p.AnnualFlights, p.AvgFlightHours, p.DomesticRatio, p.UpgradeMultiplier, p.MileValuation)
	}
	for _, name := range sortedKeys(v.RedemptionAdjustments) {
		fmt.Fprintf(d, "adj=%s:%v;", name, v.RedemptionAdjustments[name])
	}

	return d.Sum64()
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Cached returns the cached result for input under kind, computing and
// storing it on a miss. Evaluation errors are never cached. A nil cache
// simply evaluates. hit reports whether the value came from the cache.
func Cached[In, Out any](
	ctx context.Context,
	c *ResultCache,
	kind string,
	input In,
	evaluate func(In) (Out, error),
) (out Out, hit bool, err error) {
	if c == nil || c.repo == nil {
		out, err = evaluate(input)
		return out, false, err
	}

	raw, err := json.Marshal(input)
	if err != nil {
		out, err = evaluate(input)
		return out, false, err
	}
	key := c.cacheKey(kind, raw)

	if cached, ok := c.repo.Get(ctx, key); ok {
		if err := json.Unmarshal([]byte(cached), &out); err == nil {
			return out, true, nil
		}
		c.logger.Warn().Str("key", key).Msg("discarding undecodable cache entry")
	}

	out, err = evaluate(input)
	if err != nil {
		return out, false, err
	}

	encoded, err := json.Marshal(out)
	if err != nil {
		c.logger.Warn().Err(err).Str("kind", kind).Msg("failed to encode result for cache")
		return out, false, nil
	}
	if err := c.repo.Set(ctx, key, string(encoded), c.ttl); err != nil {
		c.logger.Warn().Err(err).Str("backend", c.repo.Name()).Msg("failed to store result in cache")
	}

	return out, false, nil
}
