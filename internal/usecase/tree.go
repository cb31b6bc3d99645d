package usecase

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/iho/matchedbet/internal/domain"
)

// DefaultTreeCacheTTL bounds how stale a cached bookmaker tree may get.
const DefaultTreeCacheTTL = 30 * time.Second

// treeBuilder assembles the nested offer/accumulator/bet/match views.
type treeBuilder struct {
	offerRepo       OfferRepository
	accumulatorRepo AccumulatorRepository
	betRepo         BetRepository
	matchRepo       MatchRepository
}

func (b *treeBuilder) offerTree(ctx context.Context, offer *domain.BookmakerOffer) (*domain.OfferWithBetsAndMatches, error) {
	accs, err := b.accumulatorRepo.ListByOffer(ctx, offer.ID)
	if err != nil {
		return nil, err
	}

	bets, err := b.betRepo.ListByOffer(ctx, offer.ID)
	if err != nil {
		return nil, err
	}

	legsByAcc := make(map[string][]*domain.Bet, len(accs))
	for _, acc := range accs {
		legs, err := b.betRepo.ListByAccumulator(ctx, acc.ID)
		if err != nil {
			return nil, err
		}
		legsByAcc[acc.ID] = legs
	}

	matchIDs := collectMatchIDs(bets, legsByAcc)
	matches, err := b.matchesByID(ctx, matchIDs)
	if err != nil {
		return nil, err
	}

	tree := &domain.OfferWithBetsAndMatches{
		Offer:        offer,
		Accumulators: make([]*domain.AccumulatorWithBets, 0, len(accs)),
		Bets:         make([]*domain.BetWithMatch, 0, len(bets)),
	}

	for _, acc := range accs {
		tree.Accumulators = append(tree.Accumulators, &domain.AccumulatorWithBets{
			Accumulator: acc,
			Bets:        joinMatches(legsByAcc[acc.ID], matches),
		})
	}
	tree.Bets = joinMatches(bets, matches)

	return tree, nil
}

func (b *treeBuilder) matchesByID(ctx context.Context, ids []string) (map[string]*domain.Match, error) {
	result := make(map[string]*domain.Match, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	matches, err := b.matchRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	for _, m := range matches {
		result[m.ID] = m
	}

	return result, nil
}

func collectMatchIDs(bets []*domain.Bet, legs map[string][]*domain.Bet) []string {
	seen := make(map[string]struct{})
	var ids []string

	add := func(list []*domain.Bet) {
		for _, bet := range list {
			if _, ok := seen[bet.MatchID]; ok {
				continue
			}
			seen[bet.MatchID] = struct{}{}
			ids = append(ids, bet.MatchID)
		}
	}

	add(bets)
	for _, l := range legs {
		add(l)
	}

	return ids
}

func joinMatches(bets []*domain.Bet, matches map[string]*domain.Match) []*domain.BetWithMatch {
	result := make([]*domain.BetWithMatch, 0, len(bets))
	for _, bet := range bets {
		result = append(result, &domain.BetWithMatch{Bet: bet, Match: matches[bet.MatchID]})
	}
	return result
}

// treeCache stores encoded bookmaker trees. A nil cache disables caching.
//
// Tree keys embed a generation read from treeGenerationKey. Writes scoped to
// one bookmaker delete its key; writes that may touch any tree, such as match
// results and settlements, bump the generation instead.
type treeCache struct {
	cache Cache
	ttl   time.Duration
}

const treeGenerationKey = "bookmaker-tree:generation"

func newTreeCache(cache Cache, ttl time.Duration) *treeCache {
	if ttl <= 0 {
		ttl = DefaultTreeCacheTTL
	}
	return &treeCache{cache: cache, ttl: ttl}
}

func (c *treeCache) enabled() bool {
	return c != nil && c.cache != nil
}

// key returns the cache key of a tree under the current generation.
func (c *treeCache) key(ctx context.Context, bookmakerID string) (string, bool) {
	gen, err := c.cache.Get(ctx, treeGenerationKey)
	if err != nil {
		return "", false
	}
	if len(gen) == 0 {
		gen = []byte("0")
	}
	return "bookmaker-tree:" + string(gen) + ":" + bookmakerID, true
}

func (c *treeCache) get(ctx context.Context, bookmakerID string) (*domain.BookmakerWithOffersBetsAndMatches, bool) {
	if !c.enabled() {
		return nil, false
	}

	key, ok := c.key(ctx, bookmakerID)
	if !ok {
		return nil, false
	}

	raw, err := c.cache.Get(ctx, key)
	if err != nil || raw == nil {
		return nil, false
	}

	var tree domain.BookmakerWithOffersBetsAndMatches
	if err := json.Unmarshal(raw, &tree); err != nil {
		return nil, false
	}

	return &tree, true
}

func (c *treeCache) set(ctx context.Context, tree *domain.BookmakerWithOffersBetsAndMatches) {
	if !c.enabled() {
		return
	}

	key, ok := c.key(ctx, tree.Bookmaker.ID)
	if !ok {
		return
	}

	raw, err := json.Marshal(tree)
	if err != nil {
		return
	}

	_ = c.cache.Set(ctx, key, raw, c.ttl)
}

// invalidate drops the cached tree of one bookmaker.
func (c *treeCache) invalidate(ctx context.Context, bookmakerID string) {
	if !c.enabled() {
		return
	}

	if key, ok := c.key(ctx, bookmakerID); ok {
		_ = c.cache.Delete(ctx, key)
	}
}

// invalidateAll makes every cached tree unreachable. Old entries expire
// through their TTL.
func (c *treeCache) invalidateAll(ctx context.Context) {
	if !c.enabled() {
		return
	}

	gen := strconv.FormatInt(time.Now().UnixNano(), 36)
	_ = c.cache.Set(ctx, treeGenerationKey, []byte(gen), 0)
}

// invalidateOffer drops the tree of the bookmaker owning an offer. When the
// offer cannot be resolved every tree is dropped.
func (c *treeCache) invalidateOffer(ctx context.Context, offers OfferRepository, offerID string) {
	if !c.enabled() {
		return
	}

	offer, err := offers.GetByID(ctx, offerID)
	if err != nil {
		c.invalidateAll(ctx)
		return
	}
	c.invalidate(ctx, offer.BookmakerID)
}
