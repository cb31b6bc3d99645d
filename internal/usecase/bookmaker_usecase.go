package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/matchedbet/internal/domain"
)

// BalanceIncrementer applies a single change to the session ledger.
type BalanceIncrementer interface {
	Increment(ctx context.Context, amount decimal.Decimal, target domain.BalanceTarget) (domain.Ledger, error)
}

// BookmakerUseCase handles bookmaker business logic.
type BookmakerUseCase struct {
	bookmakerRepo BookmakerRepository
	offerRepo     OfferRepository
	tree          *treeBuilder
	cache         *treeCache
	balances      BalanceIncrementer
	idGen         IDGenerator
}

// BookmakerUseCaseConfig holds the collaborators of BookmakerUseCase.
type BookmakerUseCaseConfig struct {
	BookmakerRepo   BookmakerRepository
	OfferRepo       OfferRepository
	AccumulatorRepo AccumulatorRepository
	BetRepo         BetRepository
	MatchRepo       MatchRepository
	Balances        BalanceIncrementer
	IDGen           IDGenerator
	Cache           Cache
	CacheTTL        time.Duration
}

// NewBookmakerUseCase creates a new BookmakerUseCase.
func NewBookmakerUseCase(cfg BookmakerUseCaseConfig) *BookmakerUseCase {
	return &BookmakerUseCase{
		bookmakerRepo: cfg.BookmakerRepo,
		offerRepo:     cfg.OfferRepo,
		tree: &treeBuilder{
			offerRepo:       cfg.OfferRepo,
			accumulatorRepo: cfg.AccumulatorRepo,
			betRepo:         cfg.BetRepo,
			matchRepo:       cfg.MatchRepo,
		},
		cache:    newTreeCache(cfg.Cache, cfg.CacheTTL),
		balances: cfg.Balances,
		idGen:    cfg.IDGen,
	}
}

// CreateBookmakerInput represents input for creating a bookmaker.
type CreateBookmakerInput struct {
	InitialBalance *decimal.Decimal
	Name           string
	URL            string
	Logo           string
}

// CreateBookmaker creates a bookmaker. A non-zero initial balance is deposited
// into the bookmaker total of the session ledger.
func (uc *BookmakerUseCase) CreateBookmaker(ctx context.Context, input CreateBookmakerInput) (*domain.Bookmaker, error) {
	if err := domain.ValidateName(input.Name); err != nil {
		return nil, err
	}
	if err := domain.ValidateURL(input.URL); err != nil {
		return nil, err
	}
	if input.InitialBalance != nil {
		if err := domain.ValidateNonNegative(*input.InitialBalance); err != nil {
			return nil, err
		}
	}

	bookmaker := &domain.Bookmaker{
		ID:             uc.idGen.Generate(),
		Name:           input.Name,
		URL:            input.URL,
		Logo:           input.Logo,
		InitialBalance: input.InitialBalance,
		CreatedAt:      time.Now().UTC(),
	}

	if err := uc.bookmakerRepo.Create(ctx, bookmaker); err != nil {
		return nil, err
	}

	if input.InitialBalance != nil && !input.InitialBalance.IsZero() && uc.balances != nil {
		if _, err := uc.balances.Increment(ctx, *input.InitialBalance, domain.TargetBookmaker); err != nil {
			return nil, err
		}
	}

	return bookmaker, nil
}

// GetBookmaker retrieves a bookmaker by ID.
func (uc *BookmakerUseCase) GetBookmaker(ctx context.Context, id string) (*domain.Bookmaker, error) {
	return uc.bookmakerRepo.GetByID(ctx, id)
}

// ListBookmakersInput represents input for listing bookmakers.
type ListBookmakersInput struct {
	Limit  int
	Offset int
}

// ListBookmakers lists bookmakers with pagination.
func (uc *BookmakerUseCase) ListBookmakers(ctx context.Context, input ListBookmakersInput) ([]*domain.Bookmaker, error) {
	limit, offset := domain.ValidatePagination(input.Limit, input.Offset)
	return uc.bookmakerRepo.List(ctx, limit, offset)
}

// UpdateBookmakerInput holds the fields to change; nil means unchanged.
type UpdateBookmakerInput struct {
	InitialBalance *decimal.Decimal
	Name           *string
	URL            *string
	Logo           *string
	ID             string
}

// UpdateBookmaker applies a partial update.
func (uc *BookmakerUseCase) UpdateBookmaker(ctx context.Context, input UpdateBookmakerInput) (*domain.Bookmaker, error) {
	bookmaker, err := uc.bookmakerRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if err := domain.ValidateName(*input.Name); err != nil {
			return nil, err
		}
		bookmaker.Name = *input.Name
	}
	if input.URL != nil {
		if err := domain.ValidateURL(*input.URL); err != nil {
			return nil, err
		}
		bookmaker.URL = *input.URL
	}
	if input.Logo != nil {
		bookmaker.Logo = *input.Logo
	}
	if input.InitialBalance != nil {
		if err := domain.ValidateNonNegative(*input.InitialBalance); err != nil {
			return nil, err
		}
		bookmaker.InitialBalance = input.InitialBalance
	}

	if err := uc.bookmakerRepo.Update(ctx, bookmaker); err != nil {
		return nil, err
	}
	uc.cache.invalidate(ctx, bookmaker.ID)

	return bookmaker, nil
}

// DeleteBookmaker removes a bookmaker.
func (uc *BookmakerUseCase) DeleteBookmaker(ctx context.Context, id string) error {
	if err := uc.bookmakerRepo.Delete(ctx, id); err != nil {
		return err
	}
	uc.cache.invalidate(ctx, id)
	return nil
}

// GetBookmakerTree returns a bookmaker with its offers, accumulators, bets and matches.
func (uc *BookmakerUseCase) GetBookmakerTree(ctx context.Context, id string) (*domain.BookmakerWithOffersBetsAndMatches, error) {
	if tree, ok := uc.cache.get(ctx, id); ok {
		return tree, nil
	}

	bookmaker, err := uc.bookmakerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	offers, err := uc.offerRepo.ListByBookmaker(ctx, id)
	if err != nil {
		return nil, err
	}

	tree := &domain.BookmakerWithOffersBetsAndMatches{
		Bookmaker: bookmaker,
		Offers:    make([]*domain.OfferWithBetsAndMatches, 0, len(offers)),
	}
	for _, offer := range offers {
		ot, err := uc.tree.offerTree(ctx, offer)
		if err != nil {
			return nil, err
		}
		tree.Offers = append(tree.Offers, ot)
	}

	uc.cache.set(ctx, tree)

	return tree, nil
}

// CountBookmakers returns the number of bookmakers.
func (uc *BookmakerUseCase) CountBookmakers(ctx context.Context) (int64, error) {
	return uc.bookmakerRepo.Count(ctx)
}
