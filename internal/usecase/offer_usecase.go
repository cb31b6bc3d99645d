package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/matchedbet/internal/domain"
)

// OfferUseCase handles bookmaker offer business logic.
type OfferUseCase struct {
	offerRepo     OfferRepository
	bookmakerRepo BookmakerRepository
	tree          *treeBuilder
	cache         *treeCache
	idGen         IDGenerator
}

// OfferUseCaseConfig holds the collaborators of OfferUseCase.
type OfferUseCaseConfig struct {
	OfferRepo       OfferRepository
	BookmakerRepo   BookmakerRepository
	AccumulatorRepo AccumulatorRepository
	BetRepo         BetRepository
	MatchRepo       MatchRepository
	IDGen           IDGenerator
	Cache           Cache
}

// NewOfferUseCase creates a new OfferUseCase.
func NewOfferUseCase(cfg OfferUseCaseConfig) *OfferUseCase {
	return &OfferUseCase{
		offerRepo:     cfg.OfferRepo,
		bookmakerRepo: cfg.BookmakerRepo,
		tree: &treeBuilder{
			offerRepo:       cfg.OfferRepo,
			accumulatorRepo: cfg.AccumulatorRepo,
			betRepo:         cfg.BetRepo,
			matchRepo:       cfg.MatchRepo,
		},
		cache: newTreeCache(cfg.Cache, 0),
		idGen: cfg.IDGen,
	}
}

// CreateOfferInput represents input for creating an offer.
type CreateOfferInput struct {
	StartedDate         *time.Time
	ExpiresInDays       *int
	BookmakerID         string
	Description         string
	TermsAndConditions  string
	QualifyingBetAmount decimal.Decimal
	FreeBetAmount       decimal.Decimal
}

// CreateOffer creates an offer under an existing bookmaker.
func (uc *OfferUseCase) CreateOffer(ctx context.Context, input CreateOfferInput) (*domain.BookmakerOffer, error) {
	if _, err := uc.bookmakerRepo.GetByID(ctx, input.BookmakerID); err != nil {
		return nil, err
	}
	if err := validateOfferAmounts(input.QualifyingBetAmount, input.FreeBetAmount, input.ExpiresInDays); err != nil {
		return nil, err
	}

	offer := &domain.BookmakerOffer{
		ID:                  uc.idGen.Generate(),
		BookmakerID:         input.BookmakerID,
		Description:         input.Description,
		TermsAndConditions:  input.TermsAndConditions,
		QualifyingBetAmount: input.QualifyingBetAmount,
		FreeBetAmount:       input.FreeBetAmount,
		ExpiresInDays:       input.ExpiresInDays,
		StartedDate:         input.StartedDate,
		CreatedAt:           time.Now().UTC(),
	}

	if err := uc.offerRepo.Create(ctx, offer); err != nil {
		return nil, err
	}
	uc.cache.invalidate(ctx, offer.BookmakerID)

	return offer, nil
}

func validateOfferAmounts(qualifying, free decimal.Decimal, expiresInDays *int) error {
	if err := domain.ValidateNonNegative(qualifying); err != nil {
		return err
	}
	if err := domain.ValidateNonNegative(free); err != nil {
		return err
	}
	if expiresInDays != nil && *expiresInDays < 0 {
		return domain.ErrInvalidExpiry
	}
	return nil
}

// GetOffer retrieves an offer by ID.
func (uc *OfferUseCase) GetOffer(ctx context.Context, id string) (*domain.BookmakerOffer, error) {
	return uc.offerRepo.GetByID(ctx, id)
}

// ListOffersByBookmaker lists the offers of a bookmaker.
func (uc *OfferUseCase) ListOffersByBookmaker(ctx context.Context, bookmakerID string) ([]*domain.BookmakerOffer, error) {
	return uc.offerRepo.ListByBookmaker(ctx, bookmakerID)
}

// UpdateOfferInput holds the fields to change; nil means unchanged.
type UpdateOfferInput struct {
	StartedDate         *time.Time
	ExpiresInDays       *int
	Description         *string
	TermsAndConditions  *string
	QualifyingBetAmount *decimal.Decimal
	FreeBetAmount       *decimal.Decimal
	ID                  string
}

// UpdateOffer applies a partial update.
func (uc *OfferUseCase) UpdateOffer(ctx context.Context, input UpdateOfferInput) (*domain.BookmakerOffer, error) {
	offer, err := uc.offerRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Description != nil {
		offer.Description = *input.Description
	}
	if input.TermsAndConditions != nil {
		offer.TermsAndConditions = *input.TermsAndConditions
	}
	if input.QualifyingBetAmount != nil {
		offer.QualifyingBetAmount = *input.QualifyingBetAmount
	}
	if input.FreeBetAmount != nil {
		offer.FreeBetAmount = *input.FreeBetAmount
	}
	if input.ExpiresInDays != nil {
		offer.ExpiresInDays = input.ExpiresInDays
	}
	if input.StartedDate != nil {
		offer.StartedDate = input.StartedDate
	}

	if err := validateOfferAmounts(offer.QualifyingBetAmount, offer.FreeBetAmount, offer.ExpiresInDays); err != nil {
		return nil, err
	}

	if err := uc.offerRepo.Update(ctx, offer); err != nil {
		return nil, err
	}
	uc.cache.invalidate(ctx, offer.BookmakerID)

	return offer, nil
}

// DeleteOffer removes an offer.
func (uc *OfferUseCase) DeleteOffer(ctx context.Context, id string) error {
	offer, err := uc.offerRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := uc.offerRepo.Delete(ctx, id); err != nil {
		return err
	}
	uc.cache.invalidate(ctx, offer.BookmakerID)

	return nil
}

// GetOfferTree returns an offer with its accumulators, bets and matches.
func (uc *OfferUseCase) GetOfferTree(ctx context.Context, id string) (*domain.OfferWithBetsAndMatches, error) {
	offer, err := uc.offerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return uc.tree.offerTree(ctx, offer)
}
