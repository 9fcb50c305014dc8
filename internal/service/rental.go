package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"

	"assetrent-backend/internal/clock"
	"assetrent-backend/internal/domain"
	"assetrent-backend/internal/logger"
	"assetrent-backend/internal/payment"
	"assetrent-backend/internal/repository"
	"assetrent-backend/internal/token"
)

const feeDenominator = 10000

// MarketplaceRules are the deployment-time knobs of the ledger. Owner is the
// single privileged identity allowed to list assets and collect fees.
type MarketplaceRules struct {
	Owner        string
	FeeBps       uint64
	MaxExtension uint64
	MaxReasonLen int
}

type rentalService struct {
	// mu serializes transitions so each one observes and commits a
	// consistent snapshot, matching the total order the ledger promises.
	mu sync.Mutex

	rentalRepo  repository.RentalRepository
	disputeRepo repository.DisputeRepository
	ratingRepo  repository.RatingRepository
	noteRepo    repository.NotificationRepository
	payments    payment.Service
	tokens      token.Service
	clock       clock.Clock
	emailSvc    EmailService
	rules       MarketplaceRules
}

func NewRentalService(
	rentalRepo repository.RentalRepository,
	disputeRepo repository.DisputeRepository,
	ratingRepo repository.RatingRepository,
	noteRepo repository.NotificationRepository,
	payments payment.Service,
	tokens token.Service,
	clk clock.Clock,
	emailSvc EmailService,
	rules MarketplaceRules,
) RentalService {
	return &rentalService{
		rentalRepo:  rentalRepo,
		disputeRepo: disputeRepo,
		ratingRepo:  ratingRepo,
		noteRepo:    noteRepo,
		payments:    payments,
		tokens:      tokens,
		clock:       clk,
		emailSvc:    emailSvc,
		rules:       rules,
	}
}

// CreateRental lists an asset for rent. Only the marketplace owner may list;
// an asset with an open rental cannot be listed again. The ownership token
// is minted before the record is stored, and token service failures are
// returned unchanged.
func (s *rentalService) CreateRental(ctx context.Context, caller string, assetID, duration, price uint64) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if caller != s.rules.Owner {
		return 0, domain.ErrNotAuthorized
	}
	if _, err := s.rentalRepo.GetByAsset(ctx, assetID); err == nil {
		return 0, domain.ErrAlreadyRented
	} else if !errors.Is(err, domain.ErrRentalNotFound) {
		return 0, err
	}

	if err := s.tokens.Mint(ctx, assetID, caller); err != nil {
		return 0, err
	}

	rt := &domain.Rental{
		AssetID:       assetID,
		Owner:         caller,
		Status:        domain.RentalStatusAvailable,
		DurationUnits: duration,
		Price:         price,
	}
	if err := s.rentalRepo.Create(ctx, rt); err != nil {
		return 0, err
	}

	logger.Info("Rental created", "rental_id", rt.ID, "asset_id", assetID, "duration", duration, "price", price)
	return rt.ID, nil
}

// Rent lets the caller occupy an available rental. Payment of the full price
// to the owner settles before the record changes hands; the rental window is
// anchored at the current logical time.
func (s *rentalService) Rent(ctx context.Context, caller string, rentalID uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rt, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		return err
	}
	if rt.Renter != nil {
		return domain.ErrAlreadyRented
	}

	now := s.clock.Now()
	if rt.DurationUnits > math.MaxUint64-now {
		return domain.ErrNumericOverflow
	}

	if err := s.payments.Transfer(ctx, rt.Price, caller, rt.Owner); err != nil {
		return err
	}

	rt.Renter = &caller
	rt.Status = domain.RentalStatusActive
	rt.StartTime = now
	rt.EndTime = now + rt.DurationUnits
	if err := s.rentalRepo.Update(ctx, rt); err != nil {
		return err
	}

	logger.Info("Rental started", "rental_id", rt.ID, "renter", caller, "start", rt.StartTime, "end", rt.EndTime)
	s.notify(ctx, rt.Owner, "Asset Rented",
		fmt.Sprintf("Asset %d was rented by %s until %d", rt.AssetID, caller, rt.EndTime),
		map[string]string{"type": "RENTAL_STARTED", "rental_id": fmt.Sprintf("%d", rt.ID)})
	return nil
}

// Extend lengthens an active rental. Only the current renter may extend and
// never by more than MaxExtension units at once. The prorated charge divides
// by the current absolute end time, so the per-unit cost falls as the rental
// ages.
func (s *rentalService) Extend(ctx context.Context, caller string, rentalID, additionalUnits uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rt, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		return err
	}
	if rt.Renter == nil {
		return domain.ErrNotRented
	}
	if caller != *rt.Renter {
		return domain.ErrCannotExtend
	}
	if additionalUnits > s.rules.MaxExtension {
		return domain.ErrInvalidExtension
	}
	if rt.EndTime == 0 {
		return domain.ErrInvalidExtension
	}
	if additionalUnits != 0 && rt.Price > math.MaxUint64/additionalUnits {
		return domain.ErrInvalidExtension
	}
	if additionalUnits > math.MaxUint64-rt.EndTime {
		return domain.ErrInvalidExtension
	}
	extensionPrice := rt.Price * additionalUnits / rt.EndTime

	if err := s.payments.Transfer(ctx, extensionPrice, caller, rt.Owner); err != nil {
		return err
	}

	rt.EndTime += additionalUnits
	if err := s.rentalRepo.Update(ctx, rt); err != nil {
		return err
	}

	logger.Info("Rental extended", "rental_id", rt.ID, "additional_units", additionalUnits, "charged", extensionPrice, "new_end", rt.EndTime)
	return nil
}

// EndRental closes an expired rental. Anyone may trigger it once the window
// has passed; the asset token moves to the renter and the record is removed,
// freeing the asset for a new listing.
func (s *rentalService) EndRental(ctx context.Context, caller string, rentalID uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rt, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		return err
	}
	if rt.Renter == nil {
		return domain.ErrNotRented
	}
	if s.clock.Now() < rt.EndTime {
		return domain.ErrNotYetExpired
	}

	if err := s.tokens.Transfer(ctx, rt.AssetID, rt.Owner, *rt.Renter); err != nil {
		return err
	}
	if err := s.rentalRepo.Delete(ctx, rt.ID); err != nil {
		return err
	}

	logger.Info("Rental ended", "rental_id", rt.ID, "asset_id", rt.AssetID, "renter", *rt.Renter, "ended_by", caller)
	s.notify(ctx, *rt.Renter, "Rental Ended",
		fmt.Sprintf("Rental %d ended, asset %d is now yours", rt.ID, rt.AssetID),
		map[string]string{"type": "RENTAL_ENDED", "rental_id": fmt.Sprintf("%d", rt.ID)})
	return nil
}

// CancelRental withdraws an unrented listing. Owner only; an occupied rental
// must run its course through EndRental. The asset token is burned.
func (s *rentalService) CancelRental(ctx context.Context, caller string, rentalID uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rt, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		return err
	}
	if caller != rt.Owner {
		return domain.ErrNotTokenOwner
	}
	if rt.Renter != nil {
		return domain.ErrAlreadyRented
	}

	if err := s.tokens.Burn(ctx, rt.AssetID, rt.Owner); err != nil {
		return err
	}
	if err := s.rentalRepo.Delete(ctx, rt.ID); err != nil {
		return err
	}

	logger.Info("Rental cancelled", "rental_id", rt.ID, "asset_id", rt.AssetID)
	return nil
}

// FileDispute records a complaint from either party of an active rental.
// Filing again replaces the previous dispute; the record stays PENDING until
// operators resolve it off-platform.
func (s *rentalService) FileDispute(ctx context.Context, caller string, rentalID uint64, reason string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rt, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		return err
	}
	if rt.Renter == nil {
		return domain.ErrNotRented
	}
	if caller != *rt.Renter && caller != rt.Owner {
		return domain.ErrNotAuthorized
	}
	if reason == "" || len(reason) > s.rules.MaxReasonLen {
		return domain.ErrInvalidReason
	}

	d := &domain.Dispute{
		RentalID: rt.ID,
		Filer:    caller,
		Reason:   reason,
		Status:   domain.DisputeStatusPending,
	}
	if err := s.disputeRepo.Upsert(ctx, d); err != nil {
		return err
	}

	logger.Info("Dispute filed", "rental_id", rt.ID, "filer", caller)
	if s.emailSvc != nil {
		_ = s.emailSvc.SendAdminNotification(ctx, "Dispute Filed",
			fmt.Sprintf("A dispute was filed on rental %d by %s: %s", rt.ID, caller, reason))
	}
	return nil
}

// Rate stores a 1-5 score from one side of a rental. asRenter selects which
// role the caller claims; the identity must match that role.
func (s *rentalService) Rate(ctx context.Context, caller string, rentalID uint64, asRenter bool, score uint8, review string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rt, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		return err
	}
	if score < 1 || score > 5 {
		return domain.ErrInvalidScore
	}

	role := domain.RatingRoleOwner
	if asRenter {
		if rt.Renter == nil || caller != *rt.Renter {
			return domain.ErrNotAuthorized
		}
		role = domain.RatingRoleRenter
	} else if caller != rt.Owner {
		return domain.ErrNotAuthorized
	}

	rating := &domain.Rating{
		RentalID: rt.ID,
		Role:     role,
		Rater:    caller,
		Score:    score,
		Review:   review,
	}
	if err := s.ratingRepo.Upsert(ctx, rating); err != nil {
		return err
	}

	logger.Info("Rating recorded", "rental_id", rt.ID, "role", role, "score", score)
	return nil
}

// CollectMarketplaceFee charges the marketplace cut for a rental:
// price * FeeBps / 10000. The transfer runs from the caller to the
// marketplace owner; only the owner may call, so the fee settles to net zero
// on the owner's own account. The caller still needs the balance to cover it.
func (s *rentalService) CollectMarketplaceFee(ctx context.Context, caller string, rentalID uint64) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if caller != s.rules.Owner {
		return 0, domain.ErrNotAuthorized
	}
	rt, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		return 0, err
	}

	if s.rules.FeeBps != 0 && rt.Price > math.MaxUint64/s.rules.FeeBps {
		return 0, domain.ErrNumericOverflow
	}
	fee := rt.Price * s.rules.FeeBps / feeDenominator

	if err := s.payments.Transfer(ctx, fee, caller, s.rules.Owner); err != nil {
		return 0, err
	}

	logger.Info("Marketplace fee collected", "rental_id", rt.ID, "fee", fee)
	return fee, nil
}

func (s *rentalService) GetRental(ctx context.Context, rentalID uint64) (*domain.Rental, error) {
	return s.rentalRepo.GetByID(ctx, rentalID)
}

func (s *rentalService) GetAssetRental(ctx context.Context, assetID uint64) (uint64, error) {
	rt, err := s.rentalRepo.GetByAsset(ctx, assetID)
	if err != nil {
		return 0, err
	}
	return rt.ID, nil
}

func (s *rentalService) GetDispute(ctx context.Context, rentalID uint64) (*domain.Dispute, error) {
	return s.disputeRepo.GetByRental(ctx, rentalID)
}

func (s *rentalService) ListRatings(ctx context.Context, rentalID uint64) ([]domain.Rating, error) {
	return s.ratingRepo.ListByRental(ctx, rentalID)
}

// notify records a best-effort in-app notice after a committed transition.
func (s *rentalService) notify(ctx context.Context, identity, title, message string, attrs map[string]string) {
	if s.noteRepo == nil {
		return
	}
	_ = s.noteRepo.Create(ctx, &domain.Notification{
		Identity:   identity,
		Title:      title,
		Message:    message,
		Attributes: attrs,
	})
}
