package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/alumeee/alumniconnect/internal/app/models"
	"github.com/alumeee/alumniconnect/internal/app/models/dto"
	"github.com/alumeee/alumniconnect/internal/app/repositories"
	"github.com/alumeee/alumniconnect/internal/pkg/apperrors"
	"github.com/alumeee/alumniconnect/internal/pkg/helpers"
)

// FundService handles donation funds
type FundService struct {
	fundRepo repositories.IFundRepository
	logger   zerolog.Logger
}

// NewFundService creates a new FundService
func NewFundService(fundRepo repositories.IFundRepository, logger zerolog.Logger) *FundService {
	return &FundService{
		fundRepo: fundRepo,
		logger:   logger,
	}
}

func toFundResponse(fund *models.Fund) dto.FundResponse {
	return dto.FundResponse{
		ID:              fund.ID,
		Title:           fund.Title,
		Description:     fund.Description,
		TargetAmount:    fund.TargetAmount,
		CollectedAmount: fund.CollectedAmount,
		PercentOfGoal:   fund.PercentOfGoal(),
		ImageURL:        fund.ImageURL,
		CreatedAt:       fund.CreatedAt,
	}
}

// Create opens a new fund
func (s *FundService) Create(ctx context.Context, req *dto.CreateFundRequest) (*dto.FundResponse, error) {
	if req.TargetAmount <= 0 {
		return nil, apperrors.ErrInvalidAmount
	}

	fund := &models.Fund{
		Title:        req.Title,
		Description:  req.Description,
		TargetAmount: req.TargetAmount,
	}

	id, err := s.fundRepo.Create(ctx, fund)
	if err != nil {
		return nil, err
	}
	fund.ID = id

	s.logger.Info().Int64("fundID", id).Str("title", fund.Title).Msg("Fund opened")

	resp := toFundResponse(fund)
	return &resp, nil
}

// Get returns a fund with its collection progress
func (s *FundService) Get(ctx context.Context, fundID int64) (*dto.FundResponse, error) {
	fund, err := s.fundRepo.GetByID(ctx, fundID)
	if err != nil {
		return nil, err
	}
	resp := toFundResponse(fund)
	return &resp, nil
}

// List returns all funds, newest first
func (s *FundService) List(ctx context.Context, page, size int) (*dto.FundListResponse, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, size)
	funds, _, err := s.fundRepo.List(ctx, offset, limit)
	if err != nil {
		return nil, err
	}

	items := make([]dto.FundResponse, 0, len(funds))
	for _, fund := range funds {
		items = append(items, toFundResponse(fund))
	}
	return &dto.FundListResponse{Funds: items}, nil
}

// Donate records a donation. Amounts must be positive; the fund total is
// bumped atomically with the donation row.
func (s *FundService) Donate(ctx context.Context, userID, fundID int64, req *dto.DonateRequest) (*dto.DonationResponse, error) {
	if req.Amount <= 0 {
		return nil, apperrors.ErrInvalidAmount
	}

	donation := &models.Donation{
		UserID: userID,
		FundID: fundID,
		Amount: req.Amount,
	}

	if err := s.fundRepo.Donate(ctx, donation); err != nil {
		return nil, err
	}

	return &dto.DonationResponse{
		ID:        donation.ID,
		FundID:    donation.FundID,
		UserID:    donation.UserID,
		Amount:    donation.Amount,
		DonatedAt: donation.DonatedAt,
	}, nil
}

// ListDonations returns a page of donations to a fund
func (s *FundService) ListDonations(ctx context.Context, fundID int64, page, size int) (*dto.DonationListResponse, error) {
	if _, err := s.fundRepo.GetByID(ctx, fundID); err != nil {
		return nil, err
	}

	offset, limit := helpers.CalculateOffsetLimit(page, size)
	donations, total, err := s.fundRepo.ListDonationsByFund(ctx, fundID, offset, limit)
	if err != nil {
		return nil, err
	}

	items := make([]dto.DonationResponse, 0, len(donations))
	for _, donation := range donations {
		items = append(items, dto.DonationResponse{
			ID:        donation.ID,
			FundID:    donation.FundID,
			UserID:    donation.UserID,
			Amount:    donation.Amount,
			DonatedAt: donation.DonatedAt,
		})
	}

	return &dto.DonationListResponse{
		Donations:      items,
		PaginationInfo: helpers.NewPaginationInfo(total, page, size),
	}, nil
}

// ListMyDonations returns a page of the caller's own donations
func (s *FundService) ListMyDonations(ctx context.Context, userID int64, page, size int) (*dto.DonationListResponse, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, size)
	donations, total, err := s.fundRepo.ListDonationsByUser(ctx, userID, offset, limit)
	if err != nil {
		return nil, err
	}

	items := make([]dto.DonationResponse, 0, len(donations))
	for _, donation := range donations {
		items = append(items, dto.DonationResponse{
			ID:        donation.ID,
			FundID:    donation.FundID,
			UserID:    donation.UserID,
			Amount:    donation.Amount,
			DonatedAt: donation.DonatedAt,
		})
	}

	return &dto.DonationListResponse{
		Donations:      items,
		PaginationInfo: helpers.NewPaginationInfo(total, page, size),
	}, nil
}
