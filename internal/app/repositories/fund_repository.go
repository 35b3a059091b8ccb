package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/alumeee/alumniconnect/internal/app/models"
	"github.com/alumeee/alumniconnect/internal/db"
	"github.com/alumeee/alumniconnect/internal/pkg/apperrors"
	"github.com/alumeee/alumniconnect/internal/pkg/logger"
)

var ErrFundNotFound = apperrors.ErrFundNotFound

// IFundRepository defines the interface for fund and donation database operations
type IFundRepository interface {
	Create(ctx context.Context, fund *models.Fund) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Fund, error)
	List(ctx context.Context, offset uint64, limit int) ([]*models.Fund, int64, error)
	Donate(ctx context.Context, donation *models.Donation) error
	ListDonationsByFund(ctx context.Context, fundID int64, offset uint64, limit int) ([]*models.Donation, int64, error)
	ListDonationsByUser(ctx context.Context, userID int64, offset uint64, limit int) ([]*models.Donation, int64, error)
}

// FundRepository handles fund and donation database operations
type FundRepository struct {
	db *pgxpool.Pool
}

// NewFundRepository creates a new FundRepository
func NewFundRepository(db *pgxpool.Pool) *FundRepository {
	return &FundRepository{
		db: db,
	}
}

// Create inserts a new fund
func (r *FundRepository) Create(ctx context.Context, fund *models.Fund) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO funds (title, description, target_amount, image_url)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`,
		fund.Title, fund.Description, fund.TargetAmount, fund.ImageURL).Scan(&id, &fund.CreatedAt)

	if err != nil {
		return 0, fmt.Errorf("error creating fund: %w", err)
	}

	return id, nil
}

const fundColumns = `id, title, description, target_amount, collected_amount, image_url, created_at`

func scanFund(row pgx.Row) (*models.Fund, error) {
	fund := &models.Fund{}
	err := row.Scan(
		&fund.ID, &fund.Title, &fund.Description, &fund.TargetAmount,
		&fund.CollectedAmount, &fund.ImageURL, &fund.CreatedAt)
	if err != nil {
		return nil, err
	}
	return fund, nil
}

// GetByID retrieves a fund by ID
func (r *FundRepository) GetByID(ctx context.Context, id int64) (*models.Fund, error) {
	fund, err := scanFund(r.db.QueryRow(ctx, `
		SELECT `+fundColumns+` FROM funds WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrFundNotFound
		}
		return nil, fmt.Errorf("error retrieving fund: %w", err)
	}
	return fund, nil
}

// List retrieves a page of funds, newest first
func (r *FundRepository) List(ctx context.Context, offset uint64, limit int) ([]*models.Fund, int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM funds`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting funds: %w", err)
	}

	rows, err := r.db.Query(ctx, `
		SELECT `+fundColumns+` FROM funds
		ORDER BY created_at DESC
		OFFSET $1 LIMIT $2`,
		offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing funds: %w", err)
	}
	defer rows.Close()

	var funds []*models.Fund
	for rows.Next() {
		fund, err := scanFund(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning fund row: %w", err)
		}
		funds = append(funds, fund)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating fund rows: %w", err)
	}

	return funds, total, nil
}

// Donate records a donation and bumps the fund total in one transaction.
// The increment is relative so concurrent donations never lose updates.
func (r *FundRepository) Donate(ctx context.Context, donation *models.Donation) error {
	err := db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `
			UPDATE funds
			SET collected_amount = collected_amount + $1
			WHERE id = $2`,
			donation.Amount, donation.FundID)
		if err != nil {
			return fmt.Errorf("error updating fund total: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return ErrFundNotFound
		}

		err = tx.QueryRow(ctx, `
			INSERT INTO donations (user_id, fund_id, amount)
			VALUES ($1, $2, $3)
			RETURNING id, donated_at`,
			donation.UserID, donation.FundID, donation.Amount).Scan(&donation.ID, &donation.DonatedAt)
		if err != nil {
			return fmt.Errorf("error recording donation: %w", err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	logger.Info().Int64("fundID", donation.FundID).Int64("userID", donation.UserID).
		Int64("amount", donation.Amount).Msg("Donation recorded")
	return nil
}

const donationSelect = `
	SELECT dn.id, dn.user_id, dn.fund_id, dn.amount, dn.donated_at,
	       u.first_name, u.last_name
	FROM donations dn
	JOIN users u ON u.id = dn.user_id`

func (r *FundRepository) listDonations(ctx context.Context, where string, arg any, offset uint64, limit int) ([]*models.Donation, int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM donations dn`+where, arg).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting donations: %w", err)
	}

	listSQL := donationSelect + where + fmt.Sprintf(` ORDER BY dn.donated_at DESC OFFSET %d LIMIT %d`, offset, limit)
	rows, err := r.db.Query(ctx, listSQL, arg)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing donations: %w", err)
	}
	defer rows.Close()

	var donations []*models.Donation
	for rows.Next() {
		donation := &models.Donation{User: &models.User{}}
		err := rows.Scan(
			&donation.ID, &donation.UserID, &donation.FundID, &donation.Amount, &donation.DonatedAt,
			&donation.User.FirstName, &donation.User.LastName)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning donation row: %w", err)
		}
		donation.User.ID = donation.UserID
		donations = append(donations, donation)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating donation rows: %w", err)
	}

	return donations, total, nil
}

// ListDonationsByFund retrieves a page of donations to a fund
func (r *FundRepository) ListDonationsByFund(ctx context.Context, fundID int64, offset uint64, limit int) ([]*models.Donation, int64, error) {
	return r.listDonations(ctx, ` WHERE dn.fund_id = $1`, fundID, offset, limit)
}

// ListDonationsByUser retrieves a page of a user's donations
func (r *FundRepository) ListDonationsByUser(ctx context.Context, userID int64, offset uint64, limit int) ([]*models.Donation, int64, error) {
	return r.listDonations(ctx, ` WHERE dn.user_id = $1`, userID, offset, limit)
}
