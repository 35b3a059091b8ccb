package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"github.com/alumeee/alumniconnect/internal/app/models"
	"github.com/alumeee/alumniconnect/internal/app/models/dto"
	"github.com/alumeee/alumniconnect/internal/app/repositories"
	"github.com/alumeee/alumniconnect/internal/pkg/apperrors"
)

func TestCreateFund(t *testing.T) {
	svc := NewFundService(newFakeFundRepo(), zerolog.Nop())

	resp, err := svc.Create(context.Background(), &dto.CreateFundRequest{
		Title:        "Library wing",
		TargetAmount: 500000,
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if resp.CollectedAmount != 0 || resp.PercentOfGoal != 0 {
		t.Fatalf("new fund must start at zero, got %+v", resp)
	}
	if resp.CreatedAt.IsZero() {
		t.Fatal("new fund must carry its creation time")
	}

	if _, err := svc.Create(context.Background(), &dto.CreateFundRequest{Title: "Bad", TargetAmount: 0}); !errors.Is(err, apperrors.ErrInvalidAmount) {
		t.Fatalf("zero target error = %v, want ErrInvalidAmount", err)
	}
}

func TestDonate(t *testing.T) {
	repo := newFakeFundRepo()
	svc := NewFundService(repo, zerolog.Nop())
	fundID, err := repo.Create(context.Background(), &models.Fund{Title: "Lab fund", TargetAmount: 1000})
	if err != nil {
		t.Fatal(err)
	}

	if _, err := svc.Donate(context.Background(), 7, fundID, &dto.DonateRequest{Amount: -5}); !errors.Is(err, apperrors.ErrInvalidAmount) {
		t.Fatalf("negative amount error = %v, want ErrInvalidAmount", err)
	}
	if _, err := svc.Donate(context.Background(), 7, 999, &dto.DonateRequest{Amount: 100}); !errors.Is(err, repositories.ErrFundNotFound) {
		t.Fatalf("unknown fund error = %v, want ErrFundNotFound", err)
	}

	first, err := svc.Donate(context.Background(), 7, fundID, &dto.DonateRequest{Amount: 300})
	if err != nil {
		t.Fatalf("Donate() error = %v", err)
	}
	if first.Amount != 300 || first.FundID != fundID {
		t.Fatalf("donation = %+v", first)
	}
	if _, err := svc.Donate(context.Background(), 8, fundID, &dto.DonateRequest{Amount: 200}); err != nil {
		t.Fatal(err)
	}

	fund, err := svc.Get(context.Background(), fundID)
	if err != nil {
		t.Fatal(err)
	}
	if fund.CollectedAmount != 500 {
		t.Fatalf("CollectedAmount = %d, want 500 (donations must accumulate)", fund.CollectedAmount)
	}
	if fund.PercentOfGoal != 50 {
		t.Fatalf("PercentOfGoal = %d, want 50", fund.PercentOfGoal)
	}
}

func TestDonateConcurrentAccumulation(t *testing.T) {
	repo := newFakeFundRepo()
	svc := NewFundService(repo, zerolog.Nop())
	fundID, err := repo.Create(context.Background(), &models.Fund{Title: "Stadium fund", TargetAmount: 100000})
	if err != nil {
		t.Fatal(err)
	}

	const donors = 20
	var wg sync.WaitGroup
	for i := 0; i < donors; i++ {
		wg.Add(1)
		go func(userID int64) {
			defer wg.Done()
			if _, err := svc.Donate(context.Background(), userID, fundID, &dto.DonateRequest{Amount: 50}); err != nil {
				t.Errorf("Donate() error = %v", err)
			}
		}(int64(i + 1))
	}
	wg.Wait()

	fund, err := svc.Get(context.Background(), fundID)
	if err != nil {
		t.Fatal(err)
	}
	if fund.CollectedAmount != donors*50 {
		t.Fatalf("CollectedAmount = %d, want %d (every donation must land)", fund.CollectedAmount, donors*50)
	}
}

func TestListDonations(t *testing.T) {
	repo := newFakeFundRepo()
	svc := NewFundService(repo, zerolog.Nop())
	fundID, _ := repo.Create(context.Background(), &models.Fund{Title: "Lab fund", TargetAmount: 1000})

	if _, err := svc.ListDonations(context.Background(), 999, 1, 10); !errors.Is(err, repositories.ErrFundNotFound) {
		t.Fatalf("unknown fund error = %v, want ErrFundNotFound", err)
	}

	if _, err := svc.Donate(context.Background(), 7, fundID, &dto.DonateRequest{Amount: 100}); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Donate(context.Background(), 8, fundID, &dto.DonateRequest{Amount: 50}); err != nil {
		t.Fatal(err)
	}

	byFund, err := svc.ListDonations(context.Background(), fundID, 1, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(byFund.Donations) != 2 {
		t.Fatalf("fund donations = %d, want 2", len(byFund.Donations))
	}

	mine, err := svc.ListMyDonations(context.Background(), 7, 1, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(mine.Donations) != 1 || mine.Donations[0].Amount != 100 {
		t.Fatalf("user donations = %+v, want the single 100 donation", mine.Donations)
	}
}
