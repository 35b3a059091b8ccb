package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/alumeee/alumniconnect/internal/app/models"
	"github.com/alumeee/alumniconnect/internal/app/models/dto"
	"github.com/alumeee/alumniconnect/internal/app/repositories"
	"github.com/alumeee/alumniconnect/internal/pkg/apperrors"
)

func newMemoryFixture() (*MemoryService, *fakeMemoryRepo, *fakeStorage) {
	repo := newFakeMemoryRepo()
	storage := &fakeStorage{}
	return NewMemoryService(repo, storage, zerolog.Nop()), repo, storage
}

func TestCreateMemoryStartsUnapproved(t *testing.T) {
	svc, _, _ := newMemoryFixture()

	resp, err := svc.Create(context.Background(), 3, &dto.CreateMemoryRequest{
		Title:       "Farewell 2019",
		Description: "Last day on campus",
	}, nil)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if resp.IsApproved {
		t.Fatal("new posts must start unapproved")
	}
	if resp.OwnerID != 3 {
		t.Fatalf("OwnerID = %d, want 3", resp.OwnerID)
	}

	if _, err := svc.Create(context.Background(), 3, &dto.CreateMemoryRequest{Title: "   "}, nil); !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("blank title error = %v, want ErrValidationFailed", err)
	}
}

func TestMemoryDetailIsOwnerOrAdminOnly(t *testing.T) {
	svc, repo, _ := newMemoryFixture()
	id, err := repo.Create(context.Background(), &models.Memory{UserID: 3, Title: "Pending"})
	if err != nil {
		t.Fatal(err)
	}

	if _, err := svc.Get(context.Background(), id, 3, false); err != nil {
		t.Fatalf("owner should see their pending post: %v", err)
	}
	if _, err := svc.Get(context.Background(), id, 99, true); err != nil {
		t.Fatalf("admin should see pending posts: %v", err)
	}
	if _, err := svc.Get(context.Background(), id, 99, false); !errors.Is(err, apperrors.ErrNotOwner) {
		t.Fatalf("stranger error = %v, want ErrNotOwner", err)
	}

	// Approval publishes the post in the gallery listing, not the detail view
	if err := svc.Approve(context.Background(), id); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Get(context.Background(), id, 99, false); !errors.Is(err, apperrors.ErrNotOwner) {
		t.Fatalf("stranger error after approval = %v, want ErrNotOwner", err)
	}
	if _, err := svc.Get(context.Background(), id, 3, false); err != nil {
		t.Fatalf("owner should still see their approved post: %v", err)
	}
}

func TestApprovedListingExcludesPending(t *testing.T) {
	svc, repo, _ := newMemoryFixture()
	approvedID, _ := repo.Create(context.Background(), &models.Memory{UserID: 1, Title: "Public"})
	if err := repo.Approve(context.Background(), approvedID); err != nil {
		t.Fatal(err)
	}
	if _, err := repo.Create(context.Background(), &models.Memory{UserID: 1, Title: "Hidden"}); err != nil {
		t.Fatal(err)
	}

	gallery, err := svc.ListApproved(context.Background(), 1, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(gallery.Memories) != 1 || gallery.Memories[0].Title != "Public" {
		t.Fatalf("gallery = %+v, want only the approved post", gallery.Memories)
	}

	pending, err := svc.ListPending(context.Background(), 1, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(pending.Memories) != 1 || pending.Memories[0].Title != "Hidden" {
		t.Fatalf("pending = %+v, want only the unapproved post", pending.Memories)
	}
}

func TestDeleteMemoryOwnership(t *testing.T) {
	svc, repo, storage := newMemoryFixture()
	imageURL := "/uploads/mem.jpg"
	id, err := repo.Create(context.Background(), &models.Memory{UserID: 3, Title: "Mine", ImageURL: &imageURL})
	if err != nil {
		t.Fatal(err)
	}

	if err := svc.Delete(context.Background(), id, 99, false); !errors.Is(err, apperrors.ErrNotOwner) {
		t.Fatalf("stranger delete error = %v, want ErrNotOwner", err)
	}

	if err := svc.Delete(context.Background(), id, 3, false); err != nil {
		t.Fatalf("owner delete error = %v", err)
	}
	if len(storage.deleted) != 1 || storage.deleted[0] != imageURL {
		t.Fatalf("stored image must be removed with the post, deleted = %v", storage.deleted)
	}

	if err := svc.Delete(context.Background(), id, 3, false); !errors.Is(err, repositories.ErrMemoryNotFound) {
		t.Fatalf("second delete error = %v, want ErrMemoryNotFound", err)
	}
}
