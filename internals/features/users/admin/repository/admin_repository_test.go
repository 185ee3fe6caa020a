package repository

import (
	"context"
	"testing"
	"time"

	"azadi_backend/internals/features/users/admin/model"
	"azadi_backend/internals/storage"
	"azadi_backend/internals/storage/storagetest"
)

func TestBlacklistRevokeAndPurge(t *testing.T) {
	db := storagetest.NewDB(t, &model.User{}, &model.TokenBlacklist{})
	repo := NewAdminRepository(db)
	ctx := context.Background()
	now := time.Now()

	if err := repo.Revoke(ctx, "old", now.Add(-time.Hour)); err != nil {
		t.Fatal(err)
	}
	if err := repo.Revoke(ctx, "live", now.Add(time.Hour)); err != nil {
		t.Fatal(err)
	}
	if err := repo.Revoke(ctx, "live", now.Add(time.Hour)); err != nil {
		t.Fatalf("double revoke: %v", err)
	}

	n, err := repo.PurgeExpired(ctx, now)
	if err != nil || n != 1 {
		t.Fatalf("purged %d, err %v", n, err)
	}
	if revoked, _ := repo.IsRevoked(ctx, "old"); revoked {
		t.Error("expired entry still present")
	}
	if revoked, _ := repo.IsRevoked(ctx, "live"); !revoked {
		t.Error("live entry purged")
	}
}

func TestFindByUsernameNotFound(t *testing.T) {
	db := storagetest.NewDB(t, &model.User{})
	repo := NewAdminRepository(db)
	if _, err := repo.FindByUsername(context.Background(), "ghost"); !storage.IsNotFound(err) {
		t.Fatalf("got %v, want not found", err)
	}
}
