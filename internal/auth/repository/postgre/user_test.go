package postgre

import (
	"context"
	"testing"

	repo "ai-scheduler/internal/auth/repository"
	"ai-scheduler/internal/testutil"
	"ai-scheduler/pkg/log"
)

func TestUpsertUser_InsertThenRefresh(t *testing.T) {
	pool := testutil.NewMigratedPool(t)
	r := New(pool, log.NewNop())
	ctx := context.Background()

	first, err := r.UpsertUser(ctx, repo.UpsertUserOptions{Email: "alice@example.com", RefreshTokenEncrypted: "v1"})
	if err != nil {
		t.Fatalf("UpsertUser: %v", err)
	}
	if first.ID == "" || !first.IsActive {
		t.Fatalf("unexpected user: %+v", first)
	}

	second, err := r.UpsertUser(ctx, repo.UpsertUserOptions{Email: "alice@example.com", RefreshTokenEncrypted: "v2"})
	if err != nil {
		t.Fatalf("UpsertUser again: %v", err)
	}
	if second.ID != first.ID {
		t.Errorf("expected same id, got %s and %s", first.ID, second.ID)
	}
	if second.RefreshTokenEncrypted != "v2" {
		t.Errorf("token not refreshed: %q", second.RefreshTokenEncrypted)
	}
}

func TestGetUser(t *testing.T) {
	pool := testutil.NewMigratedPool(t)
	r := New(pool, log.NewNop())
	ctx := context.Background()

	id := testutil.InsertUser(t, ctx, pool, "bob@example.com")

	tests := []struct {
		name   string
		opt    repo.GetUserOptions
		wantID string
	}{
		{"by id", repo.GetUserOptions{ID: id}, id},
		{"by email", repo.GetUserOptions{Email: "bob@example.com"}, id},
		{"unknown email", repo.GetUserOptions{Email: "nobody@example.com"}, ""},
		{"malformed id", repo.GetUserOptions{ID: "not-a-uuid"}, ""},
		{"no filter", repo.GetUserOptions{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.GetUser(ctx, tt.opt)
			if err != nil {
				t.Fatalf("GetUser: %v", err)
			}
			if got.ID != tt.wantID {
				t.Errorf("ID = %q, want %q", got.ID, tt.wantID)
			}
		})
	}
}
