package service

import (
	"testing"

	"go.uber.org/zap"

	"github.com/bekzodov/jadval-bot/internal/repository"
)

func newUserService(t *testing.T, dir string, adminIDs []int64) *UserService {
	t.Helper()
	svc, err := NewUserService(repository.NewUserRepository(dir), adminIDs, "07:30", zap.NewNop())
	if err != nil {
		t.Fatalf("NewUserService: %v", err)
	}
	return svc
}

func TestEnsureRegistersWithDefaultNotifyTime(t *testing.T) {
	svc := newUserService(t, t.TempDir(), nil)

	u, created := svc.Ensure(100)
	if !created {
		t.Fatal("first Ensure should create the record")
	}
	if u.ChatID != 100 || u.NotifyTime != "07:30" {
		t.Fatalf("created user = %+v", u)
	}

	if _, created := svc.Ensure(100); created {
		t.Fatal("second Ensure should be a no-op")
	}
	if svc.Count() != 1 {
		t.Fatalf("Count() = %d", svc.Count())
	}
}

func TestSetNotifyTimePersistsAcrossRestart(t *testing.T) {
	dir := t.TempDir()
	svc := newUserService(t, dir, nil)

	svc.Ensure(100)
	svc.SetNotifyTime(100, "21:15")

	reloaded := newUserService(t, dir, nil)
	u, ok := reloaded.Get(100)
	if !ok {
		t.Fatal("user lost on reload")
	}
	if u.ChatID != 100 || u.NotifyTime != "21:15" {
		t.Fatalf("reloaded user = %+v", u)
	}
}

func TestIsAdminAndRecipients(t *testing.T) {
	svc := newUserService(t, t.TempDir(), []int64{7, 8})

	if !svc.IsAdmin(7) || !svc.IsAdmin(8) {
		t.Fatal("configured admins not recognized")
	}
	if svc.IsAdmin(100) {
		t.Fatal("regular user reported as admin")
	}

	svc.Ensure(100)
	svc.Ensure(7)
	svc.Ensure(50)

	got := svc.Recipients()
	if len(got) != 2 || got[0] != 50 || got[1] != 100 {
		t.Fatalf("Recipients() = %v", got)
	}
}

func TestRemoveDeletesRecord(t *testing.T) {
	dir := t.TempDir()
	svc := newUserService(t, dir, nil)

	svc.Ensure(100)
	svc.Remove(100)
	svc.Remove(100)

	if _, ok := svc.Get(100); ok {
		t.Fatal("removed user still present")
	}

	reloaded := newUserService(t, dir, nil)
	if reloaded.Count() != 0 {
		t.Fatalf("removal not persisted, Count() = %d", reloaded.Count())
	}
}

func TestAllReturnsStableOrder(t *testing.T) {
	svc := newUserService(t, t.TempDir(), nil)
	for _, id := range []int64{30, 10, 20} {
		svc.Ensure(id)
	}

	all := svc.All()
	if len(all) != 3 || all[0].ChatID != 10 || all[1].ChatID != 20 || all[2].ChatID != 30 {
		t.Fatalf("All() = %+v", all)
	}
}
