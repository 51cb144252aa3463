package policy

import (
	"errors"
	"testing"

	"github.com/pressroom/content-api/internal/core/domain"
	"github.com/pressroom/content-api/internal/core/ports"
)

func TestPostPolicy_AnonymousDeniedEverywhere(t *testing.T) {
	engine := ForPosts(VisibilityPublic)
	record := &domain.Post{ID: "p1", CreatedBy: "u1"}

	for _, action := range allActions {
		if err := engine.Authorize(domain.Anonymous(), action, record); !errors.Is(err, domain.ErrForbidden) {
			t.Fatalf("expected anonymous deny for %s, got %v", action, err)
		}
	}
}

func TestPostPolicy_AuthenticatedShowAndCreate(t *testing.T) {
	engine := ForPosts(VisibilityPublic)
	record := &domain.Post{ID: "p1", CreatedBy: "someone-else"}

	actor := member("u1")
	if err := engine.Authorize(actor, ActionShow, record); err != nil {
		t.Fatalf("show denied: %v", err)
	}
	if err := engine.Authorize(actor, ActionCreate, record); err != nil {
		t.Fatalf("create denied: %v", err)
	}
}

func TestPostPolicy_OwnerOnlyMutation(t *testing.T) {
	engine := ForPosts(VisibilityPublic)
	record := &domain.Post{ID: "p1", CreatedBy: "owner-1"}

	for _, action := range []Action{ActionUpdate, ActionDestroy} {
		if err := engine.Authorize(member("owner-1"), action, record); err != nil {
			t.Fatalf("owner denied %s: %v", action, err)
		}
		if err := engine.Authorize(member("intruder"), action, record); !errors.Is(err, domain.ErrForbidden) {
			t.Fatalf("expected non-owner deny for %s, got %v", action, err)
		}
		if err := engine.Authorize(admin(), action, record); err != nil {
			t.Fatalf("admin denied %s: %v", action, err)
		}
	}
}

func TestPostPolicy_ScopeVisibility(t *testing.T) {
	public := ForPosts(VisibilityPublic)
	if got := public.Scope(member("u1"), ports.ListPostsFilter{}); got.CreatedBy != "" {
		t.Fatalf("public scope should not restrict, got %q", got.CreatedBy)
	}

	owner := ForPosts(VisibilityOwner)
	if got := owner.Scope(member("u1"), ports.ListPostsFilter{}); got.CreatedBy != "u1" {
		t.Fatalf("owner scope should restrict to actor, got %q", got.CreatedBy)
	}
	if got := owner.Scope(admin(), ports.ListPostsFilter{}); got.CreatedBy != "" {
		t.Fatalf("admin listing should stay unfiltered, got %q", got.CreatedBy)
	}
}

func TestUserPolicy_SelfOrAdmin(t *testing.T) {
	engine := ForUsers()
	account := &domain.User{ID: "u1", Role: domain.RoleUser}

	if err := engine.Authorize(member("u1"), ActionShow, account); err != nil {
		t.Fatalf("self show denied: %v", err)
	}
	if err := engine.Authorize(member("u1"), ActionUpdate, account); err != nil {
		t.Fatalf("self update denied: %v", err)
	}
	if err := engine.Authorize(member("u2"), ActionShow, account); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected other-user deny, got %v", err)
	}
	if err := engine.Authorize(member("u1"), ActionDestroy, account); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected self destroy deny, got %v", err)
	}
	if err := engine.Authorize(admin(), ActionDestroy, account); err != nil {
		t.Fatalf("admin destroy denied: %v", err)
	}
}
