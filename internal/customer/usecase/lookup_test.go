package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"cseboard/internal/customer"
	"cseboard/internal/customer/usecase"
)

func TestDetail_NotFoundIsNotAnError(t *testing.T) {
	uc := newUseCase(newMemStore())

	out, err := uc.Detail(context.Background(), "nonexistent")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if out.Found {
		t.Error("expected Found=false")
	}
}

func TestDetail_StoreError(t *testing.T) {
	store := newMemStore()
	store.failGet = errors.New("timeout")
	uc := newUseCase(store)

	_, err := uc.Detail(context.Background(), "Acme")
	var se *customer.StoreError
	if !errors.As(err, &se) || se.Op != "get" {
		t.Errorf("expected get StoreError, got %v", err)
	}
}

func TestListOrgs(t *testing.T) {
	store := newMemStore()
	uc := newUseCase(store)
	ctx := context.Background()

	for _, org := range []string{"A", "B", "A"} {
		if _, err := uc.Apply(ctx, customer.ApplyInput{Org: org, Fields: customer.Fields{Health: customer.Ptr("Green")}}); err != nil {
			t.Fatalf("apply %s: %v", org, err)
		}
	}

	out, err := uc.ListOrgs(ctx)
	if err != nil {
		t.Fatalf("ListOrgs: %v", err)
	}
	if len(out.Orgs) != 2 || out.Orgs[0] != "A" || out.Orgs[1] != "B" {
		t.Errorf("expected [A B], got %v", out.Orgs)
	}

	store.failList = errors.New("boom")
	if _, err := uc.ListOrgs(ctx); err == nil {
		t.Error("expected error from failing store")
	}
}

func TestDetail_CacheInvalidatedByApply(t *testing.T) {
	store := newMemStore()
	uc := usecase.New(store, &mockLogger{}, usecase.Options{CacheSize: 16, CacheTTL: time.Minute})
	ctx := context.Background()

	uc.Apply(ctx, customer.ApplyInput{Org: "Acme", Fields: customer.Fields{Health: customer.Ptr("Green")}})

	uc.Detail(ctx, "Acme")
	uc.Detail(ctx, "Acme")
	if store.getCalls != 1 {
		t.Errorf("expected second Detail to be served from cache, got %d store reads", store.getCalls)
	}

	uc.Apply(ctx, customer.ApplyInput{Org: "Acme", Fields: customer.Fields{Health: customer.Ptr("Red")}})

	out, err := uc.Detail(ctx, "Acme")
	if err != nil {
		t.Fatalf("Detail: %v", err)
	}
	if out.Record.Health == nil || *out.Record.Health != "Red" {
		t.Errorf("expected fresh Health=Red after apply, got %+v", out.Record.Fields)
	}
	if store.getCalls != 2 {
		t.Errorf("expected a store read after invalidation, got %d", store.getCalls)
	}
}

func TestDetail_NotFoundNotCached(t *testing.T) {
	store := newMemStore()
	uc := usecase.New(store, &mockLogger{}, usecase.Options{CacheSize: 16})
	ctx := context.Background()

	uc.Detail(ctx, "Acme")
	uc.Detail(ctx, "Acme")
	if store.getCalls != 2 {
		t.Errorf("expected not-found lookups to reach the store, got %d", store.getCalls)
	}
}

func TestDetail_ReadRacingApplyIsNotCached(t *testing.T) {
	store := newMemStore()
	uc := usecase.New(store, &mockLogger{}, usecase.Options{CacheSize: 16, CacheTTL: time.Minute})
	ctx := context.Background()

	if _, err := uc.Apply(ctx, customer.ApplyInput{Org: "Acme", Fields: customer.Fields{Health: customer.Ptr("Green")}}); err != nil {
		t.Fatalf("apply: %v", err)
	}

	read := make(chan struct{})
	release := make(chan struct{})
	store.mu.Lock()
	store.afterGet = func() {
		close(read)
		<-release
	}
	store.mu.Unlock()

	done := make(chan customer.DetailOutput)
	go func() {
		out, _ := uc.Detail(ctx, "Acme")
		done <- out
	}()

	// The read has seen Green; a write lands before it returns.
	<-read
	if _, err := uc.Apply(ctx, customer.ApplyInput{Org: "Acme", Fields: customer.Fields{Health: customer.Ptr("Red")}}); err != nil {
		t.Fatalf("apply: %v", err)
	}
	close(release)

	if out := <-done; out.Record.Health == nil || *out.Record.Health != "Green" {
		t.Fatalf("expected the in-flight read to return what it saw, got %+v", out.Record.Fields)
	}

	out, err := uc.Detail(ctx, "Acme")
	if err != nil {
		t.Fatalf("Detail: %v", err)
	}
	if out.Record.Health == nil || *out.Record.Health != "Red" {
		t.Errorf("expected Health=Red after apply, got %+v", out.Record.Fields)
	}
}
