package memory

import (
	"context"
	"reflect"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/bizlink/portal-api/internal/api/metrics"
	"github.com/bizlink/portal-api/internal/core/domain"
)

func professionalSession() *domain.Session {
	return domain.NewSession(domain.User{
		ID:          "u1",
		Email:       "sarah@mining.com",
		DisplayName: "Sarah Mitchell",
		PhoneNumber: "2025550199",
		Role:        domain.RoleProfessional,
	})
}

func TestSessionStore_LoadBeforeSave(t *testing.T) {
	store := NewSessionStore()

	sess, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if sess != nil {
		t.Fatalf("fresh store must be empty, got %+v", sess)
	}
}

func TestSessionStore_RoundTrip(t *testing.T) {
	store := NewSessionStore()
	saved := professionalSession()

	if err := store.Save(context.Background(), saved); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	loaded, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !reflect.DeepEqual(loaded, saved) {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", loaded, saved)
	}
}

func TestSessionStore_ClearIdempotent(t *testing.T) {
	store := NewSessionStore()
	if err := store.Save(context.Background(), professionalSession()); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	for i := 0; i < 2; i++ {
		if err := store.Clear(context.Background()); err != nil {
			t.Fatalf("Clear %d returned error: %v", i, err)
		}
		sess, err := store.Load(context.Background())
		if err != nil || sess != nil {
			t.Fatalf("Clear %d: expected empty store, got %+v / %v", i, sess, err)
		}
	}
}

func TestSessionStore_CorruptPayloadLoadsAsAbsent(t *testing.T) {
	payloads := [][]byte{
		[]byte("{not json"),
		[]byte(`"a string"`),
		[]byte(`{"is_authenticated":false}`),
		[]byte(`{"user":{"id":"u1","email":"a@b.com","role":"root"},"is_authenticated":true,"navigation_links":[{"id":"home"}]}`),
		[]byte(`{"user":{"id":"u1","email":"a@b.com","role":"company"},"is_authenticated":true,"navigation_links":[]}`),
	}

	for i, raw := range payloads {
		store := NewSessionStore()
		store.Corrupt(raw)

		sess, err := store.Load(context.Background())
		if err != nil {
			t.Fatalf("payload %d: corruption must not surface as an error: %v", i, err)
		}
		if sess != nil {
			t.Fatalf("payload %d: corrupt data must read as logged out, got %+v", i, sess)
		}
	}
}

func TestSessionStore_ConcurrentAccess(t *testing.T) {
	store := NewSessionStore()
	sess := professionalSession()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(3)
		go func() {
			defer wg.Done()
			_ = store.Save(context.Background(), sess)
		}()
		go func() {
			defer wg.Done()
			_, _ = store.Load(context.Background())
		}()
		go func() {
			defer wg.Done()
			_ = store.Clear(context.Background())
		}()
	}
	wg.Wait()

	// Whatever interleaving happened, the slot is either empty or holds
	// the one session that was ever written.
	final, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if final != nil && !reflect.DeepEqual(final, sess) {
		t.Fatalf("unexpected final state: %+v", final)
	}
}

func TestSessionStore_ActiveGaugeFollowsSlot(t *testing.T) {
	store := NewSessionStore()

	if err := store.Save(context.Background(), professionalSession()); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	if got := testutil.ToFloat64(metrics.SessionsActive); got != 1 {
		t.Fatalf("expected active gauge 1 after save, got %v", got)
	}

	if err := store.Clear(context.Background()); err != nil {
		t.Fatalf("Clear returned error: %v", err)
	}
	if got := testutil.ToFloat64(metrics.SessionsActive); got != 0 {
		t.Fatalf("expected active gauge 0 after clear, got %v", got)
	}

	// A corrupt slot counts as logged out once read.
	if err := store.Save(context.Background(), professionalSession()); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	store.Corrupt([]byte("{not json"))
	if _, err := store.Load(context.Background()); err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if got := testutil.ToFloat64(metrics.SessionsActive); got != 0 {
		t.Fatalf("expected active gauge 0 after corrupt load, got %v", got)
	}
}
