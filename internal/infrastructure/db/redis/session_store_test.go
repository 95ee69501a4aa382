package redis

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/bizlink/portal-api/internal/core/domain"
)

func TestDecodeSession_RoundTrip(t *testing.T) {
	saved := domain.NewSession(domain.User{
		ID:          "u1",
		Email:       "sarah@mining.com",
		DisplayName: "Sarah Mitchell",
		Role:        domain.RoleProfessional,
	})

	raw, err := json.Marshal(saved)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	decoded, ok := decodeSession(raw)
	if !ok {
		t.Fatalf("expected a valid decode")
	}
	if !reflect.DeepEqual(decoded, saved) {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", decoded, saved)
	}
}

func TestDecodeSession_CorruptPayloads(t *testing.T) {
	payloads := map[string][]byte{
		"not json":        []byte("{{{"),
		"wrong type":      []byte(`42`),
		"unauthenticated": []byte(`{"is_authenticated":false}`),
		"missing user":    []byte(`{"is_authenticated":true,"navigation_links":[{"id":"home"}]}`),
		"invalid role":    []byte(`{"user":{"id":"u1","email":"a@b.com","role":"root"},"is_authenticated":true,"navigation_links":[{"id":"home"}]}`),
		"empty nav":       []byte(`{"user":{"id":"u1","email":"a@b.com","role":"company"},"is_authenticated":true,"navigation_links":[]}`),
	}

	for name, raw := range payloads {
		if sess, ok := decodeSession(raw); ok {
			t.Fatalf("%s: expected decode failure, got %+v", name, sess)
		}
	}
}
