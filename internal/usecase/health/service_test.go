package health

import (
	"context"
	"errors"
	"testing"
)

// --- Mocks ---

type mockCorpusPinger struct {
	err error
}

func (m *mockCorpusPinger) Ping(_ context.Context) error { return m.err }

// --- Tests ---

func TestCheck_Healthy(t *testing.T) {
	svc := New(&mockCorpusPinger{})
	r := svc.Check(context.Background())

	if r.Status != Healthy {
		t.Errorf("expected %q, got %q", Healthy, r.Status)
	}
	if r.Checks["corpus"] != CheckOK {
		t.Errorf("expected corpus %q, got %q", CheckOK, r.Checks["corpus"])
	}
	if len(r.Checks) != 1 {
		t.Errorf("expected one check, got %v", r.Checks)
	}
}

func TestCheck_CorpusError(t *testing.T) {
	svc := New(&mockCorpusPinger{err: errors.New("no such directory")})
	r := svc.Check(context.Background())

	if r.Status != Degraded {
		t.Errorf("expected %q, got %q", Degraded, r.Status)
	}
	if r.Checks["corpus"] != CheckError {
		t.Errorf("expected corpus %q, got %q", CheckError, r.Checks["corpus"])
	}
}
