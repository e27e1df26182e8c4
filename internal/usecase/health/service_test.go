package health

import (
	"context"
	"errors"
	"testing"
)

type mockPinger struct {
	err error
}

func (m *mockPinger) Ping(_ context.Context) error { return m.err }

func TestCheck_Healthy(t *testing.T) {
	svc := New(&mockPinger{})

	report := svc.Check(context.Background())
	if report.Status != Healthy {
		t.Errorf("status: got %s, want %s", report.Status, Healthy)
	}
	if report.Checks["store"] != CheckOK {
		t.Errorf("store check: got %s", report.Checks["store"])
	}
}

func TestCheck_StoreDown(t *testing.T) {
	svc := New(&mockPinger{err: errors.New("connection refused")})

	report := svc.Check(context.Background())
	if report.Status != Unhealthy {
		t.Errorf("status: got %s, want %s", report.Status, Unhealthy)
	}
	if report.Checks["store"] != CheckError {
		t.Errorf("store check: got %s", report.Checks["store"])
	}
}
