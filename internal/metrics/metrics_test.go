package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserve(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.Observe(KindPeople, 10, time.Millisecond, nil)
	m.Observe(KindPeople, 5, time.Millisecond, nil)
	m.Observe(KindCompanies, 0, time.Millisecond, errors.New("boom"))

	if got := testutil.ToFloat64(m.RecordsGenerated.WithLabelValues(KindPeople)); got != 15 {
		t.Errorf("people generated = %v, want 15", got)
	}
	if got := testutil.ToFloat64(m.RecordsGenerated.WithLabelValues(KindCompanies)); got != 0 {
		t.Errorf("companies generated = %v, want 0", got)
	}
	if got := testutil.ToFloat64(m.GenerationErrors.WithLabelValues(KindCompanies)); got != 1 {
		t.Errorf("company errors = %v, want 1", got)
	}
	if got := testutil.CollectAndCount(m.Duration); got != 2 {
		t.Errorf("duration series = %d, want 2", got)
	}
}

func TestNewRegistersOnInjectedRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	New(reg)

	// a second registration of the same names must fail on this registry only
	defer func() {
		if recover() == nil {
			t.Error("registering twice on one registry should panic")
		}
	}()
	New(reg)
}

func TestSeparateRegistries(t *testing.T) {
	New(prometheus.NewRegistry())
	New(prometheus.NewRegistry())
}
