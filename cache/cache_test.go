package cache

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
)

func TestLoadOrGenerateCoalescesConcurrentMisses(t *testing.T) {
	m, err := NewMemory(16)
	if err != nil {
		t.Fatal(err)
	}
	key := Key{SpecificationID: "onix_3.0::jstor", EntityID: "work-1", UpstreamLastUpdated: "2020-01-01"}

	var calls int32
	start := make(chan struct{})
	const n = 20
	results := make([][]byte, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			got, err := m.LoadOrGenerate(context.Background(), key, func(ctx context.Context) ([]byte, error) {
				atomic.AddInt32(&calls, 1)
				return []byte("generated-bytes"), nil
			})
			if err != nil {
				t.Error(err)
				return
			}
			results[i] = got
		}(i)
	}
	close(start)
	wg.Wait()

	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Errorf("query invoked %d times, want 1", got)
	}
	for i, got := range results {
		if string(got) != "generated-bytes" {
			t.Errorf("result[%d] = %q", i, got)
		}
	}
}

func TestLoadOrGenerateDistinctKeysBothInvoke(t *testing.T) {
	m, err := NewMemory(16)
	if err != nil {
		t.Fatal(err)
	}
	var calls int32
	for i := 0; i < 2; i++ {
		key := Key{SpecificationID: "csv::thoth", EntityID: fmt.Sprintf("work-%d", i), UpstreamLastUpdated: "t"}
		_, err := m.LoadOrGenerate(context.Background(), key, func(ctx context.Context) ([]byte, error) {
			atomic.AddInt32(&calls, 1)
			return []byte("x"), nil
		})
		if err != nil {
			t.Fatal(err)
		}
	}
	if calls != 2 {
		t.Errorf("calls = %d, want 2", calls)
	}
}

func TestLoadOrGenerateInvalidatesOnTimestampChange(t *testing.T) {
	m, err := NewMemory(16)
	if err != nil {
		t.Fatal(err)
	}
	var calls int32
	query := func(ctx context.Context) ([]byte, error) {
		atomic.AddInt32(&calls, 1)
		return []byte("v"), nil
	}
	k1 := Key{SpecificationID: "csv::thoth", EntityID: "work-1", UpstreamLastUpdated: "2020-01-01"}
	k2 := Key{SpecificationID: "csv::thoth", EntityID: "work-1", UpstreamLastUpdated: "2020-02-01"}

	if _, err := m.LoadOrGenerate(context.Background(), k1, query); err != nil {
		t.Fatal(err)
	}
	if _, err := m.LoadOrGenerate(context.Background(), k1, query); err != nil {
		t.Fatal(err)
	}
	if calls != 1 {
		t.Errorf("calls after repeated k1 = %d, want 1", calls)
	}
	if _, err := m.LoadOrGenerate(context.Background(), k2, query); err != nil {
		t.Fatal(err)
	}
	if calls != 2 {
		t.Errorf("calls after k2 (changed timestamp) = %d, want 2", calls)
	}
}

func TestLoadOrGenerateSurfacesErrorWithoutCaching(t *testing.T) {
	m, err := NewMemory(16)
	if err != nil {
		t.Fatal(err)
	}
	key := Key{SpecificationID: "csv::thoth", EntityID: "work-1", UpstreamLastUpdated: "t"}
	boom := fmt.Errorf("boom")
	var calls int32
	query := func(ctx context.Context) ([]byte, error) {
		atomic.AddInt32(&calls, 1)
		return nil, boom
	}
	if _, err := m.LoadOrGenerate(context.Background(), key, query); err == nil {
		t.Fatal("expected error")
	}
	if _, err := m.LoadOrGenerate(context.Background(), key, query); err == nil {
		t.Fatal("expected error on retry")
	}
	if calls != 2 {
		t.Errorf("calls = %d, want 2 (retry after failure)", calls)
	}
}
