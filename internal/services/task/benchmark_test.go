package task

import (
	"context"
	"fmt"
	"testing"

	"github.com/thenoetrevino/tarea/internal/models"
)

// ============================================================================
// BENCHMARK SETUP HELPERS
// ============================================================================

// setupBenchmarkStore creates a store holding n pending tasks spread over categories
func setupBenchmarkStore(b *testing.B, n int) *Store {
	b.Helper()
	s, _ := setupTestStore(b)
	ctx := context.Background()
	categories := models.Categories()

	for i := range n {
		d := models.Draft{
			Text:     fmt.Sprintf("task %d groceries", i),
			Category: string(categories[i%len(categories)]),
		}
		if i%3 != 0 {
			d.DueDate = fmt.Sprintf("2024-%02d-%02d", i%12+1, i%28+1)
		}
		if _, err := s.Create(ctx, d); err != nil {
			b.Fatalf("Create failed: %v", err)
		}
	}
	return s
}

// ============================================================================
// BENCHMARKS
// ============================================================================

func BenchmarkView(b *testing.B) {
	s := setupBenchmarkStore(b, 500)
	b.ResetTimer()

	for b.Loop() {
		_ = s.View(models.ListPending, "GROCERIES", "Work")
	}
}

func BenchmarkCreate(b *testing.B) {
	s, _ := setupTestStore(b)
	ctx := context.Background()
	b.ResetTimer()

	for b.Loop() {
		if _, err := s.Create(ctx, models.Draft{Text: "bench"}); err != nil {
			b.Fatalf("Create failed: %v", err)
		}
	}
}
