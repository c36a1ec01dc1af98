package sharpness

import (
	"context"
	"testing"

	"go-image-sharpness/internal/observer"
)

func TestBatchEvaluator_EvaluateAll(t *testing.T) {
	be := NewBatchEvaluator(DefaultOptions())
	defer be.Close()

	edge := verticalEdgeImage(100, 100)
	jobs := []BatchJob{
		{ID: "job-1", Image: edge, Metric: MetricTenengrad},
		{ID: "job-2", Image: edge, Metric: MetricLaplacian},
		{ID: "job-3", Image: edge}, // Empty metric falls back to Tenengrad
	}

	results := be.EvaluateAll(context.Background(), jobs)

	if len(results) != len(jobs) {
		t.Fatalf("Expected %d results, got %d", len(jobs), len(results))
	}
	for i, result := range results {
		if result.ID != jobs[i].ID {
			t.Errorf("Expected result %d for %s, got %s", i, jobs[i].ID, result.ID)
		}
		if result.Err != nil {
			t.Errorf("Expected no error for %s, got %v", result.ID, result.Err)
		}
		if result.Score <= 0 {
			t.Errorf("Expected positive score for %s, got %f", result.ID, result.Score)
		}
	}
	if results[2].Metric != MetricTenengrad {
		t.Errorf("Expected empty metric to resolve to tenengrad, got %s", results[2].Metric)
	}
}

func TestBatchEvaluator_InvalidJobDoesNotFailOthers(t *testing.T) {
	be := NewBatchEvaluator(DefaultOptions())
	defer be.Close()

	edge := verticalEdgeImage(100, 100)
	jobs := []BatchJob{
		{ID: "good", Image: edge, Metric: MetricTenengrad},
		{ID: "bad-metric", Image: edge, Metric: "fuzzometer"},
		{ID: "bad-mask", Image: edge, Mask: uniformGray(10, 10, 255), Metric: MetricLaplacian},
	}

	results := be.EvaluateAll(context.Background(), jobs)

	if results[0].Err != nil {
		t.Errorf("Expected good job to succeed, got %v", results[0].Err)
	}
	if results[1].Err == nil {
		t.Error("Expected unknown metric job to fail")
	}
	if !IsInvalidArgument(results[1].Err) {
		t.Errorf("Expected invalid argument error, got %v", results[1].Err)
	}
	if results[2].Err == nil {
		t.Error("Expected mismatched mask job to fail")
	}
}

func TestBatchEvaluator_CanceledContext(t *testing.T) {
	be := NewBatchEvaluator(DefaultOptions())
	defer be.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	edge := verticalEdgeImage(100, 100)
	jobs := []BatchJob{
		{ID: "job-1", Image: edge},
		{ID: "job-2", Image: edge},
	}

	results := be.EvaluateAll(ctx, jobs)

	for _, result := range results {
		if result.Err == nil {
			t.Errorf("Expected context error for %s", result.ID)
		}
	}
}

func TestBatchEvaluator_MetricsObserver(t *testing.T) {
	be := NewBatchEvaluator(DefaultOptions())
	defer be.Close()

	metrics := &observer.MetricsObserver{}
	be.Subscribe(metrics)

	edge := verticalEdgeImage(100, 100)
	jobs := []BatchJob{
		{ID: "ok", Image: edge, Metric: MetricTenengrad},
		{ID: "broken", Image: edge, Metric: "fuzzometer"},
	}
	be.EvaluateAll(context.Background(), jobs)

	counters := metrics.GetMetrics()
	if counters["total_evaluations"].(int64) != 2 {
		t.Errorf("Expected 2 total evaluations, got %v", counters["total_evaluations"])
	}
	if counters["successful_evaluations"].(int64) != 1 {
		t.Errorf("Expected 1 successful evaluation, got %v", counters["successful_evaluations"])
	}
	if counters["failed_evaluations"].(int64) != 1 {
		t.Errorf("Expected 1 failed evaluation, got %v", counters["failed_evaluations"])
	}
}
