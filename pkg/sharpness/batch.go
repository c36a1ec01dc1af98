package sharpness

import (
	"context"
	"image"
	"time"

	"go-image-sharpness/internal/logger"
	"go-image-sharpness/internal/observer"
)

// BatchJob is one image/mask pair to score. An empty Metric selects
// Tenengrad.
type BatchJob struct {
	ID     string
	Image  image.Image
	Mask   image.Image
	Metric Metric
}

// BatchResult is the outcome of one batch job
type BatchResult struct {
	ID     string
	Metric Metric
	Score  float64
	Err    error
}

// BatchEvaluator scores many image/mask pairs concurrently. The underlying
// metric operations hold no shared mutable state, so jobs run in parallel
// safely.
type BatchEvaluator struct {
	evaluator Evaluator
	pool      *WorkerPool
	publisher observer.Subject
	options   Options
}

// NewBatchEvaluator creates a batch evaluator with a running worker pool
// and a logging observer subscribed.
func NewBatchEvaluator(options Options) *BatchEvaluator {
	pool := NewWorkerPool(options.MaxWorkers)
	pool.Start()

	publisher := observer.NewEventPublisher()
	publisher.Subscribe(observer.NewLoggingObserver(logger.Logger))

	return &BatchEvaluator{
		evaluator: NewEvaluator(),
		pool:      pool,
		publisher: publisher,
		options:   options,
	}
}

// Subscribe registers an additional observer for evaluation events
func (be *BatchEvaluator) Subscribe(obs observer.Observer) {
	be.publisher.Subscribe(obs)
}

// EvaluateAll scores every job and returns one result per job, in job
// order. A canceled context fails the jobs that have not started yet.
func (be *BatchEvaluator) EvaluateAll(ctx context.Context, jobs []BatchJob) []BatchResult {
	results := make([]BatchResult, len(jobs))

	for i, job := range jobs {
		i, job := i, job
		be.pool.Submit(func() {
			results[i] = be.evaluateJob(ctx, job)
		})
	}
	be.pool.Wait()

	return results
}

func (be *BatchEvaluator) evaluateJob(ctx context.Context, job BatchJob) BatchResult {
	metric := job.Metric
	if metric == "" {
		metric = MetricTenengrad
	}
	result := BatchResult{ID: job.ID, Metric: metric}

	if err := ctx.Err(); err != nil {
		result.Err = err
		return result
	}

	start := time.Now()
	be.publisher.NotifyObservers(ctx, observer.EvaluationEvent{
		EventType: observer.EvaluationStarted,
		Timestamp: start,
		JobID:     job.ID,
		Metric:    string(metric),
	})

	strategy, err := NewMetricStrategy(metric, be.evaluator, be.options)
	if err == nil {
		result.Score, err = strategy.Score(job.Image, job.Mask)
	}

	event := observer.EvaluationEvent{
		Timestamp:      time.Now(),
		JobID:          job.ID,
		Metric:         string(metric),
		ProcessingTime: time.Since(start),
	}
	if err != nil {
		result.Err = err
		event.EventType = observer.EvaluationFailed
		event.ErrorMessage = err.Error()
	} else {
		event.EventType = observer.EvaluationCompleted
		event.Success = true
		event.Metadata = map[string]interface{}{"score": result.Score}
	}
	be.publisher.NotifyObservers(ctx, event)

	return result
}

// Close shuts down the batch evaluator's worker pool
func (be *BatchEvaluator) Close() {
	be.pool.Close()
}
