package scheduler

import (
	"context"
	"errors"
	"sync"
	"time"

	generateSlots "github.com/m04kA/SMC-CourtService/internal/usecase/generate_slots"
	"github.com/m04kA/SMC-CourtService/pkg/types"
)

// Job периодическая задача
type Job struct {
	Name     string
	Interval time.Duration
	Run      func(ctx context.Context) error
}

// Scheduler запускает задачи по тикеру до отмены контекста
type Scheduler struct {
	jobs   []Job
	logger Logger
}

// New создает планировщик с набором задач
func New(logger Logger, jobs ...Job) *Scheduler {
	return &Scheduler{
		jobs:   jobs,
		logger: logger,
	}
}

// Start блокируется до отмены ctx. Каждая задача работает в своей горутине,
// выполняется один раз сразу и далее по тикеру
func (s *Scheduler) Start(ctx context.Context) {
	var wg sync.WaitGroup
	for _, job := range s.jobs {
		if job.Interval <= 0 {
			s.logger.Warn("Scheduler: job %s skipped, interval=%s", job.Name, job.Interval)
			continue
		}
		wg.Add(1)
		go func(job Job) {
			defer wg.Done()
			s.loop(ctx, job)
		}(job)
	}
	wg.Wait()
	s.logger.Info("Scheduler: stopped")
}

func (s *Scheduler) loop(ctx context.Context, job Job) {
	ticker := time.NewTicker(job.Interval)
	defer ticker.Stop()

	s.logger.Info("Scheduler: job %s started, interval=%s", job.Name, job.Interval)

	// Первый запуск сразу, не дожидаясь тикера
	s.tick(ctx, job)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.tick(ctx, job)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context, job Job) {
	start := time.Now()
	if err := job.Run(ctx); err != nil {
		s.logger.Error("Scheduler: job %s failed: %v", job.Name, err)
		return
	}
	s.logger.Info("Scheduler: job %s done in %s", job.Name, time.Since(start))
}

// GenerationJob еженедельная генерация слотов начиная с сегодняшнего дня площадки
func GenerationJob(
	generator SlotGenerator,
	timeProvider TimeProvider,
	location *time.Location,
	daysToGenerate int,
	interval time.Duration,
	logger Logger,
) Job {
	return Job{
		Name:     "generate_slots",
		Interval: interval,
		Run: func(ctx context.Context) error {
			req := &generateSlots.Request{
				StartDate:      types.Today(timeProvider.Now(), location),
				DaysToGenerate: daysToGenerate,
			}

			resp, err := generator.Execute(ctx, req)
			if err != nil {
				// Пустая конфигурация площадки не ошибка планировщика
				if errors.Is(err, generateSlots.ErrNothingToGenerate) {
					logger.Warn("Scheduler: nothing to generate: %v", err)
					return nil
				}
				return err
			}

			logger.Info("Scheduler: generated %d slots for %s..%s",
				resp.GeneratedCount, resp.StartDate, resp.EndDate)
			return nil
		},
	}
}

// RetentionJob ежемесячное удаление устаревших слотов
func RetentionJob(cleaner SlotCleaner, interval time.Duration, logger Logger) Job {
	return Job{
		Name:     "clean_expired_slots",
		Interval: interval,
		Run: func(ctx context.Context) error {
			resp, err := cleaner.Execute(ctx)
			if err != nil {
				return err
			}
			logger.Info("Scheduler: purged %d slots before %s", resp.DeletedCount, resp.Threshold)
			return nil
		},
	}
}
