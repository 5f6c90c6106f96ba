package scheduler

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/nimbus-weather/nimbus/internal/service"
)

// Scheduler keeps the cache warm: it periodically refreshes weather for
// every saved place and the radar timeline on its own cadence.
type Scheduler struct {
	scheduler       *gocron.Scheduler
	service         *service.Service
	weatherInterval time.Duration
	radarInterval   time.Duration
	fetchTimeout    time.Duration
}

// New creates a Scheduler.
func New(svc *service.Service, weatherInterval, radarInterval, fetchTimeout time.Duration) *Scheduler {
	return &Scheduler{
		scheduler:       gocron.NewScheduler(time.UTC),
		service:         svc,
		weatherInterval: weatherInterval,
		radarInterval:   radarInterval,
		fetchTimeout:    fetchTimeout,
	}
}

// Start schedules both refresh jobs and starts the underlying scheduler.
func (s *Scheduler) Start() error {
	if _, err := s.scheduler.Every(s.weatherInterval).Do(s.refreshWeather); err != nil {
		return err
	}
	if _, err := s.scheduler.Every(s.radarInterval).Do(s.refreshRadar); err != nil {
		return err
	}

	s.scheduler.StartAsync()
	return nil
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}

func (s *Scheduler) refreshWeather() {
	places := s.service.Places().List()
	if len(places) == 0 {
		return
	}

	log.Println("scheduler: running weather refresh job")

	var wg sync.WaitGroup
	for _, place := range places {
		place := place
		wg.Add(1)
		go func() {
			defer wg.Done()

			ctx, cancel := context.WithTimeout(context.Background(), s.fetchTimeout)
			defer cancel()

			if _, err := s.service.RefreshWeather(ctx, place); err != nil {
				log.Printf("scheduler: weather refresh failed for %s: %v", place.ID, err)
			}
		}()
	}
	wg.Wait()

	log.Println("scheduler: completed weather refresh job")
}

func (s *Scheduler) refreshRadar() {
	ctx, cancel := context.WithTimeout(context.Background(), s.fetchTimeout)
	defer cancel()

	if _, err := s.service.RefreshRadar(ctx); err != nil {
		log.Printf("scheduler: radar refresh failed: %v", err)
	}
}
