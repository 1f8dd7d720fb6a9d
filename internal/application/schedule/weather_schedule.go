package schedule

import (
	"context"
	"time"

	"weather-app/internal/domain/usecase/weather"
	"weather-app/pkg/log"
	"weather-app/pkg/msg"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// WeatherScheduler keeps the offline weather cache warm by refreshing the
// default location on a cron schedule.
type WeatherScheduler struct {
	cron           *cron.Cron
	useCase        weather.UseCase
	cronExpression string
	taskTimeout    time.Duration
}

func NewWeatherScheduler(useCase weather.UseCase, cronExpression string, taskTimeout time.Duration) *WeatherScheduler {
	if taskTimeout <= 0 {
		taskTimeout = time.Minute
	}
	return &WeatherScheduler{
		cron:           cron.New(),
		useCase:        useCase,
		cronExpression: cronExpression,
		taskTimeout:    taskTimeout,
	}
}

// InitWeatherScheduleTasks registers and starts the cache refresh task.
func (s *WeatherScheduler) InitWeatherScheduleTasks() {
	_, err := s.cron.AddFunc(s.cronExpression, s.ExecuteScheduledTask)
	if err != nil {
		log.Errorf("Failed to initialize weather scheduler, cron will not be started: %v", err)
		return
	}

	s.cron.Start()
	log.Infof("Weather cache refresh scheduler started with cron expression: %s", s.cronExpression)
}

// ExecuteScheduledTask refreshes the default location cache once.
func (s *WeatherScheduler) ExecuteScheduledTask() {
	requestID := uuid.New().String()

	log.Info(msg.GetMessage("weather.cron.start"), zap.String("request_id", requestID))

	ctx, cancel := context.WithTimeout(context.Background(), s.taskTimeout)
	defer cancel()

	if err := s.useCase.RefreshDefaultLocation(ctx); err != nil {
		log.Error("Scheduled weather cache refresh failed", zap.String("request_id", requestID), zap.Error(err))
		return
	}

	log.Info(msg.GetMessage("weather.cron.end"), zap.String("request_id", requestID))
}

// Stop gracefully stops the scheduler, waiting for a running task to finish.
func (s *WeatherScheduler) Stop() {
	if s.cron != nil {
		ctx := s.cron.Stop()
		<-ctx.Done()
	}
}
