package services

import (
	"context"
	"log/slog"
	"time"

	portsrepo "github.com/SscSPs/homeledger/internal/core/ports/repositories"
	"github.com/SscSPs/homeledger/internal/middleware"
	"github.com/SscSPs/homeledger/internal/platform/metrics"
	"github.com/SscSPs/homeledger/internal/platform/mirror"
	"github.com/SscSPs/homeledger/internal/utils"
	"github.com/google/uuid"
)

// Default household group used when none is configured.
const (
	DefaultGroupID   = "household"
	DefaultGroupName = "Household"
)

// BaseService provides common functionality for all services
type BaseService struct {
	now       func() time.Time
	newID     func() string
	location  *time.Location
	mirror    portsrepo.RecordMirror
	tracker   utils.EventTracker
	metrics   *metrics.Metrics
	groupID   string
	groupName string
}

// ServiceOption is a functional option shared by every service constructor
type ServiceOption func(*BaseService)

// WithClock replaces time.Now
func WithClock(now func() time.Time) ServiceOption {
	return func(s *BaseService) {
		s.now = now
	}
}

// WithIDGenerator replaces uuid.NewString
func WithIDGenerator(newID func() string) ServiceOption {
	return func(s *BaseService) {
		s.newID = newID
	}
}

// WithLocation sets the time zone calendar days are computed in
func WithLocation(loc *time.Location) ServiceOption {
	return func(s *BaseService) {
		if loc != nil {
			s.location = loc
		}
	}
}

// WithMirror adds the remote record mirror
func WithMirror(m portsrepo.RecordMirror) ServiceOption {
	return func(s *BaseService) {
		if m != nil {
			s.mirror = m
		}
	}
}

// WithEventTracker adds the analytics event sink
func WithEventTracker(tracker utils.EventTracker) ServiceOption {
	return func(s *BaseService) {
		s.tracker = tracker
	}
}

// WithMetrics adds the prometheus collectors
func WithMetrics(m *metrics.Metrics) ServiceOption {
	return func(s *BaseService) {
		s.metrics = m
	}
}

// WithGroup names the household group mirrored records belong to
func WithGroup(id, name string) ServiceOption {
	return func(s *BaseService) {
		if id != "" {
			s.groupID = id
		}
		if name != "" {
			s.groupName = name
		}
	}
}

func newBaseService(options []ServiceOption) BaseService {
	base := BaseService{
		now:       time.Now,
		newID:     uuid.NewString,
		location:  time.Local,
		mirror:    mirror.Discard{},
		groupID:   DefaultGroupID,
		groupName: DefaultGroupName,
	}
	for _, option := range options {
		option(&base)
	}
	return base
}

// Now returns the current time in the service location
func (s *BaseService) Now() time.Time {
	return s.now().In(s.location)
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	logger := middleware.GetLoggerFromCtx(ctx)
	if logger == nil {
		return slog.Default()
	}
	return logger
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+2)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Debug(msg, keyvals...)
}

// Track sends an analytics event when a tracker is configured
func (s *BaseService) Track(userID, event string, properties map[string]any) {
	if s.tracker == nil {
		return
	}
	s.tracker.Enqueue(userID, event, properties)
}
