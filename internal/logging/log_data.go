package logging

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// LogData collects request-scoped fields and phase timings so a handler
// emits one structured line at the end instead of a trail of partial logs.
// Safe for concurrent use; operator actions record timings from worker
// goroutines while the handler adds its own fields.
type LogData struct {
	mu        sync.Mutex
	timingsMs map[string]int64
	fields    map[string]any
	logger    *logrus.Logger
}

func NewLogData(logger *logrus.Logger) *LogData {
	return &LogData{
		timingsMs: make(map[string]int64),
		fields:    make(map[string]any),
		logger:    logger,
	}
}

// AddTiming starts a timer for entryName and returns the stop function.
// Stopping overwrites any previous timing recorded under the same name.
func (l *LogData) AddTiming(entryName string) func() {
	startTime := time.Now()

	return func() {
		elapsed := time.Since(startTime).Milliseconds()
		l.mu.Lock()
		defer l.mu.Unlock()
		l.timingsMs[entryName] = elapsed
	}
}

// AddToExistingTiming is AddTiming for code that runs more than once per
// request, such as a per-row loop; stops accumulate instead of overwriting.
func (l *LogData) AddToExistingTiming(entryName string) func() {
	startTime := time.Now()

	return func() {
		elapsed := time.Since(startTime).Milliseconds()
		l.mu.Lock()
		defer l.mu.Unlock()
		l.timingsMs[entryName] += elapsed
	}
}

func (l *LogData) AddData(key string, value any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.fields[key] = value
}

// Log returns an entry carrying every recorded field and timing.
func (l *LogData) Log() *logrus.Entry {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry := logrus.NewEntry(l.logger)
	for key, value := range l.fields {
		entry = entry.WithField(key, value)
	}
	for key, value := range l.timingsMs {
		entry = entry.WithField(key, value)
	}
	return entry
}
