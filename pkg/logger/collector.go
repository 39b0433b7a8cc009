package logger

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"sync"
	"time"
)

// ErrorSink receives batches of aggregated error summaries.
type ErrorSink interface {
	Publish(ctx context.Context, entries []LogSummary) error
}

// CollectionConfig tunes error-log aggregation.
type CollectionConfig struct {
	FlushInterval time.Duration // periodic flush (e.g. 30s)
	MaxUnique     int           // flush early once this many distinct errors accumulate
	Sink          ErrorSink
}

// LogSummary is one deduplicated error line with its occurrence window.
type LogSummary struct {
	Level     string                 `json:"level"`
	Message   string                 `json:"message"`
	Fields    map[string]interface{} `json:"fields"`
	Caller    string                 `json:"caller"`
	Count     int                    `json:"count"`
	FirstSeen time.Time              `json:"first_seen"`
	LastSeen  time.Time              `json:"last_seen"`
}

// LogCollector deduplicates repeated error logs and ships them to a sink
// in batches, so a flapping dependency produces one summary instead of a
// flood.
type LogCollector struct {
	config *CollectionConfig

	mu      sync.Mutex
	entries map[string]*LogSummary

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewLogCollector(config *CollectionConfig) *LogCollector {
	ctx, cancel := context.WithCancel(context.Background())
	c := &LogCollector{
		config:  config,
		entries: make(map[string]*LogSummary),
		ctx:     ctx,
		cancel:  cancel,
	}
	c.wg.Add(1)
	go c.run()
	return c
}

// AddLog records one occurrence; identical (level, message, fields,
// caller) tuples collapse into a single summary.
func (c *LogCollector) AddLog(level, message string, fields map[string]interface{}, caller string) {
	now := time.Now()
	key := summaryKey(level, message, fields, caller)

	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[key]; ok {
		e.Count++
		e.LastSeen = now
	} else {
		c.entries[key] = &LogSummary{
			Level:     level,
			Message:   message,
			Fields:    fields,
			Caller:    caller,
			Count:     1,
			FirstSeen: now,
			LastSeen:  now,
		}
	}

	if c.config.MaxUnique > 0 && len(c.entries) >= c.config.MaxUnique {
		c.flushLocked()
	}
}

// Close flushes whatever is pending and stops the background loop.
func (c *LogCollector) Close() {
	c.cancel()
	c.wg.Wait()
}

func summaryKey(level, message string, fields map[string]interface{}, caller string) string {
	raw, _ := json.Marshal(struct {
		Level   string                 `json:"level"`
		Message string                 `json:"message"`
		Fields  map[string]interface{} `json:"fields"`
		Caller  string                 `json:"caller"`
	}{level, message, fields, caller})
	return fmt.Sprintf("%x", sha256.Sum256(raw))
}

func (c *LogCollector) run() {
	defer c.wg.Done()

	interval := c.config.FlushInterval
	if interval <= 0 {
		interval = 30 * time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.mu.Lock()
			c.flushLocked()
			c.mu.Unlock()
		case <-c.ctx.Done():
			c.mu.Lock()
			c.flushLocked()
			c.mu.Unlock()
			return
		}
	}
}

// flushLocked hands the current batch to the sink. The caller holds c.mu;
// publishing happens outside the lock.
func (c *LogCollector) flushLocked() {
	if len(c.entries) == 0 {
		return
	}
	batch := make([]LogSummary, 0, len(c.entries))
	for _, e := range c.entries {
		batch = append(batch, *e)
	}
	c.entries = make(map[string]*LogSummary)

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := c.config.Sink.Publish(ctx, batch); err != nil {
			fmt.Printf("publish aggregated logs: %v\n", err)
		}
	}()
}
