package logger

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captureSink struct {
	batches chan []LogSummary
}

func (s *captureSink) Publish(ctx context.Context, entries []LogSummary) error {
	s.batches <- entries
	return nil
}

func TestCollectorDeduplicatesRepeatedErrors(t *testing.T) {
	sink := &captureSink{batches: make(chan []LogSummary, 1)}
	c := NewLogCollector(&CollectionConfig{
		FlushInterval: time.Hour, // flush only on Close
		Sink:          sink,
	})

	fields := map[string]interface{}{"fund": "Fundo Alpha FIM"}
	for i := 0; i < 5; i++ {
		c.AddLog("error", "load failed", fields, "dataset/loader.go:42")
	}
	c.Close()

	select {
	case batch := <-sink.batches:
		require.Len(t, batch, 1)
		assert.Equal(t, 5, batch[0].Count)
		assert.Equal(t, "load failed", batch[0].Message)
		assert.Equal(t, "Fundo Alpha FIM", batch[0].Fields["fund"])
		assert.False(t, batch[0].LastSeen.Before(batch[0].FirstSeen))
	case <-time.After(time.Second):
		t.Fatal("no batch flushed on close")
	}
}

func TestCollectorFlushesAtUniqueThreshold(t *testing.T) {
	sink := &captureSink{batches: make(chan []LogSummary, 2)}
	c := NewLogCollector(&CollectionConfig{
		FlushInterval: time.Hour,
		MaxUnique:     2,
		Sink:          sink,
	})
	defer c.Close()

	c.AddLog("error", "first", nil, "a.go:1")
	c.AddLog("error", "second", nil, "b.go:2")

	select {
	case batch := <-sink.batches:
		assert.Len(t, batch, 2)
	case <-time.After(time.Second):
		t.Fatal("threshold flush never happened")
	}
}
