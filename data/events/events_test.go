package events

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/ncobase/microservicio/ctxutil"
	"github.com/ncobase/microservicio/data/config"
	"github.com/ncobase/microservicio/data/messaging/kafka"
	kafkago "github.com/segmentio/kafka-go"
)

type captureWriter struct {
	msgs []kafkago.Message
}

func (w *captureWriter) WriteMessages(ctx context.Context, msgs ...kafkago.Message) error {
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *captureWriter) Close() error { return nil }

func TestNewEvent(t *testing.T) {
	ctx := ctxutil.SetTraceID(context.Background(), "abc")
	e := NewEvent(ctx, "usuario", Created, 7, map[string]any{"email": "a@x.com"})

	if e.Type != "usuario.created" || e.ResourceID != 7 || e.TraceID != "abc" {
		t.Errorf("event = %+v", e)
	}
	if e.ID == "" || e.OccurredAt.IsZero() {
		t.Errorf("id/time not set: %+v", e)
	}
	if string(e.Key()) != "usuario:7" {
		t.Errorf("key = %s", e.Key())
	}
}

func TestKafkaPublisher(t *testing.T) {
	w := &captureWriter{}
	p := NewKafkaPublisher(kafka.New(w, time.Second), "microservicio.events")

	e := NewEvent(context.Background(), "producto", Deleted, 3, nil)
	if err := p.Publish(context.Background(), e); err != nil {
		t.Fatalf("publish: %v", err)
	}
	if len(w.msgs) != 1 {
		t.Fatalf("messages = %d", len(w.msgs))
	}
	msg := w.msgs[0]
	if msg.Topic != "microservicio.events" || string(msg.Key) != "producto:3" {
		t.Errorf("message = %+v", msg)
	}

	var decoded Event
	if err := json.Unmarshal(msg.Value, &decoded); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded.Type != "producto.deleted" {
		t.Errorf("type = %s", decoded.Type)
	}
}

func TestNewDisabled(t *testing.T) {
	p, cleanup := New(context.Background(), &config.Config{Events: &config.Events{}})
	defer cleanup()
	if _, ok := p.(Noop); !ok {
		t.Errorf("expected Noop, got %T", p)
	}
}

func TestNewUnknownDriverFallsBack(t *testing.T) {
	cfg := &config.Config{Events: &config.Events{Driver: "nats"}}
	p, cleanup := New(context.Background(), cfg)
	defer cleanup()
	if _, ok := p.(Noop); !ok {
		t.Errorf("expected Noop, got %T", p)
	}
}
