package events

import (
	"context"
	"errors"
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"erpapi/internal/model"
)

type recordingWriter struct {
	msgs   []kafka.Message
	err    error
	closed bool
}

func (w *recordingWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *recordingWriter) Close() error {
	w.closed = true
	return nil
}

func TestKafkaPublisher_PublishNotification(t *testing.T) {
	w := &recordingWriter{}
	p := &KafkaPublisher{writer: w}
	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	err := p.PublishNotification(context.Background(), &model.Notification{
		ID:          "n-1",
		RecipientID: "TSA-001",
		Type:        model.NotificationTypeInquiry,
		Message:     "New inquiry",
		Reference:   "i-1",
		CreatedAt:   created,
	})

	require.NoError(t, err)
	require.Len(t, w.msgs, 1)
	assert.Equal(t, "TSA-001", string(w.msgs[0].Key))
	assert.Equal(t, "inquiry", string(w.msgs[0].Headers[0].Value))

	var ev NotificationEvent
	require.NoError(t, json.Unmarshal(w.msgs[0].Value, &ev))
	assert.Equal(t, "n-1", ev.ID)
	assert.Equal(t, "i-1", ev.Reference)
	assert.True(t, created.Equal(ev.CreatedAt))

	require.NoError(t, p.Close())
	assert.True(t, w.closed)
}

func TestKafkaPublisher_WriteError(t *testing.T) {
	p := &KafkaPublisher{writer: &recordingWriter{err: errors.New("broker down")}}

	err := p.PublishNotification(context.Background(), &model.Notification{ID: "n-1"})

	assert.EqualError(t, err, "broker down")
}

func TestNoopPublisher(t *testing.T) {
	var p Publisher = NoopPublisher{}
	assert.NoError(t, p.PublishNotification(context.Background(), &model.Notification{}))
	assert.NoError(t, p.Close())
}
