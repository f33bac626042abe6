package broker

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"okaigpt/backend/internal/model"
)

type fakeChannel struct {
	exchange string
	key      string
	msg      amqp.Publishing
	deadline bool
	err      error
	closed   bool
}

func (f *fakeChannel) PublishWithContext(ctx context.Context, exchange, key string, _, _ bool, msg amqp.Publishing) error {
	f.exchange, f.key, f.msg = exchange, key, msg
	_, f.deadline = ctx.Deadline()
	return f.err
}

func (f *fakeChannel) Close() error {
	f.closed = true
	return nil
}

type fakeConn struct{ closed bool }

func (f *fakeConn) Close() error {
	f.closed = true
	return nil
}

// redialingPublisher returns a publisher whose connect hands out a fresh fake
// session per dial; the returned slices record every dial.
func redialingPublisher() (*RabbitPublisher, *[]*fakeChannel, *[]chan *amqp.Error) {
	var channels []*fakeChannel
	var notifiers []chan *amqp.Error
	p := &RabbitPublisher{queue: "video-jobs", now: time.Now}
	p.connect = func() (*rabbitSession, error) {
		ch := &fakeChannel{}
		closed := make(chan *amqp.Error, 1)
		channels = append(channels, ch)
		notifiers = append(notifiers, closed)
		return &rabbitSession{conn: &fakeConn{}, ch: ch, closed: closed}, nil
	}
	return p, &channels, &notifiers
}

func (p *RabbitPublisher) connected() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ch != nil
}

func TestRabbitPublisher_DispatchVideo(t *testing.T) {
	ch := &fakeChannel{}
	fixed := time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC)
	p := &RabbitPublisher{ch: ch, queue: "video-jobs", now: func() time.Time { return fixed }}

	img := "https://example.com/start.png"
	err := p.DispatchVideo(context.Background(), &model.Video{ID: 12, Prompt: "waves", InitialImageURL: &img})
	require.NoError(t, err)

	assert.Equal(t, "", ch.exchange)
	assert.Equal(t, "video-jobs", ch.key)
	assert.True(t, ch.deadline, "publish must be bounded by a timeout")
	assert.Equal(t, "application/json", ch.msg.ContentType)
	assert.Equal(t, amqp.Persistent, ch.msg.DeliveryMode)
	assert.Equal(t, "video-12", ch.msg.MessageId)
	assert.Equal(t, fixed, ch.msg.Timestamp)

	var job VideoJob
	require.NoError(t, json.Unmarshal(ch.msg.Body, &job))
	assert.Equal(t, int64(12), job.VideoID)
	assert.Equal(t, "waves", job.Prompt)
	require.NotNil(t, job.InitialImageURL)
	assert.Equal(t, img, *job.InitialImageURL)
}

func TestRabbitPublisher_DispatchVideoError(t *testing.T) {
	ch := &fakeChannel{err: amqp.ErrClosed}
	p := &RabbitPublisher{ch: ch, queue: "video-jobs", now: time.Now}

	err := p.DispatchVideo(context.Background(), &model.Video{ID: 1})
	assert.ErrorIs(t, err, amqp.ErrClosed)
}

func TestRabbitPublisher_Reconnect(t *testing.T) {
	ctx := context.Background()

	t.Run("Connection loss is dropped and redialed", func(t *testing.T) {
		p, channels, notifiers := redialingPublisher()

		require.NoError(t, p.DispatchVideo(ctx, &model.Video{ID: 1}))
		require.Len(t, *channels, 1)

		(*notifiers)[0] <- &amqp.Error{Code: amqp.ConnectionForced, Reason: "broker restarted"}
		assert.Eventually(t, func() bool { return !p.connected() }, time.Second, time.Millisecond)
		assert.True(t, (*channels)[0].closed)

		require.NoError(t, p.DispatchVideo(ctx, &model.Video{ID: 2}))
		require.Len(t, *channels, 2)
		assert.Equal(t, "video-2", (*channels)[1].msg.MessageId)
	})

	t.Run("Closed channel on publish is redialed next time", func(t *testing.T) {
		p, channels, _ := redialingPublisher()

		require.NoError(t, p.DispatchVideo(ctx, &model.Video{ID: 1}))
		(*channels)[0].err = amqp.ErrClosed

		assert.ErrorIs(t, p.DispatchVideo(ctx, &model.Video{ID: 2}), amqp.ErrClosed)
		assert.False(t, p.connected())

		require.NoError(t, p.DispatchVideo(ctx, &model.Video{ID: 3}))
		assert.Len(t, *channels, 2)
	})

	t.Run("Redial failure is returned", func(t *testing.T) {
		p := &RabbitPublisher{queue: "video-jobs", now: time.Now}
		p.connect = func() (*rabbitSession, error) { return nil, errors.New("connection refused") }

		err := p.DispatchVideo(ctx, &model.Video{ID: 1})
		assert.ErrorContains(t, err, "rabbitmq reconnect: connection refused")
	})

	t.Run("No redial after Close", func(t *testing.T) {
		p, channels, _ := redialingPublisher()

		require.NoError(t, p.DispatchVideo(ctx, &model.Video{ID: 1}))
		require.NoError(t, p.Close())

		assert.ErrorIs(t, p.DispatchVideo(ctx, &model.Video{ID: 2}), amqp.ErrClosed)
		assert.Len(t, *channels, 1)
	})
}

type fakeRedis struct {
	channel string
	payload string
	err     error
}

func (f *fakeRedis) Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd {
	f.channel = channel
	f.payload, _ = message.(string)
	cmd := redis.NewIntCmd(ctx)
	if f.err != nil {
		cmd.SetErr(f.err)
	} else {
		cmd.SetVal(1)
	}
	return cmd
}

func TestRedisNotifier_NotifyVideoStatus(t *testing.T) {
	fake := &fakeRedis{}
	n := &RedisNotifier{client: fake, channel: "video-status"}

	url := "https://cdn.example.com/v.mp4"
	err := n.NotifyVideoStatus(context.Background(), &model.Video{ID: 3, Status: model.VideoCompleted, VideoURL: &url})
	require.NoError(t, err)

	assert.Equal(t, "video-status", fake.channel)
	var got model.Video
	require.NoError(t, json.Unmarshal([]byte(fake.payload), &got))
	assert.Equal(t, int64(3), got.ID)
	assert.Equal(t, model.VideoCompleted, got.Status)
	assert.Equal(t, url, *got.VideoURL)
}

func TestRedisNotifier_PropagatesPublishError(t *testing.T) {
	boom := errors.New("connection refused")
	n := &RedisNotifier{client: &fakeRedis{err: boom}, channel: "video-status"}

	err := n.NotifyVideoStatus(context.Background(), &model.Video{ID: 1})
	assert.ErrorIs(t, err, boom)
	assert.NoError(t, n.Close())
}

func TestDefaults(t *testing.T) {
	assert.NoError(t, LogDispatcher{}.DispatchVideo(context.Background(), &model.Video{ID: 1}))
	assert.NoError(t, NopNotifier{}.NotifyVideoStatus(context.Background(), &model.Video{ID: 1}))
}
