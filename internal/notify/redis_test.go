package notify

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func TestContentChangedPublishes(t *testing.T) {
	mr := miniredis.RunT(t)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	sub := client.Subscribe(context.Background(), Channel)
	defer sub.Close()
	if _, err := sub.Receive(context.Background()); err != nil {
		t.Fatalf("subscribe failed: %v", err)
	}

	notifier := NewRedisWithClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	defer notifier.Close()
	notifier.ContentChanged()

	select {
	case msg := <-sub.Channel():
		if msg.Channel != Channel {
			t.Fatalf("message on channel %q, want %q", msg.Channel, Channel)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no change notification received")
	}
}

func TestNewRedisRejectsBadURL(t *testing.T) {
	if _, err := NewRedis("not-a-url"); err == nil {
		t.Fatal("expected a parse error")
	}
}

func TestNoopNotifier(t *testing.T) {
	// must be safe to call with nothing behind it
	Noop{}.ContentChanged()
}
