package scheduler

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/hibiken/asynq"
)

type testConfig struct {
	redisURL    string
	tlsInsecure bool
	queue       string
	concurrency int
}

func (c testConfig) GetRedisURL() string       { return c.redisURL }
func (c testConfig) GetRedisTLSInsecure() bool { return c.tlsInsecure }
func (c testConfig) GetAsynqQueueName() string { return c.queue }
func (c testConfig) GetAsynqConcurrency() int  { return c.concurrency }

func TestScoreNotificationPayloadRoundTrip(t *testing.T) {
	payload := ScoreNotificationPayload{
		RequestID: "3e2f3d46-98f9-4f18-9e3a-0d6f7b8b3a11",
		UserID:    "6ba7b810-9dad-11d1-80b4-00c04fd430c8",
	}

	task, err := NewScoreEmailTask(payload)
	if err != nil {
		t.Fatalf("NewScoreEmailTask: %v", err)
	}
	if task.Type() != TaskScoreEmail {
		t.Fatalf("expected task type %q, got %q", TaskScoreEmail, task.Type())
	}

	parsed, err := ParseScoreNotificationPayload(task)
	if err != nil {
		t.Fatalf("ParseScoreNotificationPayload: %v", err)
	}
	if parsed != payload {
		t.Fatalf("expected %+v, got %+v", payload, parsed)
	}
}

func TestParseScoreNotificationPayloadRejectsGarbage(t *testing.T) {
	task := asynq.NewTask(TaskScoreSMS, []byte("not json"))
	if _, err := ParseScoreNotificationPayload(task); err == nil {
		t.Fatal("expected an error for malformed payload")
	}
}

func TestNewClientRequiresRedisURL(t *testing.T) {
	if _, err := NewClient(testConfig{}); err == nil {
		t.Fatal("expected an error when REDIS_URL is empty")
	}
}

func TestClientEnqueuesScoreTasks(t *testing.T) {
	srv := miniredis.RunT(t)

	client, err := NewClient(testConfig{redisURL: "redis://" + srv.Addr(), queue: "scores"})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	defer client.Close()

	payload := ScoreNotificationPayload{
		RequestID: "3e2f3d46-98f9-4f18-9e3a-0d6f7b8b3a11",
		UserID:    "6ba7b810-9dad-11d1-80b4-00c04fd430c8",
	}

	if err := client.EnqueueScoreEmail(context.Background(), payload); err != nil {
		t.Fatalf("EnqueueScoreEmail: %v", err)
	}
	if err := client.EnqueueScoreSMS(context.Background(), payload); err != nil {
		t.Fatalf("EnqueueScoreSMS: %v", err)
	}

	if !srv.Exists("asynq:{scores}:pending") {
		t.Fatal("expected tasks on the scores queue")
	}
}

func TestRedisClientOpt(t *testing.T) {
	opt, err := redisClientOpt("redis://:secret@localhost:6379/2", false)
	if err != nil {
		t.Fatalf("redisClientOpt: %v", err)
	}
	if opt.Addr != "localhost:6379" || opt.Password != "secret" || opt.DB != 2 {
		t.Fatalf("unexpected options %+v", opt)
	}
	if opt.TLSConfig != nil {
		t.Fatal("expected no TLS config for redis scheme")
	}

	opt, err = redisClientOpt("rediss://localhost:6380", true)
	if err != nil {
		t.Fatalf("redisClientOpt tls: %v", err)
	}
	if opt.TLSConfig == nil || !opt.TLSConfig.InsecureSkipVerify {
		t.Fatal("expected insecure TLS config for rediss scheme")
	}
}
