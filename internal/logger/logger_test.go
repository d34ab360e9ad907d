package logger

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithContext(t *testing.T) {
	t.Run("picks up the authenticated principal", func(t *testing.T) {
		ctx := context.Background()
		ctx = context.WithValue(ctx, "tenant_id", "tenant-123")
		ctx = context.WithValue(ctx, "user_id", "user-456")
		ctx = context.WithValue(ctx, "email", "owner@acme.com")

		log := WithContext(ctx)

		assert.Equal(t, "tenant-123", log.Entry.Data["tenant_id"])
		assert.Equal(t, "user-456", log.Entry.Data["user_id"])
		assert.Equal(t, "owner@acme.com", log.Entry.Data["user"])
	})

	t.Run("empty context yields no principal fields", func(t *testing.T) {
		log := WithContext(context.Background())

		assert.NotContains(t, log.Entry.Data, "tenant_id")
		assert.NotContains(t, log.Entry.Data, "user_id")
	})
}

func TestFieldChaining(t *testing.T) {
	log := New().
		WithField("request_id", "abc").
		WithFields(map[string]interface{}{"method": "GET", "status": 200}).
		WithError(errors.New("boom"))

	assert.Equal(t, "abc", log.Entry.Data["request_id"])
	assert.Equal(t, "GET", log.Entry.Data["method"])
	assert.Equal(t, 200, log.Entry.Data["status"])
	assert.EqualError(t, log.Entry.Data["error"].(error), "boom")
}
