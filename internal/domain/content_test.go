package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCreateContentItemRequest_Validate(t *testing.T) {
	valid := func() *CreateContentItemRequest {
		return &CreateContentItemRequest{
			ContentTypeID: "type-1",
			ItemKey:       "homepage.hero-banner_v2",
			Content:       map[string]interface{}{"title": "Welcome"},
		}
	}

	assert.NoError(t, valid().Validate())

	t.Run("item key pattern", func(t *testing.T) {
		bad := []string{"Homepage.Hero", "hero banner", "hero/banner", "héro", "hero!"}
		for _, key := range bad {
			req := valid()
			req.ItemKey = key
			assert.Error(t, req.Validate(), "key %q should be rejected", key)
		}

		good := []string{"hero", "home.hero", "home-page_2.hero", "123.abc"}
		for _, key := range good {
			req := valid()
			req.ItemKey = key
			assert.NoError(t, req.Validate(), "key %q should be accepted", key)
		}
	})

	t.Run("required fields", func(t *testing.T) {
		req := valid()
		req.ContentTypeID = ""
		assert.Error(t, req.Validate())

		req = valid()
		req.ItemKey = ""
		assert.Error(t, req.Validate())

		req = valid()
		req.Content = nil
		assert.Error(t, req.Validate())
	})
}

func TestCreateContentTypeRequest_Validate(t *testing.T) {
	valid := &CreateContentTypeRequest{
		Name:   "hero",
		Schema: json.RawMessage(`{"type": "object"}`),
	}
	assert.NoError(t, valid.Validate())

	assert.Error(t, (&CreateContentTypeRequest{Schema: json.RawMessage(`{}`)}).Validate())
	assert.Error(t, (&CreateContentTypeRequest{Name: "hero"}).Validate())
	assert.Error(t, (&CreateContentTypeRequest{Name: "hero", Schema: json.RawMessage(`{not json`)}).Validate())
}

func TestContentLock_IsExpired(t *testing.T) {
	now := time.Now().UTC()
	lock := &ContentLock{ExpiresAt: now.Add(LockDuration)}

	assert.False(t, lock.IsExpired(now))
	assert.False(t, lock.IsExpired(now.Add(LockDuration-time.Second)))
	assert.True(t, lock.IsExpired(now.Add(LockDuration)))
	assert.True(t, lock.IsExpired(now.Add(LockDuration+time.Hour)))
}
