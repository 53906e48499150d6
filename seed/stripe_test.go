package seed_test

import (
	"encoding/json"
	"os"
	"regexp"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcelsud/webhook-capture/seed"
)

var signaturePattern = regexp.MustCompile(`^t=\d+,v1=[0-9a-f]{64}$`)

func TestEvent(t *testing.T) {
	t.Run("produces a well-formed delivery", func(t *testing.T) {
		rec, err := seed.Event("payment_intent.succeeded")

		require.NoError(t, err)
		assert.Equal(t, "POST", rec.Method)
		assert.True(t, strings.HasPrefix(rec.PathName, "/"))
		assert.NotEmpty(t, rec.IP)
		assert.False(t, rec.CreatedAt.IsZero())

		parsed, err := uuid.Parse(rec.ID)
		require.NoError(t, err)
		assert.Equal(t, uuid.Version(7), parsed.Version())
	})

	t.Run("body is valid JSON carrying the event type", func(t *testing.T) {
		rec, err := seed.Event("charge.refunded")

		require.NoError(t, err)
		require.NotNil(t, rec.Body)

		var payload map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(*rec.Body), &payload))
		assert.Equal(t, "event", payload["object"])
		assert.Equal(t, "charge.refunded", payload["type"])

		data, ok := payload["data"].(map[string]interface{})
		require.True(t, ok)
		obj, ok := data["object"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "charge", obj["object"])
		assert.Equal(t, true, obj["refunded"])
	})

	t.Run("content length measures the body", func(t *testing.T) {
		rec, err := seed.Event("invoice.created")

		require.NoError(t, err)
		require.NotNil(t, rec.ContentType)
		require.NotNil(t, rec.ContentLength)
		require.NotNil(t, rec.Body)
		assert.Equal(t, "application/json", *rec.ContentType)
		assert.Equal(t, int64(len(*rec.Body)), *rec.ContentLength)
	})

	t.Run("headers look like a Stripe delivery", func(t *testing.T) {
		rec, err := seed.Event("payout.paid")

		require.NoError(t, err)
		for key := range rec.Headers {
			assert.Equal(t, strings.ToLower(key), key)
		}
		assert.Equal(t, "Stripe/1.0 (+https://stripe.com/docs/webhooks)", rec.Headers["user-agent"])
		assert.Regexp(t, signaturePattern, rec.Headers["stripe-signature"])
		assert.Len(t, rec.Headers["stripe-trace-id"], 32)
	})
}

func TestProfileEvents(t *testing.T) {
	t.Run("honors count and overrides", func(t *testing.T) {
		profile := seed.Profile{
			Count:      10,
			Paths:      []string{"/hooks/only"},
			EventTypes: []string{"customer.created"},
		}

		records, err := profile.Events()

		require.NoError(t, err)
		require.Len(t, records, 10)
		for _, rec := range records {
			assert.Equal(t, "/hooks/only", rec.PathName)
			require.NotNil(t, rec.Body)
			assert.Contains(t, *rec.Body, `"customer.created"`)
		}
	})

	t.Run("default profile covers the full event catalog", func(t *testing.T) {
		profile := seed.DefaultProfile()

		assert.Equal(t, seed.DefaultCount, profile.Count)
		assert.Len(t, profile.EventTypes, 24)
		assert.Len(t, profile.Paths, 3)
	})
}

func TestLoadProfile(t *testing.T) {
	t.Run("fills defaults for omitted fields", func(t *testing.T) {
		path := t.TempDir() + "/profile.yaml"
		require.NoError(t, writeFile(path, "count: 5\n"))

		profile, err := seed.LoadProfile(path)

		require.NoError(t, err)
		assert.Equal(t, 5, profile.Count)
		assert.Equal(t, seed.DefaultProfile().Paths, profile.Paths)
		assert.Equal(t, seed.DefaultProfile().EventTypes, profile.EventTypes)
	})

	t.Run("missing file is an error", func(t *testing.T) {
		_, err := seed.LoadProfile(t.TempDir() + "/absent.yaml")
		assert.Error(t, err)
	})
}

func writeFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0o644)
}
