package audit

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/de-tools/vmwatch/pkg/models/api"
	"github.com/de-tools/vmwatch/pkg/models/domain"
	"github.com/de-tools/vmwatch/pkg/services/inventory"
	"github.com/de-tools/vmwatch/pkg/services/notify"
	"github.com/de-tools/vmwatch/pkg/services/secrets"
	"github.com/stretchr/testify/assert"
)

type identityDecrypter struct{}

func (identityDecrypter) Decrypt(_ context.Context, ciphertext []byte) ([]byte, error) {
	return ciphertext, nil
}

// Exercises the real fetcher, notifier and resolver together, with fakes
// only at the process edges.
func TestJob_EndToEnd(t *testing.T) {
	ctx := context.Background()

	invSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "svc-audit", user)
		assert.Equal(t, "pw", pass)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"name": "lab1", "deployment": {"name": "lab1", "owner": "alice", "totalActiveVms": 3}},
			{"name": "template-only"},
			{"name": "lab2", "deployment": {"name": "lab2", "owner": "bob", "totalActiveVms": 0}}
		]`))
	}))
	defer invSrv.Close()

	var posted []api.WebhookMessage
	hookSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var msg api.WebhookMessage
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&msg))
		posted = append(posted, msg)
	}))
	defer hookSrv.Close()

	resolver := secrets.NewResolver(identityDecrypter{}, domain.EncryptedCredentials{
		User:       []byte("svc-audit"),
		Password:   []byte("pw"),
		WebhookURL: []byte(hookSrv.URL),
	})
	cfg := &domain.Config{Channel: "#lab-audit", SourceName: "Ravello"}
	job := NewJob(
		resolver,
		inventory.NewFetcher(invSrv.URL, 5*time.Second),
		notify.WebhookFactory(5*time.Second),
		cfg,
	)

	report, err := job.Run(ctx)
	assert.NoError(t, err)

	assert.Equal(t, []api.WebhookMessage{
		{Channel: "#lab-audit", Text: "Lab: lab1, Owner: alice, VMs: 3"},
		{Channel: "#lab-audit", Text: "Ravello total active VMs: 3"},
	}, posted)

	assert.Equal(t, 2, report.Records)
	assert.Equal(t, 3, report.TotalActive)
	assert.Equal(t, 2, report.Attempted)
	assert.Equal(t, 2, report.Delivered)
	assert.Equal(t, 0, report.Failed)
}
