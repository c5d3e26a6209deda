package secrets

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/de-tools/vmwatch/pkg/models/domain"
	"github.com/stretchr/testify/assert"
)

type fakeDecrypter struct {
	mu       sync.Mutex
	calls    int
	failures map[string]error
}

func (f *fakeDecrypter) Decrypt(_ context.Context, ciphertext []byte) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if err, ok := f.failures[string(ciphertext)]; ok {
		return nil, err
	}
	return append([]byte("plain:"), ciphertext...), nil
}

func (f *fakeDecrypter) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func testEncrypted() domain.EncryptedCredentials {
	return domain.EncryptedCredentials{
		User:       []byte("user-ct"),
		Password:   []byte("password-ct"),
		WebhookURL: []byte("webhook-ct"),
	}
}

func TestResolver_DecryptsEachSecretOnce(t *testing.T) {
	ctx := context.Background()
	dec := &fakeDecrypter{}
	r := NewResolver(dec, testEncrypted())

	first, err := r.Resolve(ctx)
	assert.NoError(t, err)
	assert.Equal(t, "plain:user-ct", first.User)
	assert.Equal(t, "plain:password-ct", first.Password)
	assert.Equal(t, "plain:webhook-ct", first.WebhookURL)

	second, err := r.Resolve(ctx)
	assert.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 3, dec.callCount())
}

func TestResolver_FailedAttemptIsRetried(t *testing.T) {
	ctx := context.Background()
	dec := &fakeDecrypter{failures: map[string]error{
		"password-ct": errors.New("key disabled"),
	}}
	r := NewResolver(dec, testEncrypted())

	_, err := r.Resolve(ctx)
	assert.Error(t, err)
	assert.True(t, IsResolutionError(err))
	assert.Contains(t, err.Error(), `"password"`)
	assert.NotContains(t, err.Error(), "plain:")
	assert.Equal(t, 2, dec.callCount())

	delete(dec.failures, "password-ct")

	creds, err := r.Resolve(ctx)
	assert.NoError(t, err)
	assert.Equal(t, "plain:password-ct", creds.Password)
	assert.Equal(t, 5, dec.callCount())
}

func TestResolver_EmptyCiphertext(t *testing.T) {
	ctx := context.Background()
	dec := &fakeDecrypter{}
	encrypted := testEncrypted()
	encrypted.User = nil
	r := NewResolver(dec, encrypted)

	_, err := r.Resolve(ctx)
	assert.True(t, IsResolutionError(err))
	assert.Contains(t, err.Error(), `"user"`)
	assert.Equal(t, 0, dec.callCount())
}

func TestResolver_ConcurrentCallers(t *testing.T) {
	ctx := context.Background()
	dec := &fakeDecrypter{}
	r := NewResolver(dec, testEncrypted())

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			creds, err := r.Resolve(ctx)
			assert.NoError(t, err)
			assert.Equal(t, "plain:user-ct", creds.User)
		}()
	}
	wg.Wait()

	assert.Equal(t, 3, dec.callCount())
}

func TestIsResolutionError(t *testing.T) {
	assert.False(t, IsResolutionError(errors.New("plain")))
	assert.False(t, IsResolutionError(nil))

	wrapped := &ResolutionError{Label: "user", Err: errors.New("boom")}
	assert.True(t, IsResolutionError(wrapped))
}
