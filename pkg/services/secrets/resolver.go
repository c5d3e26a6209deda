package secrets

import (
	"context"
	"errors"
	"sync"

	"github.com/de-tools/vmwatch/pkg/models/domain"
)

var errEmptyCiphertext = errors.New("empty ciphertext blob")

// Resolver produces the plaintext credential set for a run. Implementations
// cache the result, so a warm process decrypts each secret at most once.
type Resolver interface {
	Resolve(ctx context.Context) (domain.CredentialSet, error)
}

type resolver struct {
	decrypter Decrypter
	encrypted domain.EncryptedCredentials

	mu     sync.Mutex
	cached *domain.CredentialSet
}

func NewResolver(decrypter Decrypter, encrypted domain.EncryptedCredentials) Resolver {
	return &resolver{
		decrypter: decrypter,
		encrypted: encrypted,
	}
}

// Resolve decrypts the configured secrets, reusing plaintext obtained by an
// earlier call. Only a fully resolved set is cached, so a failed attempt is
// retried on the next invocation.
func (r *resolver) Resolve(ctx context.Context) (domain.CredentialSet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.cached != nil {
		return *r.cached, nil
	}

	user, err := r.decrypt(ctx, "user", r.encrypted.User)
	if err != nil {
		return domain.CredentialSet{}, err
	}

	password, err := r.decrypt(ctx, "password", r.encrypted.Password)
	if err != nil {
		return domain.CredentialSet{}, err
	}

	webhookURL, err := r.decrypt(ctx, "webhook_url", r.encrypted.WebhookURL)
	if err != nil {
		return domain.CredentialSet{}, err
	}

	r.cached = &domain.CredentialSet{
		User:       user,
		Password:   password,
		WebhookURL: webhookURL,
	}

	return *r.cached, nil
}

func (r *resolver) decrypt(ctx context.Context, label string, blob domain.EncryptedSecret) (string, error) {
	if len(blob) == 0 {
		return "", &ResolutionError{Label: label, Err: errEmptyCiphertext}
	}

	plaintext, err := r.decrypter.Decrypt(ctx, blob)
	if err != nil {
		return "", &ResolutionError{Label: label, Err: err}
	}

	return string(plaintext), nil
}
