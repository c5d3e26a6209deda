package domain

// EncryptedSecret is an opaque ciphertext blob produced out-of-band with the
// key-management service. The decrypting service resolves the key from the
// deployment context; the job never names it.
type EncryptedSecret []byte

// EncryptedCredentials are the three at-rest secrets embedded in the job
// configuration at deploy time.
type EncryptedCredentials struct {
	User       EncryptedSecret
	Password   EncryptedSecret
	WebhookURL EncryptedSecret
}

// CredentialSet is the decrypted credential triple. It is held in process
// memory only: the type carries no serialization tags, and both formatted
// representations are redacted so %v/%+v logging cannot leak plaintext.
type CredentialSet struct {
	User       string
	Password   string
	WebhookURL string
}

func (CredentialSet) String() string { return "CredentialSet(redacted)" }

func (c CredentialSet) GoString() string { return c.String() }
