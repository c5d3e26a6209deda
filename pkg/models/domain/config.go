package domain

import "time"

// Config is the validated job configuration. Secret material appears only
// in encrypted form; the Secret Resolver turns it into a CredentialSet at
// run time.
type Config struct {
	Region            string
	InventoryEndpoint string
	Channel           string
	SourceName        string
	HTTPTimeout       time.Duration
	Encrypted         EncryptedCredentials
}
