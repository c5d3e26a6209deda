package secrets

import (
	"context"
	"fmt"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/kms"
)

const (
	DefaultRegion = "us-east-1" // Default region if none is configured
)

// Decrypter turns a ciphertext blob into plaintext bytes.
type Decrypter interface {
	Decrypt(ctx context.Context, ciphertext []byte) ([]byte, error)
}

type kmsDecrypter struct {
	client *kms.Client
}

func NewKMSDecrypter(ctx context.Context, region string) (Decrypter, error) {
	cfg, err := LoadConfig(ctx, region)
	if err != nil {
		return nil, err
	}

	return &kmsDecrypter{
		client: kms.NewFromConfig(*cfg),
	}, nil
}

func (d *kmsDecrypter) Decrypt(ctx context.Context, ciphertext []byte) ([]byte, error) {
	out, err := d.client.Decrypt(ctx, &kms.DecryptInput{
		CiphertextBlob: ciphertext,
	})
	if err != nil {
		return nil, err
	}

	return out.Plaintext, nil
}

func LoadConfig(ctx context.Context, region string) (*awssdk.Config, error) {
	awsCfg, err := config.LoadDefaultConfig(
		ctx,
		config.WithRegion(region),
		config.WithDefaultRegion(DefaultRegion),
	)

	if err != nil {
		return nil, fmt.Errorf("unable to load AWS SDK config: %w", err)
	}

	// Test the credentials
	_, err = awsCfg.Credentials.Retrieve(ctx)
	if err != nil {
		return nil, fmt.Errorf("invalid AWS credentials: %w", err)
	}

	return &awsCfg, nil
}
