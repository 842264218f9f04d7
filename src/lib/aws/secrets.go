package aws

import (
	"context"
	"errors"
	"log"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/tidwall/gjson"
)

type SecretsAPI interface {
	GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

func GetSecretsClient(ctx context.Context) (*secretsmanager.Client, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		log.Printf("Could not load default config: %s\n", err.Error())
		return nil, err
	}
	return secretsmanager.NewFromConfig(cfg), nil
}

// ExportSecrets reads a JSON object secret and sets each top-level key as an
// environment variable. Variables already set are left alone.
func ExportSecrets(ctx context.Context, client SecretsAPI, secretID string) error {
	out, err := client.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(secretID),
	})
	if err != nil {
		log.Printf("Could not read secret %s: %s\n", secretID, err.Error())
		return err
	}
	raw := aws.ToString(out.SecretString)
	if !gjson.Valid(raw) {
		return errors.New("secret is not valid JSON")
	}
	gjson.Parse(raw).ForEach(func(key, value gjson.Result) bool {
		if _, ok := os.LookupEnv(key.String()); !ok {
			os.Setenv(key.String(), value.String())
		}
		return true
	})
	return nil
}
