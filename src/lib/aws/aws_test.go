package aws

import (
	"context"
	"errors"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/william000000/team-odd-bn-backend/src/lib"
)

type mockS3 struct{ mock.Mock }

func (m *mockS3) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(*s3.PutObjectOutput), args.Error(1)
}

type mockSES struct{ mock.Mock }

func (m *mockSES) SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(*ses.SendEmailOutput), args.Error(1)
}

type mockSecrets struct {
	value string
	err   error
}

func (m *mockSecrets) GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &secretsmanager.GetSecretValueOutput{SecretString: aws.String(m.value)}, nil
}

func TestS3UploaderUpload(t *testing.T) {
	client := new(mockS3)
	client.On("PutObject", mock.Anything, mock.MatchedBy(func(in *s3.PutObjectInput) bool {
		body, _ := io.ReadAll(in.Body)
		return aws.ToString(in.Bucket) == "nomad-assets" &&
			aws.ToString(in.Key) == "accommodations/1/a.jpg" &&
			aws.ToString(in.ContentType) == "image/jpeg" &&
			string(body) == "jpeg"
	})).Return(&s3.PutObjectOutput{}, nil)

	u := NewS3Uploader(client, "nomad-assets", "eu-west-1")
	url, err := u.Upload(context.Background(), "accommodations/1/a.jpg", "image/jpeg", strings.NewReader("jpeg"))
	require.NoError(t, err)
	assert.Equal(t, "https://nomad-assets.s3.eu-west-1.amazonaws.com/accommodations/1/a.jpg", url)
	client.AssertExpectations(t)
}

func TestS3UploaderUploadError(t *testing.T) {
	client := new(mockS3)
	client.On("PutObject", mock.Anything, mock.Anything).Return((*s3.PutObjectOutput)(nil), errors.New("access denied"))

	_, err := NewS3Uploader(client, "b", "").Upload(context.Background(), "k", "image/png", strings.NewReader(""))
	assert.EqualError(t, err, "access denied")
}

func TestSESMailerSend(t *testing.T) {
	client := new(mockSES)
	client.On("SendEmail", mock.Anything, mock.MatchedBy(func(in *ses.SendEmailInput) bool {
		return aws.ToString(in.Source) == "Barefoot Nomad <noreply@barefootnomad.com>" &&
			in.Destination.ToAddresses[0] == "jane@example.com" &&
			aws.ToString(in.Message.Body.Text.Data) == "hello" &&
			in.Message.Body.Html == nil
	})).Return(&ses.SendEmailOutput{MessageId: aws.String("id-1")}, nil)

	err := NewSESMailer(client).Send(context.Background(), &lib.SendMailInput{
		From:     "noreply@barefootnomad.com",
		FromName: "Barefoot Nomad",
		To:       []string{"jane@example.com"},
		Subject:  "hi",
		Body:     "hello",
	})
	require.NoError(t, err)
	client.AssertExpectations(t)
}

func TestExportSecrets(t *testing.T) {
	os.Unsetenv("NOMAD_TEST_SECRET")
	t.Setenv("NOMAD_TEST_PRESET", "keep")
	defer os.Unsetenv("NOMAD_TEST_SECRET")

	err := ExportSecrets(context.Background(), &mockSecrets{
		value: `{"NOMAD_TEST_SECRET":"s3cr3t","NOMAD_TEST_PRESET":"overwrite"}`,
	}, "nomad/api")
	require.NoError(t, err)
	assert.Equal(t, "s3cr3t", os.Getenv("NOMAD_TEST_SECRET"))
	assert.Equal(t, "keep", os.Getenv("NOMAD_TEST_PRESET"))
}

func TestExportSecretsInvalidJSON(t *testing.T) {
	err := ExportSecrets(context.Background(), &mockSecrets{value: "not json"}, "nomad/api")
	assert.Error(t, err)

	err = ExportSecrets(context.Background(), &mockSecrets{err: errors.New("denied")}, "nomad/api")
	assert.EqualError(t, err, "denied")
}
