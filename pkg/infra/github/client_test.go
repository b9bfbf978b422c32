package github_test

import (
	"testing"

	"github.com/m-mizutani/gt"

	githubinfra "github.com/m-mizutani/drover/pkg/infra/github"
)

func TestNewClient(t *testing.T) {
	client := githubinfra.NewClient("ghp_test_token")
	gt.Value(t, client).NotNil()
}

func TestNewAppClient_InvalidKey(t *testing.T) {
	_, err := githubinfra.NewAppClient(12345, 67890, []byte("not a pem key"))
	gt.Error(t, err)
}
