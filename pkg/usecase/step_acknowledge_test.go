package usecase_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/google/go-github/v75/github"
	"github.com/m-mizutani/drover/pkg/domain/model"
	"github.com/m-mizutani/drover/pkg/usecase"
	"github.com/m-mizutani/gt"
)

type fakeGitHubClient struct {
	err        error
	statusCode int

	owner   string
	repo    string
	number  int
	comment *github.IssueComment
}

func (c *fakeGitHubClient) CreateComment(ctx context.Context, owner, repo string, number int, comment *github.IssueComment) (*github.IssueComment, *github.Response, error) {
	c.owner = owner
	c.repo = repo
	c.number = number
	c.comment = comment

	if c.err != nil {
		return nil, nil, c.err
	}

	status := c.statusCode
	if status == 0 {
		status = http.StatusCreated
	}
	resp := &github.Response{Response: &http.Response{StatusCode: status}}
	return comment, resp, nil
}

func TestAcknowledgeStep_PostsComment(t *testing.T) {
	client := &fakeGitHubClient{}
	step := usecase.NewAcknowledgeStep(client, "")

	gt.Equal(t, step.Name(), "acknowledge")
	gt.True(t, step.BestEffort())

	run := model.NewRun(testPR())
	gt.NoError(t, step.Run(context.Background(), run))

	gt.Equal(t, client.owner, "org")
	gt.Equal(t, client.repo, "repo")
	gt.Equal(t, client.number, 42)
	gt.Equal(t, client.comment.GetBody(), usecase.DefaultAcknowledgeMessage)
}

func TestAcknowledgeStep_CustomMessage(t *testing.T) {
	client := &fakeGitHubClient{}
	step := usecase.NewAcknowledgeStep(client, "review in progress")

	run := model.NewRun(testPR())
	gt.NoError(t, step.Run(context.Background(), run))
	gt.Equal(t, client.comment.GetBody(), "review in progress")
}

func TestAcknowledgeStep_APIError(t *testing.T) {
	client := &fakeGitHubClient{err: errors.New("connection refused")}
	step := usecase.NewAcknowledgeStep(client, "")

	run := model.NewRun(testPR())
	gt.Error(t, step.Run(context.Background(), run))
}

func TestAcknowledgeStep_Non2xxResponse(t *testing.T) {
	client := &fakeGitHubClient{statusCode: http.StatusForbidden}
	step := usecase.NewAcknowledgeStep(client, "")

	run := model.NewRun(testPR())
	gt.Error(t, step.Run(context.Background(), run))
}
