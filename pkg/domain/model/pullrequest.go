package model

import "fmt"

// PullRequest holds the pull request information a pipeline run needs
type PullRequest struct {
	Owner      string // Repository owner
	Repo       string // Repository name
	Number     int    // Pull request number
	HeadSHA    string // Head commit SHA of the pull request
	BaseBranch string // Branch the pull request targets
	Title      string // Pull request title
	Author     string // Pull request author login
}

// TargetsBranch reports whether the pull request targets the given branch
func (p *PullRequest) TargetsBranch(branch string) bool {
	return p.BaseBranch == branch
}

// FullName returns the repository full name (owner/repo)
func (p *PullRequest) FullName() string {
	return p.Owner + "/" + p.Repo
}

// CloneURL returns the HTTPS clone URL of the repository
func (p *PullRequest) CloneURL() string {
	return fmt.Sprintf("https://github.com/%s/%s.git", p.Owner, p.Repo)
}

// Validate checks that all fields required for a pipeline run are present
func (p *PullRequest) Validate() error {
	if p.Owner == "" || p.Repo == "" {
		return fmt.Errorf("missing repository: owner=%s, repo=%s", p.Owner, p.Repo)
	}
	if p.Number <= 0 {
		return fmt.Errorf("invalid pull request number: %d", p.Number)
	}
	if p.HeadSHA == "" {
		return fmt.Errorf("missing head commit SHA for %s/%s#%d", p.Owner, p.Repo, p.Number)
	}
	return nil
}
