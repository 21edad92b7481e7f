package provision

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/go-github/v69/github"
)

// GitHub implements the provisioning API against a GitHub organization using
// the REST v3 client.
type GitHub struct {
	client *github.Client
	org    string
}

func NewGitHub(client *github.Client, org string) *GitHub {
	return &GitHub{
		client: client,
		org:    org,
	}
}

func (g *GitHub) CreateRepository(ctx context.Context, repository, description string) error {
	rq := github.Repository{
		Name:        github.String(repository),
		Description: github.String(description),
		Private:     github.Bool(true),
		AutoInit:    github.Bool(true),
	}

	if _, _, err := g.client.Repositories.Create(ctx, g.org, &rq); err != nil {
		return classify(err)
	}

	return nil
}

func (g *GitHub) GetRepository(ctx context.Context, repository string) error {
	if _, _, err := g.client.Repositories.Get(ctx, g.org, repository); err != nil {
		return classify(err)
	}

	return nil
}

func (g *GitHub) AddCollaborator(ctx context.Context, repository, user, permission string) error {
	opts := github.RepositoryAddCollaboratorOptions{
		Permission: permission,
	}

	if _, _, err := g.client.Repositories.AddCollaborator(ctx, g.org, repository, user, &opts); err != nil {
		return classify(err)
	}

	return nil
}

func (g *GitHub) CollaboratorPermission(ctx context.Context, repository, user string) (string, error) {
	level, _, err := g.client.Repositories.GetPermissionLevel(ctx, g.org, repository, user)
	if err != nil {
		return "", classify(err)
	}

	return level.GetPermission(), nil
}

// classify maps GitHub API failures onto the provisioning error taxonomy,
// preserving the platform detail.
func classify(err error) error {
	var rsp *github.ErrorResponse

	if errors.As(err, &rsp) && rsp.Response != nil {
		switch rsp.Response.StatusCode {
		case http.StatusNotFound:
			return fmt.Errorf("%w (%v)", ErrNotFound, err)

		case http.StatusUnprocessableEntity:
			return fmt.Errorf("%w (%v)", ErrConflict, err)
		}
	}

	return err
}
