package provision

import (
	"context"
)

// DryRun is an API implementation that logs the intended calls without
// touching the platform. Permission queries report no existing access so
// that a dry run shows every grant that a real run could make.
type DryRun struct {
}

func (d DryRun) CreateRepository(ctx context.Context, repository, description string) error {
	infof("(dry-run) create repository %v", repository)

	return nil
}

func (d DryRun) GetRepository(ctx context.Context, repository string) error {
	infof("(dry-run) fetch repository %v", repository)

	return nil
}

func (d DryRun) AddCollaborator(ctx context.Context, repository, user, permission string) error {
	infof("(dry-run) add '%v' to %v with %v access", user, repository, permission)

	return nil
}

func (d DryRun) CollaboratorPermission(ctx context.Context, repository, user string) (string, error) {
	return "", ErrNotFound
}
