// Package provision implements idempotent bulk provisioning of repository
// collaborators on a GitHub organization. Repository and member level
// failures are independent - a failed member grant does not block the
// remaining members and a failed repository does not block the remaining
// repositories.
package provision

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"
)

var (
	// ErrNotFound tags platform 'not found' (HTTP 404) failures.
	ErrNotFound = errors.New("not found")

	// ErrConflict tags platform 'already exists' (HTTP 422) failures.
	ErrConflict = errors.New("already exists")
)

// Collaborator permissions understood by the platform.
const (
	Pull = "pull"
	Push = "push"
)

// API is the slice of the hosting platform consumed by the provisioner.
// Implementations classify platform failures with ErrNotFound/ErrConflict so
// that callers can inspect them with errors.Is.
type API interface {
	CreateRepository(ctx context.Context, repository, description string) error
	GetRepository(ctx context.Context, repository string) error
	AddCollaborator(ctx context.Context, repository, user, permission string) error
	CollaboratorPermission(ctx context.Context, repository, user string) (string, error)
}

// Provisioner issues the (strictly sequential) provisioning calls for a
// repository and its members. The delays are fixed pauses to stay inside the
// platform rate limits, not an adaptive backoff.
type Provisioner struct {
	API             API
	MemberDelay     time.Duration
	RepositoryDelay time.Duration
}

// Report summarises the member grants for a single repository.
type Report struct {
	Granted int
	Skipped int
	Failed  int
}

// Summary aggregates the repository reports for a provisioning run.
type Summary struct {
	Repositories int
	Succeeded    int
	Partial      int
	Failed       []string
}

func NewProvisioner(api API) *Provisioner {
	return &Provisioner{
		API:             api,
		MemberDelay:     500 * time.Millisecond,
		RepositoryDelay: 1 * time.Second,
	}
}

// Provision creates the repository (private, auto-initialised), falling back
// to a fetch when it already exists, and then unconditionally grants each
// member push access. A repository level failure abandons the member grants
// and is returned as the error.
func (p *Provisioner) Provision(ctx context.Context, repository, description string, members []string) (Report, error) {
	if err := p.ensure(ctx, repository, description); err != nil {
		return Report{Failed: len(members)}, err
	}

	report := Report{}
	for _, member := range members {
		if err := p.API.AddCollaborator(ctx, repository, member, Push); err != nil {
			report.Failed++
			if errors.Is(err, ErrNotFound) {
				warnf("%v  user '%v' not found", repository, member)
			} else {
				warnf("%v  error adding '%v' (%v)", repository, member, err)
			}
		} else {
			report.Granted++
			infof("%v  added '%v' with %v access", repository, member, Push)
		}

		time.Sleep(p.MemberDelay)
	}

	time.Sleep(p.RepositoryDelay)

	return report, nil
}

// Grant fetches an existing repository and ensures each member holds at
// least read access - members already holding read, write or admin access
// are skipped, anybody else is granted pull access. A missing repository
// abandons the member grants and is returned as the error.
func (p *Provisioner) Grant(ctx context.Context, repository string, members []string) (Report, error) {
	if err := p.API.GetRepository(ctx, repository); err != nil {
		if errors.Is(err, ErrNotFound) {
			return Report{Failed: len(members)}, fmt.Errorf("repository '%s' not found in organization", repository)
		}

		return Report{Failed: len(members)}, fmt.Errorf("error fetching repository '%s' (%v)", repository, err)
	}

	report := Report{}
	for _, member := range members {
		level, err := p.permission(ctx, repository, member)
		if err != nil && !errors.Is(err, ErrNotFound) {
			warnf("%v  unable to query '%v' access (%v) - assuming none", repository, member, err)
		}

		switch level {
		case "read", "write", "admin":
			report.Skipped++
			infof("%v  '%v' already has %v access", repository, member, level)

		default:
			if err := p.API.AddCollaborator(ctx, repository, member, Pull); err != nil {
				report.Failed++
				if errors.Is(err, ErrNotFound) {
					warnf("%v  user '%v' not found", repository, member)
				} else {
					warnf("%v  error granting read access to '%v' (%v)", repository, member, err)
				}
			} else {
				report.Granted++
				infof("%v  granted read access to '%v'", repository, member)
			}

			time.Sleep(p.MemberDelay)
		}
	}

	time.Sleep(p.RepositoryDelay)

	return report, nil
}

// Add folds a repository report into the run summary.
func (s *Summary) Add(repository string, report Report, err error) {
	s.Repositories++

	switch {
	case err != nil:
		s.Failed = append(s.Failed, repository)

	case report.Failed > 0:
		s.Partial++

	default:
		s.Succeeded++
	}
}

// ensure creates the repository, recovering from an 'already exists'
// conflict by fetching the existing repository so that re-runs are
// idempotent. Any other creation failure is returned as-is.
func (p *Provisioner) ensure(ctx context.Context, repository, description string) error {
	err := p.API.CreateRepository(ctx, repository, description)
	if err == nil {
		infof("created repository %v", repository)
		return nil
	}

	if errors.Is(err, ErrConflict) {
		infof("repository %v already exists", repository)
		if err := p.API.GetRepository(ctx, repository); err != nil {
			return fmt.Errorf("error fetching existing repository '%s' (%v)", repository, err)
		}

		return nil
	}

	return fmt.Errorf("error creating repository '%s' (%v)", repository, err)
}

// permission returns the member's current access level on the repository. A
// query failure other than 'not found' is retried once before falling back
// to 'no access', so that a transient API error is not mistaken for a
// genuinely absent access record.
func (p *Provisioner) permission(ctx context.Context, repository, member string) (string, error) {
	level, err := p.API.CollaboratorPermission(ctx, repository, member)
	if err == nil || errors.Is(err, ErrNotFound) {
		return level, err
	}

	return p.API.CollaboratorPermission(ctx, repository, member)
}

func infof(format string, args ...any) {
	log.Printf("%-5s %s", "INFO", fmt.Sprintf(format, args...))
}

func warnf(format string, args ...any) {
	log.Printf("%-5s %s", "WARN", fmt.Sprintf(format, args...))
}
