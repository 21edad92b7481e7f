package commands

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/google/go-github/v69/github"
	"golang.org/x/oauth2"

	"github.com/courseops/courseops-app-github/provision"
)

// githubToken retrieves the GitHub personal access token from the
// environment. A missing token prints remediation instructions and aborts
// the run before anything touches the platform.
func githubToken() (string, error) {
	token := strings.TrimSpace(os.Getenv("GITHUB_TOKEN"))

	if token == "" {
		fmt.Println()
		fmt.Println("  The GITHUB_TOKEN environment variable is not set")
		fmt.Println()
		fmt.Println("  To set the token:")
		fmt.Println("      export GITHUB_TOKEN='your_token_here'")
		fmt.Println()
		fmt.Println("  Create a token at https://github.com/settings/tokens")
		fmt.Println("  Required scopes: repo, admin:org")
		fmt.Println()

		return "", fmt.Errorf("GITHUB_TOKEN environment variable is not set")
	}

	return token, nil
}

// platform authenticates against GitHub, verifies that the organization is
// accessible and returns the provisioning API for it. Dry runs get a logging
// stub instead and never contact the platform.
func platform(ctx context.Context, org string, dryrun bool) (provision.API, error) {
	if dryrun {
		return provision.DryRun{}, nil
	}

	token, err := githubToken()
	if err != nil {
		return nil, err
	}

	client, err := authenticate(ctx, token)
	if err != nil {
		return nil, err
	}

	if err := organization(ctx, client, org); err != nil {
		return nil, err
	}

	return provision.NewGitHub(client, org), nil
}

// authenticate initialises a GitHub client for the token, verifying the
// credentials by fetching the authenticated user.
func authenticate(ctx context.Context, token string) (*github.Client, error) {
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	client := github.NewClient(oauth2.NewClient(ctx, ts))

	user, _, err := client.Users.Get(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("authentication failed (%v)", err)
	}

	infof("authenticated as %v", user.GetLogin())

	return client, nil
}

func organization(ctx context.Context, client *github.Client, name string) error {
	org, _, err := client.Organizations.Get(ctx, name)
	if err != nil {
		return fmt.Errorf("error accessing organization '%s' (%v)", name, err)
	}

	infof("organization %v", org.GetLogin())

	return nil
}
