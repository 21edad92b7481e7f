// Copyright 2026 courseops. All rights reserved.
// Use of this source code is governed by an MIT-style license
// that can be found in the LICENSE file.

/*
Package courseops-app-github automates bulk provisioning of GitHub repository
access for a course from a teams roster or repository access list kept in a
spreadsheet (a local Excel/TSV file or a Google Sheets worksheet).

courseops-app-github can be used from the command line but is really intended
to be run at the start of term (and re-run as the roster changes - repository
creation and access grants are idempotent).

courseops-app-github supports the following commands:

  - provision, to create the per-team 'Client<N>' and 'Designer<N>' repositories in a GitHub
    organization and add the team members with push access
  - grant, to grant users in a repository access list read access to existing repositories
  - get, to download a Google Sheets roster worksheet as a TSV file
  - authorise, to authorise application access to a Google Sheets roster worksheet
  - version, to display the application version
*/
package courseops
