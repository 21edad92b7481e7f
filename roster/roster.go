package roster

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Teams collates a team roster, keyed by team number. Member lists are in
// spreadsheet order, without duplicates.
type Teams map[int][]string

// AccessList collates a repository access list, keyed by repository name.
// Member lists are in spreadsheet order, without duplicates.
type AccessList map[string][]string

var teamExpr = regexp.MustCompile(`(?i)team\s*(\d+)`)

// Column name aliases, matched after normalising. The team column falls back
// to an untitled first column because spreadsheet exports commonly leave the
// merged team column blank.
var (
	teamAliases   = []string{"team", "teams"}
	repoAliases   = []string{"repository", "repo", "reponame"}
	memberAliases = []string{"githubid", "github", "githubusername"}
)

// ParseTeams converts the rows of a teams roster into a Teams map. The team
// column carries forward - a row whose team cell does not match 'team <N>'
// leaves the current team unchanged, so that a single team row groups the
// member-only rows below it. Member rows that precede the first team row are
// dropped.
func ParseTeams(rows [][]string) (Teams, error) {
	group, member, err := index(rows, teamAliases, "team")
	if err != nil {
		return nil, err
	}

	teams := Teams{}
	current := 0

	for _, row := range rows[1:] {
		if v := cell(row, group); v != "" {
			if match := teamExpr.FindStringSubmatch(v); match != nil {
				if team, err := strconv.Atoi(match[1]); err == nil {
					current = team
				}
			}
		}

		if id := Normalise(cell(row, member)); id != "" && current != 0 {
			if !contains(teams[current], id) {
				teams[current] = append(teams[current], id)
			}
		}
	}

	return teams, nil
}

// ParseAccessList converts the rows of a repository access list into an
// AccessList map. The repository column carries forward like the team column
// in ParseTeams, except that any non-empty cell is accepted as a repository
// name and registers an entry even if no member rows follow.
func ParseAccessList(rows [][]string) (AccessList, error) {
	group, member, err := index(rows, repoAliases, "repository")
	if err != nil {
		return nil, err
	}

	list := AccessList{}
	current := ""

	for _, row := range rows[1:] {
		if v := cell(row, group); v != "" {
			current = v
			if _, ok := list[current]; !ok {
				list[current] = []string{}
			}
		}

		if id := Normalise(cell(row, member)); id != "" && current != "" {
			if !contains(list[current], id) {
				list[current] = append(list[current], id)
			}
		}
	}

	return list, nil
}

// Numbers returns the team numbers in ascending order.
func (t Teams) Numbers() []int {
	numbers := make([]int, 0, len(t))
	for team := range t {
		numbers = append(numbers, team)
	}

	sort.Ints(numbers)

	return numbers
}

// Repositories returns the repository names in lexical order.
func (l AccessList) Repositories() []string {
	repositories := make([]string, 0, len(l))
	for repository := range l {
		repositories = append(repositories, repository)
	}

	sort.Strings(repositories)

	return repositories
}

// Normalise cleans up an account ID from a spreadsheet cell - surrounding
// whitespace is trimmed and any '@' sigils and interior spaces are removed.
// Returns "" for blank cells and for the 'nan' missing-value sentinel.
// Normalising an already normalised ID returns it unchanged.
func Normalise(v string) string {
	v = strings.TrimSpace(v)
	if strings.EqualFold(v, "nan") {
		return ""
	}

	v = strings.ReplaceAll(v, "@", "")
	v = strings.ReplaceAll(v, " ", "")

	return v
}

// index resolves the header row against the column name aliases, returning
// the group and member column indices.
func index(rows [][]string, aliases []string, label string) (int, int, error) {
	if len(rows) == 0 {
		return 0, 0, fmt.Errorf("empty sheet")
	}

	header := rows[0]
	columns := map[string]int{}
	for i, v := range header {
		k := normalise(v)
		if k == "" {
			continue
		}

		if _, ok := columns[k]; ok {
			return 0, 0, fmt.Errorf("duplicate column name '%s'", v)
		}

		columns[k] = i
	}

	group := -1
	for _, alias := range aliases {
		if ix, ok := columns[alias]; ok {
			group = ix
			break
		}
	}

	if group == -1 && len(header) > 0 && normalise(header[0]) == "" {
		group = 0
	}

	if group == -1 {
		return 0, 0, fmt.Errorf("missing '%s' column", label)
	}

	member := -1
	for _, alias := range memberAliases {
		if ix, ok := columns[alias]; ok {
			member = ix
			break
		}
	}

	if member == -1 {
		return 0, 0, fmt.Errorf("missing 'GitHub ID' column")
	}

	return group, member, nil
}

// cell returns the trimmed cell value, or "" for short rows, blank cells and
// the 'nan' missing-value sentinel.
func cell(row []string, ix int) string {
	if ix < 0 || ix >= len(row) {
		return ""
	}

	v := strings.TrimSpace(row[ix])
	if strings.EqualFold(v, "nan") {
		return ""
	}

	return v
}

func contains(list []string, v string) bool {
	for _, member := range list {
		if member == v {
			return true
		}
	}

	return false
}

func normalise(v string) string {
	return strings.ToLower(strings.NewReplacer(" ", "", "_", "").Replace(v))
}
