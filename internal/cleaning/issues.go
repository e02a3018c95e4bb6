package cleaning

import (
	"fmt"

	"salary-lab/internal/domain"
)

// DropReason says why a batting line left the cleaned table.
// Each dropped line counts once, under the first reason it fails.
type DropReason string

const (
	DropPitcher   DropReason = "pitcher"
	DropNoAtBats  DropReason = "no_at_bats"
	DropPreSalary DropReason = "pre_salary_season"
	DropNoSalary  DropReason = "no_salary"
)

// DropReasons lists reasons in evaluation order.
var DropReasons = []DropReason{DropPitcher, DropNoAtBats, DropPreSalary, DropNoSalary}

// IssueKind classifies a data-quality finding.
type IssueKind string

const (
	// IssueNegativeUBB marks a line with IBB > BB. The line is kept unchanged.
	IssueNegativeUBB IssueKind = "negative_ubb"
	// IssueAmbiguousSalary marks a line whose season had several salary rows.
	IssueAmbiguousSalary IssueKind = "ambiguous_salary"
)

// DataIssue is a data-quality finding on one batting line.
type DataIssue struct {
	Kind   IssueKind
	Key    domain.StintKey
	Detail string
}

func (i DataIssue) String() string {
	return fmt.Sprintf("%s %s/%d/%d: %s", i.Kind, i.Key.PlayerID, i.Key.YearID, i.Key.Stint, i.Detail)
}
