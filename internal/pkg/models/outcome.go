package models

// OutcomeKind names the adjustment sub-path an outcome belongs to.
type OutcomeKind string

const (
	OutcomeMainDebit   OutcomeKind = "MAIN_DEBIT"
	OutcomeBonusDebit  OutcomeKind = "BONUS_DEBIT"
	OutcomeMainCredit  OutcomeKind = "MAIN_CREDIT"
	OutcomeBonusCredit OutcomeKind = "BONUS_CREDIT"
)

// OutcomeStatus distinguishes executed adjustments from blocked ones.
// Decision-level conditions (insufficient balance, line state, missing
// bucket id) are outcomes with StatusSkipped, never errors.
type OutcomeStatus string

const (
	OutcomeSuccess OutcomeStatus = "SUCCESS"
	OutcomeFailure OutcomeStatus = "FAILURE"
	OutcomeSkipped OutcomeStatus = "SKIPPED"
)

// AdjustmentOutcome is the result of one balance sub-path. It lives only for
// the duration of one command's processing and is folded into the report
// line.
type AdjustmentOutcome struct {
	Kind             OutcomeKind
	Status           OutcomeStatus
	Message          string
	ResultingBalance *Money
}
