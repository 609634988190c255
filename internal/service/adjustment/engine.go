package adjustment

import (
	"context"
	"fmt"
	"time"

	"github.com/EngrDhee/automatic-credit-debit-operations/internal/pkg/consts"
	"github.com/EngrDhee/automatic-credit-debit-operations/internal/pkg/logger"
	"github.com/EngrDhee/automatic-credit-debit-operations/internal/pkg/models"
	"github.com/EngrDhee/automatic-credit-debit-operations/internal/service/command"
	"github.com/EngrDhee/automatic-credit-debit-operations/internal/service/interfaces"
)

// Engine decides which adjustment calls a parsed command results in. It is
// pure apart from the two injected adjuster capabilities and the clock.
type Engine struct {
	main   interfaces.MainBalanceAdjuster
	bucket interfaces.BucketBalanceAdjuster
	now    func() time.Time
}

func NewEngine(main interfaces.MainBalanceAdjuster, bucket interfaces.BucketBalanceAdjuster, now func() time.Time) *Engine {
	if now == nil {
		now = time.Now
	}
	return &Engine{main: main, bucket: bucket, now: now}
}

// Process applies the dispatch rule to one command and renders the report
// line. The debit path runs only when the raw line carries at least one "-"
// and no "+"; the credit path only for the reverse. A line with both kinds
// of marker, or neither, performs no adjustment: it reports "not on IN" when
// the account record is short and is otherwise silent (ok=false, no line).
//
// An error return means a transport failure; the command is abandoned
// without a report line and the caller moves on to the next one.
func (e *Engine) Process(ctx context.Context, raw string, cmd models.ParsedCommand, snap *models.SubscriberSnapshot) (string, bool, error) {
	debits, credits := command.CountMarkers(raw)

	if debits >= 1 && credits == 0 && snap.OnIN() {
		line, err := e.debitOperations(ctx, cmd, snap)
		if err != nil {
			return "", false, err
		}
		return line, true, nil
	}

	if credits >= 1 && debits == 0 && snap.OnIN() {
		line, err := e.creditOperations(ctx, raw, cmd, snap)
		if err != nil {
			return "", false, err
		}
		return line, true, nil
	}

	if !snap.OnIN() {
		return RenderNotOnIN(cmd.Msisdn), true, nil
	}

	logger.Warn(ctx, "command with mixed or missing +/- markers, no adjustment applied: %q", raw)
	return "", false, nil
}

func (e *Engine) debitOperations(ctx context.Context, cmd models.ParsedCommand, snap *models.SubscriberSnapshot) (string, error) {
	identifier := snap.Account.Identifier

	mainOutcome := models.AdjustmentOutcome{Kind: models.OutcomeMainDebit, Status: models.OutcomeSkipped}
	if cmd.DebitMain != nil {
		outcome, err := e.mainDebit(ctx, identifier, *cmd.DebitMain, snap)
		if err != nil {
			return "", err
		}
		mainOutcome = outcome
	}

	bonusOutcome := models.AdjustmentOutcome{Kind: models.OutcomeBonusDebit, Status: models.OutcomeSkipped}
	if cmd.DebitBonus != nil {
		outcome, err := e.bonusDebit(ctx, identifier, *cmd.DebitBonus, snap)
		if err != nil {
			return "", err
		}
		bonusOutcome = outcome
	}

	return Render(identifier, mainOutcome, bonusOutcome), nil
}

// mainDebit is permitted only for a successful account record on an active
// line, and the state checks come before the balance check.
func (e *Engine) mainDebit(ctx context.Context, identifier string, amount models.Money, snap *models.SubscriberSnapshot) (models.AdjustmentOutcome, error) {
	outcome := models.AdjustmentOutcome{Kind: models.OutcomeMainDebit}

	switch {
	case snap.MainStatus == consts.StatusSuccess && snap.LineState == models.LineStateActive:
		if snap.Account.Balance < amount {
			outcome.Status = models.OutcomeSkipped
			outcome.Message = fmt.Sprintf(consts.MsgMainDebitInsufficient, snap.Account.Balance.Naira(), amount.Naira())
			return outcome, nil
		}
		status, newBalance, err := e.main.AdjustMainBalance(ctx, identifier, amount, consts.DirectionDecrement)
		if err != nil {
			return outcome, err
		}
		outcome.Status = adjustmentStatus(status)
		outcome.ResultingBalance = &newBalance
		outcome.Message = fmt.Sprintf(consts.MsgMainDebitResult, status, newBalance.Naira())
	case snap.LineState == models.LineStateDeactivated:
		outcome.Status = models.OutcomeSkipped
		outcome.Message = consts.MsgMainDebitDeactivated
	case snap.LineState == models.LineStateValidOnly:
		outcome.Status = models.OutcomeSkipped
		outcome.Message = consts.MsgMainDebitValidState
	default:
		// Account task failed on a full record: nothing to debit against.
		outcome.Status = models.OutcomeSkipped
	}
	return outcome, nil
}

func (e *Engine) bonusDebit(ctx context.Context, identifier string, amount models.Money, snap *models.SubscriberSnapshot) (models.AdjustmentOutcome, error) {
	outcome := models.AdjustmentOutcome{Kind: models.OutcomeBonusDebit}

	switch {
	case snap.BonusStatus == consts.StatusSuccess && snap.LineState == models.LineStateActive:
		asOf := e.now().Format(consts.BucketExpiryLayout)
		bucket, found := SelectDebitBucket(snap.BonusBuckets, amount, asOf)
		if !found {
			outcome.Status = models.OutcomeSkipped
			outcome.Message = fmt.Sprintf(consts.MsgBonusDebitInsufficient, amount.Naira())
			return outcome, nil
		}
		status, err := e.bucket.AdjustBucketBalance(ctx, identifier, amount, bucket.BucketID, consts.DirectionDecrement)
		if err != nil {
			return outcome, err
		}
		// The resulting balance is computed locally, not re-queried.
		resulting := bucket.Remaining - amount
		outcome.Status = adjustmentStatus(status)
		outcome.ResultingBalance = &resulting
		outcome.Message = fmt.Sprintf(consts.MsgBonusDebitResult, status, resulting.Naira())
	case snap.LineState == models.LineStateDeactivated:
		outcome.Status = models.OutcomeSkipped
		outcome.Message = consts.MsgBonusDebitDeactivated
	case snap.LineState == models.LineStateValidOnly:
		outcome.Status = models.OutcomeSkipped
		outcome.Message = consts.MsgBonusDebitValidState
	default:
		outcome.Status = models.OutcomeSkipped
		outcome.Message = consts.MsgBonusDebitNoBalance
	}
	return outcome, nil
}

func (e *Engine) creditOperations(ctx context.Context, raw string, cmd models.ParsedCommand, snap *models.SubscriberSnapshot) (string, error) {
	identifier := snap.Account.Identifier

	mainOutcome := models.AdjustmentOutcome{Kind: models.OutcomeMainCredit, Status: models.OutcomeSkipped}
	if cmd.CreditMain != nil {
		outcome, err := e.mainCredit(ctx, identifier, *cmd.CreditMain, snap)
		if err != nil {
			return "", err
		}
		mainOutcome = outcome
	}

	bonusOutcome := models.AdjustmentOutcome{Kind: models.OutcomeBonusCredit, Status: models.OutcomeSkipped}
	if cmd.CreditBonus != nil {
		outcome, err := e.bonusCredit(ctx, raw, identifier, *cmd.CreditBonus, snap)
		if err != nil {
			return "", err
		}
		bonusOutcome = outcome
	}

	// Credit lines are reported against the parsed msisdn, not the account
	// record identifier.
	return Render(cmd.Msisdn, mainOutcome, bonusOutcome), nil
}

func (e *Engine) mainCredit(ctx context.Context, identifier string, amount models.Money, snap *models.SubscriberSnapshot) (models.AdjustmentOutcome, error) {
	outcome := models.AdjustmentOutcome{Kind: models.OutcomeMainCredit}

	if snap.MainStatus != consts.StatusSuccess {
		outcome.Status = models.OutcomeSkipped
		outcome.Message = consts.MsgNotOnIN
		return outcome, nil
	}

	switch snap.LineState {
	case models.LineStateActive:
		status, newBalance, err := e.main.AdjustMainBalance(ctx, identifier, amount, consts.DirectionIncrement)
		if err != nil {
			return outcome, err
		}
		outcome.Status = adjustmentStatus(status)
		outcome.ResultingBalance = &newBalance
		outcome.Message = fmt.Sprintf(consts.MsgMainCreditResult, status, newBalance.Naira())
	case models.LineStateValidOnly:
		outcome.Status = models.OutcomeSkipped
		outcome.Message = consts.MsgMainCreditValidState
	case models.LineStateDeactivated:
		outcome.Status = models.OutcomeSkipped
		outcome.Message = consts.MsgMainCreditDeactivated
	}
	return outcome, nil
}

func (e *Engine) bonusCredit(ctx context.Context, raw, identifier string, amount models.Money, snap *models.SubscriberSnapshot) (models.AdjustmentOutcome, error) {
	outcome := models.AdjustmentOutcome{Kind: models.OutcomeBonusCredit}

	switch {
	case snap.BonusStatus == consts.StatusSuccess && snap.LineState == models.LineStateActive:
		var previous models.Money
		if len(snap.BonusBuckets) > 0 {
			previous = snap.BonusBuckets[0].Remaining
		}
		bucketID, found := SelectCreditBucket(raw)
		if !found {
			outcome.Status = models.OutcomeSkipped
			outcome.Message = consts.MsgBonusCreditNoBucketID
			return outcome, nil
		}
		status, err := e.bucket.AdjustBucketBalance(ctx, identifier, amount, bucketID, consts.DirectionIncrement)
		if err != nil {
			return outcome, err
		}
		total := previous
		if status == consts.StatusSuccess {
			total = previous + amount
		}
		outcome.Status = adjustmentStatus(status)
		outcome.ResultingBalance = &total
		outcome.Message = fmt.Sprintf(consts.MsgBonusCreditResult, status, total.Naira())
	case snap.LineState == models.LineStateValidOnly:
		outcome.Status = models.OutcomeSkipped
		outcome.Message = consts.MsgBonusCreditValidState
	case snap.LineState == models.LineStateDeactivated:
		outcome.Status = models.OutcomeSkipped
		outcome.Message = consts.MsgBonusCreditDeactived
	default:
		outcome.Status = models.OutcomeSkipped
		outcome.Message = consts.MsgBonusCreditNoBalance
	}
	return outcome, nil
}

func adjustmentStatus(platformStatus string) models.OutcomeStatus {
	if platformStatus == consts.StatusSuccess {
		return models.OutcomeSuccess
	}
	return models.OutcomeFailure
}
