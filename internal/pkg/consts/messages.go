package consts

// Report line fragments. These are operator-facing and audited, so the exact
// wording is load-bearing.
const (
	MsgNotOnIN = "not on IN"

	MsgMainDebitResult        = "main debiting %s, current main balance -> NGN%s"
	MsgMainDebitInsufficient  = "Current main balance of NGN%s not sufficient for debiting NGN%s"
	MsgMainDebitDeactivated   = "The line is deactive, can't debit"
	MsgMainDebitValidState    = "The line is in valid state, can't debit"
	MsgBonusDebitResult       = "bonus debiting %s, current bonus balance -> NGN%s"
	MsgBonusDebitInsufficient = "Current bonus balance not sufficient for debiting NGN%s"
	MsgBonusDebitDeactivated  = "The line is deactive, can't debit bonus"
	MsgBonusDebitValidState   = "The line is in valid state, can't debit bonus"
	MsgBonusDebitNoBalance    = "Insufficient bonus balance for debiting"

	MsgMainCreditResult      = "main crediting %s, current main balance -> NGN%s"
	MsgMainCreditValidState  = "The line is in valid state, can't credit main."
	MsgMainCreditDeactivated = "The line is deactive, can't credit main"
	MsgBonusCreditResult     = "bonus crediting %s, current bonus balance -> %s"
	MsgBonusCreditNoBucketID = "Bucket id was not inputed, bonus credit was not executed"
	MsgBonusCreditValidState = "can't be credit in valid state"
	MsgBonusCreditDeactived  = "can't be credited in deactivate state"
	MsgBonusCreditNoBalance  = "call the script_writer attention"

	ReportSeparator = " | "
)
