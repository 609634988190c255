package models

// ParsedCommand is one operator instruction line in typed form. Each amount
// is nil when the corresponding marker was absent from the line. Bonus
// amounts are already scaled into counter units; main amounts are held in
// the same unit but are sent to the platform as plain naira.
type ParsedCommand struct {
	Msisdn      string
	DebitMain   *Money
	DebitBonus  *Money
	CreditMain  *Money
	CreditBonus *Money
}

func (c ParsedCommand) RequestsDebit() bool {
	return c.DebitMain != nil || c.DebitBonus != nil
}

func (c ParsedCommand) RequestsCredit() bool {
	return c.CreditMain != nil || c.CreditBonus != nil
}
