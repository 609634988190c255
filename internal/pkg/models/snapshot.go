package models

import (
	"github.com/EngrDhee/automatic-credit-debit-operations/internal/pkg/consts"
)

// AccountFields is the named view over the positional account query result.
// The mapping from position to meaning happens here and nowhere else.
type AccountFields struct {
	Identifier string
	StateCode  string
	Balance    Money
	Raw        []string
}

// NewAccountFields resolves the positional result values into named fields.
// A record shorter than the expected field count yields a partially filled
// view; callers must check OnIN on the snapshot before trusting it.
func NewAccountFields(values []string) AccountFields {
	f := AccountFields{Raw: values}
	if len(values) > consts.AccountFieldIdentifier {
		f.Identifier = values[consts.AccountFieldIdentifier]
	}
	if len(values) > consts.AccountFieldStateCode {
		f.StateCode = values[consts.AccountFieldStateCode]
	}
	if len(values) > consts.AccountFieldBalance {
		if bal, err := ParseNaira(values[consts.AccountFieldBalance]); err == nil {
			f.Balance = bal
		}
	}
	return f
}

// SubscriberSnapshot is the typed, validated view over one subscriber query
// response. It is built once per command and never mutated.
type SubscriberSnapshot struct {
	Msisdn          string
	MainStatus      string
	BonusStatus     string
	Account         AccountFields
	LineState       LineState
	BonusBuckets    []Bucket
	AlwaysOnBuckets []Bucket
}

// OnIN reports whether the subscriber has a full account record on the IN
// platform. Short records mean the line is not provisioned there.
func (s *SubscriberSnapshot) OnIN() bool {
	return len(s.Account.Raw) == consts.AccountFieldCount
}
