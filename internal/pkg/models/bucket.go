package models

// Bucket is one bonus bucket as reported by the bundle query.
type Bucket struct {
	BundleID     string
	State        string
	EndDateTime  string // lexically comparable timestamp, empty = no expiry
	TariffPlanID string
	BucketID     string
	Remaining    Money
}

// ActiveForDebit reports whether the bucket may be drawn from as of the given
// run timestamp. End dates are compared lexically; an empty end date means
// the bucket never expires.
func (b Bucket) ActiveForDebit(asOf string) bool {
	return b.EndDateTime == "" || b.EndDateTime >= asOf
}
