package consts

// Task result statuses as returned by the eSM platform.
const (
	StatusSuccess = "SUCCESS"
	StatusFailure = "FAILURE"
)

// Direction selects the adjustment method sent to the platform.
type Direction string

const (
	DirectionIncrement Direction = "INCR"
	DirectionDecrement Direction = "DECR"
)

// AccountFieldCount is the number of attributes the account query asks for.
// A subscriber whose record comes back with fewer fields is not provisioned
// on the IN platform.
const AccountFieldCount = 7

// Positions of the semantic fields inside the account query result. The
// attribute order is fixed by the query the tool sends, so these are resolved
// here once instead of being indexed inline at every use site.
const (
	AccountFieldIdentifier = 0
	AccountFieldStateCode  = 3
	AccountFieldBalance    = 6
)

// Bucket ids accepted for bonus crediting. MAA is checked before MA4.
const (
	CreditBucketMAA = "MAA"
	CreditBucketMA4 = "MA4"
)

// AlwaysOnBundleID marks the always-on bundle, which is reported separately
// and never drawn from when debiting bonus.
const AlwaysOnBundleID = "sbcALWAYSON"

// BervoBundlePrefix is prepended to the bucket id in the bundle-state task of
// a bucket adjustment request.
const BervoBundlePrefix = "bdlBERVOBM_"

// BucketExpiryLayout is the timestamp layout bucket end dates are compared
// against. End dates are lexically comparable in this layout.
const BucketExpiryLayout = "200601021504"

const (
	LogFileLayout    = "Credit_Debit_Ops_Tool_02012006_1504.log"
	LogMonthLayout   = "Credit_Debit_012006"
	ReportFileLayout = "02012006_1504"
)
