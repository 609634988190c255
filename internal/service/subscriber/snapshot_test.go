package subscriber

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EngrDhee/automatic-credit-debit-operations/internal/pkg/consts"
	dmodels "github.com/EngrDhee/automatic-credit-debit-operations/internal/pkg/downstreams/models"
	"github.com/EngrDhee/automatic-credit-debit-operations/internal/pkg/models"
)

func fullResponsePairs() []dmodels.ResultPair {
	return []dmodels.ResultPair{
		{Name: "QueryAccount", Value: "SUCCESS"},
		{Name: "Account ID", Value: "2348011234567"},
		{Name: "Account Type", Value: "PREPAID"},
		{Name: "Language", Value: "EN"},
		{Name: "Account State", Value: "STS_ACTIVE"},
		{Name: "Activation Date", Value: "20200101"},
		{Name: "Expiry Date", Value: "20300101"},
		{Name: "Main Balance", Value: "150.00"},
		{Name: "QueryBundle", Value: "SUCCESS"},
		{Name: "Bundle ID", Value: "bdlBONUS01"},
		{Name: "Bundle State", Value: "Active"},
		{Name: "End Date Time", Value: "202512312359"},
		{Name: "Tariff Plan COSP ID", Value: "COSP1"},
		{Name: "Bucket/Discount ID 1", Value: "MAA"},
		{Name: "Bucket/UBD Counter 1", Value: "500000"},
		{Name: "Bundle ID", Value: "sbcALWAYSON"},
		{Name: "Bundle State", Value: "Active"},
		{Name: "End Date Time", Value: ""},
		{Name: "Tariff Plan COSP ID", Value: "COSP2"},
		{Name: "Bucket/Discount ID 1", Value: "AON"},
		{Name: "Bucket/UBD Counter 1", Value: "120000"},
	}
}

func TestBuildSnapshotFullRecord(t *testing.T) {
	snap := BuildSnapshot("2348011234567", fullResponsePairs())

	assert.Equal(t, consts.StatusSuccess, snap.MainStatus)
	assert.Equal(t, consts.StatusSuccess, snap.BonusStatus)
	assert.True(t, snap.OnIN())
	assert.Equal(t, "2348011234567", snap.Account.Identifier)
	assert.Equal(t, "STS_ACTIVE", snap.Account.StateCode)
	assert.Equal(t, models.Money(1500000), snap.Account.Balance)
	assert.Equal(t, models.LineStateActive, snap.LineState)

	require.Len(t, snap.BonusBuckets, 1)
	bucket := snap.BonusBuckets[0]
	assert.Equal(t, "bdlBONUS01", bucket.BundleID)
	assert.Equal(t, "202512312359", bucket.EndDateTime)
	assert.Equal(t, "MAA", bucket.BucketID)
	assert.Equal(t, models.Money(500000), bucket.Remaining)

	require.Len(t, snap.AlwaysOnBuckets, 1)
	assert.Equal(t, consts.AlwaysOnBundleID, snap.AlwaysOnBuckets[0].BundleID)
}

// The always-on bundle only ever shows up in its own list; it is never a
// candidate for bonus debiting.
func TestBuildSnapshotAlwaysOnKeptSeparate(t *testing.T) {
	snap := BuildSnapshot("2348011234567", fullResponsePairs())

	for _, bucket := range snap.BonusBuckets {
		assert.NotEqual(t, consts.AlwaysOnBundleID, bucket.BundleID)
	}
}

func TestBuildSnapshotShortRecord(t *testing.T) {
	pairs := []dmodels.ResultPair{
		{Name: "QueryAccount", Value: "SUCCESS"},
		{Name: "Account ID", Value: "2348011234567"},
		{Name: "Account Type", Value: "PREPAID"},
	}

	snap := BuildSnapshot("2348011234567", pairs)

	assert.False(t, snap.OnIN())
	assert.Len(t, snap.Account.Raw, 2)
}

func TestBuildSnapshotMainFailure(t *testing.T) {
	pairs := fullResponsePairs()
	pairs[0].Value = "FAILURE"

	snap := BuildSnapshot("2348011234567", pairs)

	assert.Equal(t, consts.StatusFailure, snap.MainStatus)
	// Bonus status is only read when the account task succeeded.
	assert.Equal(t, consts.StatusFailure, snap.BonusStatus)
	assert.Equal(t, models.LineStateUnknown, snap.LineState)
	// Account values degrade to the queried msisdn placeholders.
	assert.Equal(t, "2348011234567", snap.Account.Identifier)
	assert.Equal(t, "2348011234567", snap.Account.StateCode)
}

// A successful record whose state field came back empty is still an active
// line; only a failed lookup leaves the state unknown.
func TestBuildSnapshotEmptyStateCodeIsActive(t *testing.T) {
	pairs := fullResponsePairs()
	pairs[4].Value = ""

	snap := BuildSnapshot("2348011234567", pairs)

	assert.Equal(t, models.LineStateActive, snap.LineState)
}

func TestBuildSnapshotDeactivatedLine(t *testing.T) {
	pairs := fullResponsePairs()
	pairs[4].Value = "STS_DEACTIVE"

	snap := BuildSnapshot("2348011234567", pairs)

	assert.Equal(t, models.LineStateDeactivated, snap.LineState)
}

func TestBuildSnapshotEmptyResponse(t *testing.T) {
	snap := BuildSnapshot("2348011234567", nil)

	assert.Equal(t, consts.StatusFailure, snap.MainStatus)
	assert.Equal(t, consts.StatusFailure, snap.BonusStatus)
	assert.False(t, snap.OnIN())
}
