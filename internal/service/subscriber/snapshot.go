package subscriber

import (
	"regexp"
	"strings"

	"github.com/EngrDhee/automatic-credit-debit-operations/internal/pkg/consts"
	dmodels "github.com/EngrDhee/automatic-credit-debit-operations/internal/pkg/downstreams/models"
	"github.com/EngrDhee/automatic-credit-debit-operations/internal/pkg/models"
)

var (
	bundleRe   = regexp.MustCompile(consts.BundlePattern)
	alwaysOnRe = regexp.MustCompile(consts.AlwaysOnBundlePattern)
)

// BuildSnapshot turns the raw result pairs of one subscriber query into the
// immutable snapshot the decision engine works from.
//
// The pair layout follows the query the tool sends: pair 0 is the account
// task result, pairs 1..7 are the account attribute values, pair 8 is the
// bundle task result, and everything after that is the bundle attribute
// stream, which is re-joined into text and matched against the known bundle
// block shapes.
func BuildSnapshot(msisdn string, pairs []dmodels.ResultPair) *models.SubscriberSnapshot {
	snap := &models.SubscriberSnapshot{
		Msisdn:     msisdn,
		MainStatus: consts.StatusFailure,
	}
	if len(pairs) == 0 {
		snap.BonusStatus = consts.StatusFailure
		return snap
	}

	if pairs[0].Value != "" {
		snap.MainStatus = pairs[0].Value
	}

	end := len(pairs)
	if end > 8 {
		end = 8
	}
	accountValues := make([]string, 0, consts.AccountFieldCount)
	for _, pair := range pairs[1:end] {
		if snap.MainStatus == consts.StatusSuccess {
			accountValues = append(accountValues, pair.Value)
		} else {
			accountValues = append(accountValues, msisdn)
		}
	}
	snap.Account = models.NewAccountFields(accountValues)

	// The bundle task result is only meaningful when the account task
	// succeeded.
	snap.BonusStatus = consts.StatusFailure
	if snap.MainStatus == consts.StatusSuccess && len(pairs) > 8 {
		snap.BonusStatus = pairs[8].Value
	}

	if snap.MainStatus == consts.StatusSuccess {
		snap.LineState = models.DeriveLineState(snap.Account.StateCode)
	}

	if len(pairs) > 9 {
		bundleText := joinPairs(pairs[9:])
		snap.BonusBuckets = parseBuckets(bundleRe, bundleText)
		snap.AlwaysOnBuckets = parseBuckets(alwaysOnRe, bundleText)
	}
	return snap
}

func joinPairs(pairs []dmodels.ResultPair) string {
	parts := make([]string, 0, len(pairs)*2)
	for _, pair := range pairs {
		parts = append(parts, pair.Name, pair.Value)
	}
	return strings.Join(parts, " ")
}

func parseBuckets(re *regexp.Regexp, text string) []models.Bucket {
	var buckets []models.Bucket
	for _, match := range re.FindAllStringSubmatch(text, -1) {
		remaining, err := models.ParseCounter(match[6])
		if err != nil {
			remaining = 0
		}
		buckets = append(buckets, models.Bucket{
			BundleID:     match[1],
			State:        match[2],
			EndDateTime:  match[3],
			TariffPlanID: match[4],
			BucketID:     match[5],
			Remaining:    remaining,
		})
	}
	return buckets
}
