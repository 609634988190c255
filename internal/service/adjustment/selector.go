package adjustment

import (
	"strings"

	"github.com/EngrDhee/automatic-credit-debit-operations/internal/pkg/consts"
	"github.com/EngrDhee/automatic-credit-debit-operations/internal/pkg/models"
)

// SelectDebitBucket picks the bucket a bonus debit draws from. A bucket is
// eligible when it is active as of the run timestamp and holds at least the
// required amount. With a single eligible bucket the choice is that bucket;
// with several, only the first two buckets in original order are considered,
// taking the first of them that is itself eligible. Selection is pure, so
// the same inputs always pick the same bucket.
func SelectDebitBucket(buckets []models.Bucket, required models.Money, asOf string) (models.Bucket, bool) {
	var eligible []models.Bucket
	for _, b := range buckets {
		if b.ActiveForDebit(asOf) && b.Remaining >= required {
			eligible = append(eligible, b)
		}
	}

	switch {
	case len(eligible) == 0:
		return models.Bucket{}, false
	case len(eligible) == 1:
		return eligible[0], true
	}

	for i := 0; i < len(buckets) && i < 2; i++ {
		b := buckets[i]
		if b.ActiveForDebit(asOf) && b.Remaining >= required {
			return b, true
		}
	}
	return models.Bucket{}, false
}

// SelectCreditBucket resolves the target bucket id for a bonus credit from
// the raw command text. MAA wins over MA4 when both appear. No eligibility
// check applies to credits.
func SelectCreditBucket(rawText string) (string, bool) {
	if strings.Contains(rawText, consts.CreditBucketMAA) {
		return consts.CreditBucketMAA, true
	}
	if strings.Contains(rawText, consts.CreditBucketMA4) {
		return consts.CreditBucketMA4, true
	}
	return "", false
}
