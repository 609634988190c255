package interfaces

import (
	"context"

	"github.com/EngrDhee/automatic-credit-debit-operations/internal/pkg/consts"
	dmodels "github.com/EngrDhee/automatic-credit-debit-operations/internal/pkg/downstreams/models"
	"github.com/EngrDhee/automatic-credit-debit-operations/internal/pkg/models"
)

// SubscriberQuerier runs the subscriber account + bundle query.
type SubscriberQuerier interface {
	RetrieveSubscriber(ctx context.Context, msisdn string) ([]dmodels.ResultPair, error)
}

// MainBalanceAdjuster moves the main balance. The returned status is the
// platform task result ("SUCCESS"/"FAILURE"); the new balance is in counter
// units.
type MainBalanceAdjuster interface {
	AdjustMainBalance(ctx context.Context, msisdn string, amount models.Money, direction consts.Direction) (string, models.Money, error)
}

// BucketBalanceAdjuster moves one bonus bucket's counter.
type BucketBalanceAdjuster interface {
	AdjustBucketBalance(ctx context.Context, msisdn string, amount models.Money, bucketID string, direction consts.Direction) (string, error)
}
