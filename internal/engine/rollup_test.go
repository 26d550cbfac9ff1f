package engine

import (
	"context"
	"errors"
	"testing"
	"time"

	ptestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ryhoangf/iValuate/internal/metrics"
	"github.com/ryhoangf/iValuate/internal/store"
	storeMocks "github.com/ryhoangf/iValuate/internal/store/mocks"
	domain "github.com/ryhoangf/iValuate/pkg/types"
)

func TestEngine_RunHistoryRollup(t *testing.T) {
	t.Parallel()

	day := time.Date(2026, 10, 16, 23, 59, 0, 0, time.UTC)
	date := time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC)

	ms := storeMocks.NewMockStore(t)
	ms.EXPECT().ListListedProductIDs(mock.Anything).Return([]string{"p1", "p2", "p3"}, nil).Once()

	ms.EXPECT().
		FindListings(mock.Anything, &store.ListingQuery{ProductID: "p1"}).
		Return([]domain.Listing{{Price: 100}, {Price: 200}, {Price: 400}}, nil).Once()
	ms.EXPECT().
		UpsertPriceHistory(mock.Anything, &domain.PriceHistoryRecord{
			ProductID:    "p1",
			Date:         date,
			AveragePrice: 233,
			MinPrice:     100,
			MaxPrice:     400,
			ListingCount: 3,
		}).
		Return(nil).Once()

	ms.EXPECT().
		FindListings(mock.Anything, &store.ListingQuery{ProductID: "p2"}).
		Return(nil, errors.New("timeout")).Once()

	ms.EXPECT().
		FindListings(mock.Anything, &store.ListingQuery{ProductID: "p3"}).
		Return([]domain.Listing{{Price: 50}}, nil).Once()
	ms.EXPECT().
		UpsertPriceHistory(mock.Anything, mock.MatchedBy(func(r *domain.PriceHistoryRecord) bool {
			return r.ProductID == "p3" && r.ListingCount == 1
		})).
		Return(nil).Once()

	errorsBefore := ptestutil.ToFloat64(metrics.RollupErrorsTotal)

	res, err := newTestEngine(ms).RunHistoryRollup(context.Background(), day)
	require.NoError(t, err)

	assert.Equal(t, date, res.Date)
	assert.Equal(t, 3, res.Products)
	assert.Equal(t, 2, res.Written)
	assert.Equal(t, 1, res.Failed)
	assert.GreaterOrEqual(t, ptestutil.ToFloat64(metrics.RollupErrorsTotal)-errorsBefore, float64(1))
}

func TestEngine_RunHistoryRollup_ListFailure(t *testing.T) {
	t.Parallel()

	boom := errors.New("connection refused")
	ms := storeMocks.NewMockStore(t)
	ms.EXPECT().ListListedProductIDs(mock.Anything).Return(nil, boom).Once()

	_, err := newTestEngine(ms).RunHistoryRollup(context.Background(), testNow)
	require.ErrorIs(t, err, boom)
}

func TestEngine_RunHistoryRollup_Cancelled(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	ms.EXPECT().ListListedProductIDs(mock.Anything).Return([]string{"p1"}, nil).Once()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := newTestEngine(ms).RunHistoryRollup(ctx, testNow)
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, res.Written)
}
