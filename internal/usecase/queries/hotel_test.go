//go:build unit

package queries_test

import (
	"context"
	"testing"

	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/queries"
	"hotel-booking/tests/common/builder"
	queriesmock "hotel-booking/tests/mock/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestHotelQueries_GetByID(t *testing.T) {
	ctx := context.Background()
	view := builder.NewHotelBuilder().BuildView()

	t.Run("キャッシュにあればストアを読まない", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockHotelReadStore(ctrl)
		cache := queriesmock.NewMockHotelViewCache(ctrl)
		cache.EXPECT().Get(gomock.Any(), view.ID).Return(view, true)

		got, err := queries.NewHotelQueries(store, cache).GetByID(ctx, view.ID)
		require.NoError(t, err)
		assert.Equal(t, view, got)
	})

	t.Run("ミスしたらストアから読みキャッシュに載せる", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockHotelReadStore(ctrl)
		cache := queriesmock.NewMockHotelViewCache(ctrl)
		gomock.InOrder(
			cache.EXPECT().Get(gomock.Any(), view.ID).Return(nil, false),
			store.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil),
			cache.EXPECT().Set(gomock.Any(), view),
		)

		got, err := queries.NewHotelQueries(store, cache).GetByID(ctx, view.ID)
		require.NoError(t, err)
		assert.Equal(t, view, got)
	})

	t.Run("存在しないホテルはキャッシュしない", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockHotelReadStore(ctrl)
		cache := queriesmock.NewMockHotelViewCache(ctrl)
		cache.EXPECT().Get(gomock.Any(), view.ID).Return(nil, false)
		store.EXPECT().FindByID(gomock.Any(), view.ID).Return(nil, errs.Wrap(errs.ErrNotFound, "hotel"))

		_, err := queries.NewHotelQueries(store, cache).GetByID(ctx, view.ID)
		assert.ErrorIs(t, err, errs.ErrNotFound)
	})
}

func TestHotelQueries_ListClampsPaging(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockHotelReadStore(ctrl)
	store.EXPECT().
		List(gomock.Any(), queries.HotelFilter{City: "Kyoto", Limit: queries.MaxListLimit, Offset: 0}).
		Return([]*queries.HotelView{}, nil)

	_, err := queries.NewHotelQueries(store, queries.NopHotelViewCache{}).
		List(context.Background(), queries.HotelFilter{City: "Kyoto", Limit: 10_000, Offset: -5})
	require.NoError(t, err)
}
