package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yosapark/yomogi_backend/internal/service/diagnosis"
)

func TestBlendForBodyType(t *testing.T) {
	svc := New()
	ctx := context.Background()

	want := map[string]string{
		diagnosis.Cold:      "warming",
		diagnosis.Stress:    "relaxing",
		diagnosis.Swelling:  "detox",
		diagnosis.Hormone:   "hormone",
		diagnosis.Digestive: "digestive",
		diagnosis.Sleep:     "sleep",
		diagnosis.Skin:      "skin",
		diagnosis.Balanced:  "balanced",
	}
	for bodyType, key := range want {
		b, err := svc.BlendForBodyType(ctx, bodyType)
		require.NoError(t, err, bodyType)
		assert.Equal(t, key, b.Key)
	}

	_, err := svc.BlendForBodyType(ctx, "pain")
	assert.ErrorIs(t, err, ErrBodyTypeNotFound)
}

func TestGetBlend(t *testing.T) {
	svc := New()
	b, err := svc.GetBlend(context.Background(), "warming")
	require.NoError(t, err)
	assert.Equal(t, 6000, b.Price)

	_, err = svc.GetBlend(context.Background(), "espresso")
	assert.ErrorIs(t, err, ErrBlendNotFound)
	assert.Len(t, svc.ListBlends(context.Background()), 8)
}

func TestListMenu_Filters(t *testing.T) {
	svc := New()
	ctx := context.Background()

	all := svc.ListMenu(ctx, MenuFilter{})
	assert.Len(t, all, 14)

	for _, m := range svc.ListMenu(ctx, MenuFilter{Popular: true}) {
		assert.True(t, m.Popular, m.ID)
	}
	for _, m := range svc.ListMenu(ctx, MenuFilter{Limited: true}) {
		assert.True(t, m.Limited, m.ID)
	}

	facial := svc.ListMenu(ctx, MenuFilter{Tag: "フェイシャル"})
	require.Len(t, facial, 1)
	assert.Equal(t, "facial-skin-care", facial[0].ID)

	assert.Empty(t, svc.ListMenu(ctx, MenuFilter{Tag: "フェイシャル", Limited: true}))
}

func TestRecommend(t *testing.T) {
	svc := New()
	ctx := context.Background()

	for _, bt := range diagnosis.Canonical {
		rec, err := svc.Recommend(ctx, bt)
		require.NoError(t, err, bt)
		assert.NotEmpty(t, rec.Primary, bt)
		assert.NotEmpty(t, rec.Benefits, bt)
	}

	// One stress course references an id that is not on the menu.
	stress, err := svc.Recommend(ctx, diagnosis.Stress)
	require.NoError(t, err)
	assert.Len(t, stress.Primary, 2)

	_, err = svc.Recommend(ctx, "unknown")
	assert.ErrorIs(t, err, ErrBodyTypeNotFound)
}

func TestGetBodyType(t *testing.T) {
	svc := New()
	bt, err := svc.GetBodyType(context.Background(), diagnosis.Sleep)
	require.NoError(t, err)
	assert.Equal(t, diagnosis.Sleep, bt.Key)

	_, err = svc.GetBodyType(context.Background(), "heat")
	assert.ErrorIs(t, err, ErrBodyTypeNotFound)
	assert.Len(t, svc.ListBodyTypes(context.Background()), 8)
}
