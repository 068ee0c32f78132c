package spinner

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/SpinEconomy_Go/internal/domain"
	"github.com/osse101/SpinEconomy_Go/internal/testing/fakerand"
	"github.com/osse101/SpinEconomy_Go/internal/utils"
)

func twoCategoryCatalog() []domain.RewardCategory {
	return []domain.RewardCategory{
		{Key: "common", Name: "Common", Rarity: "common", Weight: 90, Items: []domain.RewardItem{
			{ID: "red", Name: "Red", RoleID: "r1"},
			{ID: "blue", Name: "Blue", RoleID: "r2"},
		}},
		{Key: "rare", Name: "Rare", Rarity: "rare", Weight: 10, Items: []domain.RewardItem{
			{ID: "vip", Name: "VIP", RoleID: "r3"},
		}},
	}
}

func TestDraw_WeightedFairness(t *testing.T) {
	snap := NewSnapshot(twoCategoryCatalog())
	rng := utils.NewSeededSource(20240101)

	const draws = 100000
	counts := map[string]int{}
	for i := 0; i < draws; i++ {
		res, ok := Draw(snap, rng)
		require.True(t, ok)
		counts[res.CategoryKey]++
	}

	commonShare := float64(counts["common"]) / draws
	rareShare := float64(counts["rare"]) / draws
	// 5 sigma for p=0.9, n=100k is about 0.0047
	assert.InDelta(t, 0.90, commonShare, 0.005)
	assert.InDelta(t, 0.10, rareShare, 0.005)
}

func TestDraw_CategorySelection(t *testing.T) {
	snap := NewSnapshot(twoCategoryCatalog())

	tests := []struct {
		name     string
		roll     float64
		itemIdx  int
		expected string
	}{
		{"lowest roll picks first category", 0.0, 0, "red"},
		{"boundary stays in first category", 0.9, 1, "blue"},
		{"roll past boundary picks second", 0.95, 0, "vip"},
		{"highest roll picks last", 0.999999, 0, "vip"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng := fakerand.New([]float64{tt.roll}, []int{tt.itemIdx})
			res, ok := Draw(snap, rng)
			require.True(t, ok)
			assert.Equal(t, tt.expected, res.Item.ID)
		})
	}
}

func TestDraw_SkipsEmptyCategories(t *testing.T) {
	cats := []domain.RewardCategory{
		{Key: "empty", Name: "Empty", Weight: 1000},
		{Key: "full", Name: "Full", Weight: 1, Items: []domain.RewardItem{{ID: "only", Name: "Only"}}},
	}
	snap := NewSnapshot(cats)
	assert.Equal(t, 1.0, snap.TotalWeight())

	for _, roll := range []float64{0, 0.5, 0.99} {
		res, ok := Draw(snap, fakerand.Floats(roll))
		require.True(t, ok)
		assert.Equal(t, "full", res.CategoryKey)
	}
}

func TestDraw_FallsBackToFirstNonEmpty(t *testing.T) {
	snap := NewSnapshot(twoCategoryCatalog())
	// A roll outside the cumulative range can only come from a broken source.
	res, ok := Draw(snap, fakerand.Floats(1.5))
	require.True(t, ok)
	assert.Equal(t, "common", res.CategoryKey)
}

func TestDraw_EmptyCatalog(t *testing.T) {
	snap := NewSnapshot([]domain.RewardCategory{{Key: "a", Name: "A", Weight: 1}})
	_, ok := Draw(snap, fakerand.Floats(0.3))
	assert.False(t, ok)
	assert.True(t, snap.IsEmpty())
}

func TestDrawBatch(t *testing.T) {
	t.Run("returns all results in draw order", func(t *testing.T) {
		snap := NewSnapshot(twoCategoryCatalog())
		rng := fakerand.New([]float64{0.1, 0.95, 0.2}, []int{1, 0, 0})
		results, err := DrawBatch(snap, rng, 3)
		require.NoError(t, err)
		require.Len(t, results, 3)
		assert.Equal(t, "blue", results[0].Item.ID)
		assert.Equal(t, "vip", results[1].Item.ID)
		assert.Equal(t, "red", results[2].Item.ID)
	})

	t.Run("empty catalog aborts whole batch", func(t *testing.T) {
		snap := NewSnapshot(nil)
		results, err := DrawBatch(snap, fakerand.Floats(0.5), 3)
		assert.ErrorIs(t, err, domain.ErrEmptyCatalog)
		assert.Nil(t, results)
	})

	t.Run("rejects non-positive count", func(t *testing.T) {
		_, err := DrawBatch(NewSnapshot(twoCategoryCatalog()), fakerand.Floats(0.5), 0)
		assert.ErrorIs(t, err, domain.ErrInvalidSpinCount)
	})
}

func TestPreview(t *testing.T) {
	cats := twoCategoryCatalog()
	cats = append(cats, domain.RewardCategory{Key: "empty", Name: "Empty", Rarity: "epic", Weight: 5})
	snap := NewSnapshot(cats)

	previews := Preview(snap)
	require.Len(t, previews, 3)

	assert.Equal(t, "Common", previews[0].Name)
	assert.Equal(t, 2, previews[0].ItemCount)
	assert.InDelta(t, 0.9, previews[0].Probability, 1e-9)
	assert.Equal(t, "90.00%", previews[0].Percentage)

	assert.Equal(t, "10.00%", previews[1].Percentage)

	assert.Equal(t, 0, previews[2].ItemCount)
	assert.Equal(t, "0.00%", previews[2].Percentage)

	sum := 0.0
	for _, p := range previews {
		sum += p.Probability
	}
	assert.True(t, math.Abs(sum-1) < 1e-9)
}

func TestSnapshot_IsolatedFromSource(t *testing.T) {
	cats := twoCategoryCatalog()
	snap := NewSnapshot(cats)
	cats[0].Items[0].Name = "changed"
	cats[1].Items = nil

	got := snap.Categories()
	assert.Equal(t, "Red", got[0].Items[0].Name)
	assert.Len(t, got[1].Items, 1)
}
