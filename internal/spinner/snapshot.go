package spinner

import (
	"fmt"

	"github.com/osse101/SpinEconomy_Go/internal/domain"
	"github.com/osse101/SpinEconomy_Go/internal/utils"
)

// categoryRef is a non-empty category with its cumulative weight.
type categoryRef struct {
	index       int
	cumulWeight float64
}

// Snapshot is an immutable view of the reward catalog that draws are made against.
type Snapshot struct {
	categories  []domain.RewardCategory
	refs        []categoryRef
	totalWeight float64
}

// NewSnapshot copies the categories and precomputes the cumulative weights
// of the categories that currently hold items.
func NewSnapshot(categories []domain.RewardCategory) Snapshot {
	snap := Snapshot{categories: copyCategories(categories)}
	for i, cat := range snap.categories {
		if len(cat.Items) == 0 || cat.Weight <= 0 {
			continue
		}
		snap.totalWeight += cat.Weight
		snap.refs = append(snap.refs, categoryRef{index: i, cumulWeight: snap.totalWeight})
	}
	return snap
}

// TotalWeight is the summed weight of all non-empty categories.
func (s Snapshot) TotalWeight() float64 {
	return s.totalWeight
}

// IsEmpty reports whether no category holds any item.
func (s Snapshot) IsEmpty() bool {
	return len(s.refs) == 0
}

// Categories returns a copy of the snapshot's categories in declaration order.
func (s Snapshot) Categories() []domain.RewardCategory {
	return copyCategories(s.categories)
}

// Draw performs one weighted spin. The second return value is false when the
// catalog has no items at all.
func Draw(s Snapshot, rng utils.RandomSource) (domain.RewardResult, bool) {
	if s.IsEmpty() {
		return domain.RewardResult{}, false
	}

	cat, ok := s.selectCategory(rng.Float64() * s.totalWeight)
	if !ok {
		cat, ok = s.firstNonEmpty()
		if !ok {
			return domain.RewardResult{}, false
		}
	}

	item := cat.Items[rng.Intn(len(cat.Items))]
	return domain.RewardResult{
		CategoryKey:  cat.Key,
		CategoryName: cat.Name,
		Rarity:       cat.Rarity,
		Item:         item,
	}, true
}

// DrawBatch performs n spins. If any draw comes back empty the whole batch is
// discarded and ErrEmptyCatalog is returned.
func DrawBatch(s Snapshot, rng utils.RandomSource, n int) ([]domain.RewardResult, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d", domain.ErrInvalidSpinCount, n)
	}
	results := make([]domain.RewardResult, 0, n)
	for i := 0; i < n; i++ {
		res, ok := Draw(s, rng)
		if !ok {
			return nil, domain.ErrEmptyCatalog
		}
		results = append(results, res)
	}
	return results, nil
}

// Preview reports each category's odds without touching catalog state.
func Preview(s Snapshot) []domain.CategoryPreview {
	previews := make([]domain.CategoryPreview, 0, len(s.categories))
	for _, cat := range s.categories {
		p := domain.CategoryPreview{
			Key:       cat.Key,
			Name:      cat.Name,
			Rarity:    cat.Rarity,
			ItemCount: len(cat.Items),
		}
		if s.totalWeight > 0 && len(cat.Items) > 0 && cat.Weight > 0 {
			p.Probability = cat.Weight / s.totalWeight
		}
		p.Percentage = fmt.Sprintf(PercentageFormat, p.Probability*100)
		previews = append(previews, p)
	}
	return previews
}

// selectCategory walks non-empty categories in declaration order and returns
// the first whose cumulative weight reaches roll.
func (s Snapshot) selectCategory(roll float64) (domain.RewardCategory, bool) {
	for _, ref := range s.refs {
		if roll <= ref.cumulWeight {
			cat := s.categories[ref.index]
			if len(cat.Items) == 0 {
				return domain.RewardCategory{}, false
			}
			return cat, true
		}
	}
	return domain.RewardCategory{}, false
}

func (s Snapshot) firstNonEmpty() (domain.RewardCategory, bool) {
	for _, cat := range s.categories {
		if len(cat.Items) > 0 {
			return cat, true
		}
	}
	return domain.RewardCategory{}, false
}

func copyCategories(categories []domain.RewardCategory) []domain.RewardCategory {
	out := make([]domain.RewardCategory, len(categories))
	for i, cat := range categories {
		out[i] = cat
		out[i].Items = append([]domain.RewardItem(nil), cat.Items...)
	}
	return out
}
