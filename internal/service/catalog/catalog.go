package catalog

import (
	"context"

	"github.com/samber/lo"

	"github.com/yosapark/yomogi_backend/internal/service/diagnosis"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

// Blend is an herbal steam blend offered at booking time.
type Blend struct {
	Key         string   `json:"key"`
	Label       string   `json:"label"`
	Subtitle    string   `json:"subtitle"`
	Description string   `json:"description"`
	Ingredients []string `json:"ingredients"`
	Effects     []string `json:"effects"`
	Price       int      `json:"price"` // yen
	Color       string   `json:"color"`
}

// MenuItem is one course on the salon menu.
type MenuItem struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Category      string   `json:"category"`
	Description   string   `json:"description"`
	Price         int      `json:"price"`
	OriginalPrice int      `json:"original_price,omitempty"`
	Duration      string   `json:"duration"`
	Tags          []string `json:"tags"`
	Features      []string `json:"features"`
	Conditions    []string `json:"conditions,omitempty"`
	Expiration    string   `json:"expiration,omitempty"`
	New           bool     `json:"is_new"`
	Popular       bool     `json:"is_popular"`
	Limited       bool     `json:"is_limited"`
}

// MenuFilter narrows ListMenu. Zero values match everything.
type MenuFilter struct {
	Tag     string
	Popular bool
	New     bool
	Limited bool
}

type Recommendation struct {
	BodyType    string     `json:"body_type"`
	Primary     []MenuItem `json:"primary"`
	Secondary   []MenuItem `json:"secondary"`
	Explanation string     `json:"explanation"`
	Benefits    []string   `json:"benefits"`
}

type recommendation struct {
	bodyType    string
	primary     []string
	secondary   []string
	explanation string
	benefits    []string
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	ListBodyTypes(ctx context.Context) []diagnosis.BodyType
	GetBodyType(ctx context.Context, key string) (diagnosis.BodyType, error)

	ListBlends(ctx context.Context) []Blend
	GetBlend(ctx context.Context, key string) (Blend, error)
	BlendForBodyType(ctx context.Context, bodyType string) (Blend, error)

	ListMenu(ctx context.Context, f MenuFilter) []MenuItem
	GetMenuItem(ctx context.Context, id string) (MenuItem, error)
	Recommend(ctx context.Context, bodyType string) (Recommendation, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

// bodyTypeBlend names the blend for the body types whose blend key differs.
var bodyTypeBlend = map[string]string{
	diagnosis.Cold:     "warming",
	diagnosis.Stress:   "relaxing",
	diagnosis.Swelling: "detox",
}

type catalogService struct {
	blendsByKey map[string]Blend
	menuByID    map[string]MenuItem
	recsByType  map[string]recommendation
}

func New() Service {
	return &catalogService{
		blendsByKey: lo.KeyBy(blends, func(b Blend) string { return b.Key }),
		menuByID:    lo.KeyBy(menuItems, func(m MenuItem) string { return m.ID }),
		recsByType:  lo.KeyBy(recommendations, func(r recommendation) string { return r.bodyType }),
	}
}

func (s *catalogService) ListBodyTypes(_ context.Context) []diagnosis.BodyType {
	return diagnosis.BodyTypes()
}

func (s *catalogService) GetBodyType(_ context.Context, key string) (diagnosis.BodyType, error) {
	bt, ok := diagnosis.LookupBodyType(key)
	if !ok {
		return diagnosis.BodyType{}, ErrBodyTypeNotFound
	}
	return bt, nil
}

func (s *catalogService) ListBlends(_ context.Context) []Blend {
	return blends
}

func (s *catalogService) GetBlend(_ context.Context, key string) (Blend, error) {
	b, ok := s.blendsByKey[key]
	if !ok {
		return Blend{}, ErrBlendNotFound
	}
	return b, nil
}

func (s *catalogService) BlendForBodyType(ctx context.Context, bodyType string) (Blend, error) {
	if !diagnosis.IsCanonical(bodyType) {
		return Blend{}, ErrBodyTypeNotFound
	}
	key, ok := bodyTypeBlend[bodyType]
	if !ok {
		key = bodyType
	}
	return s.GetBlend(ctx, key)
}

func (s *catalogService) ListMenu(_ context.Context, f MenuFilter) []MenuItem {
	return lo.Filter(menuItems, func(m MenuItem, _ int) bool {
		switch {
		case f.Tag != "" && !lo.Contains(m.Tags, f.Tag):
			return false
		case f.Popular && !m.Popular:
			return false
		case f.New && !m.New:
			return false
		case f.Limited && !m.Limited:
			return false
		}
		return true
	})
}

func (s *catalogService) GetMenuItem(_ context.Context, id string) (MenuItem, error) {
	m, ok := s.menuByID[id]
	if !ok {
		return MenuItem{}, ErrMenuItemNotFound
	}
	return m, nil
}

// Recommend resolves the courses suggested for a body type. Referenced ids
// missing from the menu are skipped.
func (s *catalogService) Recommend(_ context.Context, bodyType string) (Recommendation, error) {
	r, ok := s.recsByType[bodyType]
	if !ok {
		return Recommendation{}, ErrBodyTypeNotFound
	}
	return Recommendation{
		BodyType:    r.bodyType,
		Primary:     s.resolve(r.primary),
		Secondary:   s.resolve(r.secondary),
		Explanation: r.explanation,
		Benefits:    r.benefits,
	}, nil
}

func (s *catalogService) resolve(ids []string) []MenuItem {
	return lo.FilterMap(ids, func(id string, _ int) (MenuItem, bool) {
		m, ok := s.menuByID[id]
		return m, ok
	})
}
