// Package recommend 规则推荐加目录匹配
// 规则表给出浓度、标签或主题,再到咖啡/艺术品目录里找最多3个匹配的单品
package recommend

import (
	"context"

	"github.com/xiebiao/cafe/internal/application/catalog"
	"github.com/xiebiao/cafe/internal/domain/art"
	"github.com/xiebiao/cafe/internal/domain/coffee"
	"github.com/xiebiao/cafe/internal/domain/recommend"
)

// MaxMatches 每次推荐最多返回的单品数
const MaxMatches = 3

// CoffeeSuggestion 咖啡推荐响应
type CoffeeSuggestion struct {
	AIPick  recommend.CoffeePick `json:"aiPick"`
	Matches []*catalog.CoffeeDTO `json:"matches"`
}

// ArtSuggestion 艺术品推荐响应
type ArtSuggestion struct {
	AIPick  recommend.ArtPick `json:"aiPick"`
	Matches []*catalog.ArtDTO `json:"matches"`
}

// WorkshopSuggestion 工作坊推荐响应,不查目录
type WorkshopSuggestion struct {
	AIPick recommend.WorkshopPick `json:"aiPick"`
}

// RecommendUseCase 推荐
type RecommendUseCase struct {
	coffeeRepo coffee.Repository
	artRepo    art.Repository
}

// NewRecommendUseCase 创建推荐用例
func NewRecommendUseCase(coffeeRepo coffee.Repository, artRepo art.Repository) *RecommendUseCase {
	return &RecommendUseCase{coffeeRepo: coffeeRepo, artRepo: artRepo}
}

// SuggestCoffee 浓度相同或任一标签相同的咖啡
func (uc *RecommendUseCase) SuggestCoffee(ctx context.Context, mood, timeOfDay string, prefersMilk bool) (*CoffeeSuggestion, error) {
	pick := recommend.SuggestCoffee(mood, timeOfDay, prefersMilk)
	list, err := uc.coffeeRepo.FindMatches(ctx, pick.Strength, pick.Tags, MaxMatches)
	if err != nil {
		return nil, err
	}
	return &CoffeeSuggestion{AIPick: pick, Matches: catalog.ToCoffeeDTOs(truncate(list))}, nil
}

// SuggestArt 心情标签相同的作品;心情为空时不过滤
func (uc *RecommendUseCase) SuggestArt(ctx context.Context, mood string) (*ArtSuggestion, error) {
	pick := recommend.SuggestArt(mood)
	list, err := uc.artRepo.ListByMoodTag(ctx, mood, MaxMatches)
	if err != nil {
		return nil, err
	}
	return &ArtSuggestion{AIPick: pick, Matches: catalog.ToArtDTOs(truncate(list))}, nil
}

// SuggestWorkshop 只有规则推荐
func (uc *RecommendUseCase) SuggestWorkshop(vibe, timeOfDay string) *WorkshopSuggestion {
	return &WorkshopSuggestion{AIPick: recommend.SuggestWorkshop(vibe, timeOfDay)}
}

// truncate 仓储返回超过上限时截断
func truncate[T any](list []T) []T {
	if len(list) > MaxMatches {
		return list[:MaxMatches]
	}
	return list
}
