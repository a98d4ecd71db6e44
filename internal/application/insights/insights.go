// Package insights 首页热门榜
package insights

import (
	"context"

	"github.com/xiebiao/cafe/internal/application/catalog"
	appworkshop "github.com/xiebiao/cafe/internal/application/workshop"
	"github.com/xiebiao/cafe/internal/domain/art"
	"github.com/xiebiao/cafe/internal/domain/coffee"
	"github.com/xiebiao/cafe/internal/domain/workshop"
)

// TopN 每个榜单的条数
const TopN = 3

// BoldTag 浓烈风味榜用的标签
const BoldTag = "bold"

// PopularDTO 热门榜
type PopularDTO struct {
	PopularSignature []*catalog.CoffeeDTO       `json:"popularSignature"`
	BoldFavorites    []*catalog.CoffeeDTO       `json:"boldFavorites"`
	PremiumArt       []*catalog.ArtDTO          `json:"premiumArt"`
	FillingWorkshops []*appworkshop.WorkshopDTO `json:"fillingWorkshops"`
}

// InsightsUseCase 热门榜
type InsightsUseCase struct {
	coffeeRepo   coffee.Repository
	artRepo      art.Repository
	workshopRepo workshop.Repository
}

// NewInsightsUseCase 创建热门榜用例
func NewInsightsUseCase(coffeeRepo coffee.Repository, artRepo art.Repository, workshopRepo workshop.Repository) *InsightsUseCase {
	return &InsightsUseCase{coffeeRepo: coffeeRepo, artRepo: artRepo, workshopRepo: workshopRepo}
}

// Popular 四个榜单各取前3:
//  1. 招牌咖啡按热度
//  2. 带bold标签的咖啡
//  3. 未售出的艺术品按价格
//  4. 报名人数最多的工作坊
//
// 任一查询失败整体返回错误
func (uc *InsightsUseCase) Popular(ctx context.Context) (*PopularDTO, error) {
	signature, err := uc.coffeeRepo.ListSignature(ctx, TopN)
	if err != nil {
		return nil, err
	}
	bold, err := uc.coffeeRepo.ListByTag(ctx, BoldTag, TopN)
	if err != nil {
		return nil, err
	}
	pieces, err := uc.artRepo.ListUnsoldByPrice(ctx, TopN)
	if err != nil {
		return nil, err
	}
	workshops, err := uc.workshopRepo.ListMostRegistered(ctx, TopN)
	if err != nil {
		return nil, err
	}

	return &PopularDTO{
		PopularSignature: catalog.ToCoffeeDTOs(signature),
		BoldFavorites:    catalog.ToCoffeeDTOs(bold),
		PremiumArt:       catalog.ToArtDTOs(pieces),
		FillingWorkshops: appworkshop.ToWorkshopDTOs(workshops),
	}, nil
}
