// Package catalog 咖啡和艺术品目录(只读)
// DTO和转换函数也供推荐、热门榜复用
package catalog

import (
	"context"
	"time"

	"github.com/xiebiao/cafe/internal/domain/art"
	"github.com/xiebiao/cafe/internal/domain/coffee"
)

// CoffeeDTO 咖啡单品响应
type CoffeeDTO struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Strength    string    `json:"strength"`
	Tags        []string  `json:"tags"`
	IsSignature bool      `json:"isSignature"`
	Popularity  int       `json:"popularity"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ArtDTO 艺术品响应
type ArtDTO struct {
	ID           uint      `json:"id"`
	Title        string    `json:"title"`
	ArtistName   string    `json:"artistName"`
	Description  string    `json:"description"`
	Price        int64     `json:"price"`
	ImageURL     string    `json:"imageUrl"`
	Availability string    `json:"availability"`
	MoodTags     []string  `json:"moodTags"`
	CreatedAt    time.Time `json:"createdAt"`
}

// CatalogUseCase 咖啡和艺术品目录
type CatalogUseCase struct {
	coffeeRepo coffee.Repository
	artRepo    art.Repository
}

// NewCatalogUseCase 创建目录用例
func NewCatalogUseCase(coffeeRepo coffee.Repository, artRepo art.Repository) *CatalogUseCase {
	return &CatalogUseCase{coffeeRepo: coffeeRepo, artRepo: artRepo}
}

// ListCoffees 招牌在前,新品在前
func (uc *CatalogUseCase) ListCoffees(ctx context.Context) ([]*CoffeeDTO, error) {
	list, err := uc.coffeeRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return ToCoffeeDTOs(list), nil
}

// ListArt 可预订的在前,已售出的在最后
func (uc *CatalogUseCase) ListArt(ctx context.Context) ([]*ArtDTO, error) {
	list, err := uc.artRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return ToArtDTOs(list), nil
}

// ToCoffeeDTOs 实体 → 响应,nil返回空列表
func ToCoffeeDTOs(list []*coffee.Coffee) []*CoffeeDTO {
	out := make([]*CoffeeDTO, len(list))
	for i, c := range list {
		out[i] = &CoffeeDTO{
			ID:          c.ID,
			Name:        c.Name,
			Description: c.Description,
			Strength:    c.Strength,
			Tags:        c.Tags,
			IsSignature: c.IsSignature,
			Popularity:  c.Popularity,
			CreatedAt:   c.CreatedAt,
		}
	}
	return out
}

// ToArtDTOs 实体 → 响应,nil返回空列表
func ToArtDTOs(list []*art.Art) []*ArtDTO {
	out := make([]*ArtDTO, len(list))
	for i, a := range list {
		out[i] = ToArtDTO(a)
	}
	return out
}

// ToArtDTO 单个艺术品
func ToArtDTO(a *art.Art) *ArtDTO {
	return &ArtDTO{
		ID:           a.ID,
		Title:        a.Title,
		ArtistName:   a.ArtistName,
		Description:  a.Description,
		Price:        a.Price,
		ImageURL:     a.ImageURL,
		Availability: string(a.Availability),
		MoodTags:     a.MoodTags,
		CreatedAt:    a.CreatedAt,
	}
}
