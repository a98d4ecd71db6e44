package coffee

import (
	"context"
)

// Repository 咖啡目录仓储接口,只读
type Repository interface {
	// List 招牌款在前,同组内按创建时间倒序
	List(ctx context.Context) ([]*Coffee, error)

	// ListSignature 招牌款,按热度倒序,最多limit个
	ListSignature(ctx context.Context, limit int) ([]*Coffee, error)

	// ListByTag 带某个标签的单品,最多limit个
	ListByTag(ctx context.Context, tag string, limit int) ([]*Coffee, error)

	// FindMatches 浓度等于strength或者带有tags中任一标签,最多limit个
	FindMatches(ctx context.Context, strength string, tags []string, limit int) ([]*Coffee, error)
}
