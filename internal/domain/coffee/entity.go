// Package coffee 咖啡单品目录(招牌款、浓度、风味标签)
package coffee

import (
	"time"
)

// 浓度
const (
	StrengthLight  = "light"
	StrengthMedium = "medium"
	StrengthStrong = "strong"
)

// Coffee 咖啡单品
// 和菜单菜品不同,这里描述的是风味,供目录展示和心情推荐匹配
type Coffee struct {
	ID          uint
	Name        string
	Description string
	Strength    string
	Tags        []string
	IsSignature bool
	Popularity  int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// HasTag 是否带有某个风味标签
func (c *Coffee) HasTag(tag string) bool {
	for _, t := range c.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Matches 浓度相同或者任一标签相同
func (c *Coffee) Matches(strength string, tags []string) bool {
	if strength != "" && c.Strength == strength {
		return true
	}
	for _, t := range tags {
		if c.HasTag(t) {
			return true
		}
	}
	return false
}
