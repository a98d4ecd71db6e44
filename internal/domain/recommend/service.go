// Package recommend 基于心情和时段的规则推荐(咖啡、艺术主题、工作坊)
package recommend

import "fmt"

type profile struct {
	strength string
	tags     []string
}

var moodProfiles = map[string]profile{
	"calm":      {strength: "medium", tags: []string{"smooth", "balanced", "latte"}},
	"cozy":      {strength: "medium", tags: []string{"chocolate", "caramel", "comfort"}},
	"bold":      {strength: "strong", tags: []string{"robusta", "intense", "espresso"}},
	"focused":   {strength: "strong", tags: []string{"pure", "manual", "clean"}},
	"energetic": {strength: "strong", tags: []string{"iced", "bright", "cold"}},
	"mellow":    {strength: "light", tags: []string{"milk", "soft", "low"}},
}

var timeOfDayTags = map[string][]string{
	"morning":   {"bright", "clean"},
	"afternoon": {"balanced", "smooth"},
	"evening":   {"comfort", "chocolate"},
	"night":     {"milk", "soft"},
}

// CoffeePick 咖啡推荐结果
type CoffeePick struct {
	Strength  string   `json:"strength"`
	Tags      []string `json:"tags"`
	Reasoning string   `json:"reasoning"`
}

// ArtPick 艺术主题推荐结果
type ArtPick struct {
	Theme string `json:"theme"`
}

// WorkshopPick 工作坊推荐结果
type WorkshopPick struct {
	Recommendation string `json:"recommendation"`
}

// SuggestCoffee 按心情选浓度和风味标签,叠加时段标签和奶/黑咖啡偏好
// 未知心情按calm处理,文案保留原始心情
func SuggestCoffee(mood, timeOfDay string, prefersMilk bool) CoffeePick {
	if mood == "" {
		mood = "calm"
	}
	if timeOfDay == "" {
		timeOfDay = "morning"
	}

	p, ok := moodProfiles[mood]
	if !ok {
		p = moodProfiles["calm"]
	}

	tags := make([]string, 0, len(p.tags)+3)
	tags = append(tags, p.tags...)
	tags = append(tags, timeOfDayTags[timeOfDay]...)
	if prefersMilk {
		tags = append(tags, "milk")
	} else {
		tags = append(tags, "black")
	}

	return CoffeePick{
		Strength:  p.strength,
		Tags:      tags,
		Reasoning: fmt.Sprintf("You’re feeling %s. A %s coffee suits this %s moment best.", mood, p.strength, timeOfDay),
	}
}

// SuggestArt 心情 → 艺术主题
func SuggestArt(mood string) ArtPick {
	switch mood {
	case "bold":
		return ArtPick{Theme: "high contrast modern"}
	case "cozy":
		return ArtPick{Theme: "warm textured"}
	default:
		return ArtPick{Theme: "earthy minimal"}
	}
}

// SuggestWorkshop vibe优先,其次看时段
func SuggestWorkshop(vibe, timeOfDay string) WorkshopPick {
	if vibe == "" {
		vibe = "creative"
	}
	if timeOfDay == "" {
		timeOfDay = "afternoon"
	}

	switch {
	case vibe == "focused":
		return WorkshopPick{Recommendation: "Precision Brew Lab"}
	case timeOfDay == "evening":
		return WorkshopPick{Recommendation: "Coffee Tasting Stories"}
	default:
		return WorkshopPick{Recommendation: "Latte Art Experience"}
	}
}
