package dto

// CoffeeSuggestionRequest 咖啡推荐
type CoffeeSuggestionRequest struct {
	Mood        string `json:"mood" binding:"max=32" example:"bold"`
	TimeOfDay   string `json:"timeOfDay" binding:"max=32" example:"morning"`
	PrefersMilk bool   `json:"prefersMilk" example:"false"`
}

// ArtSuggestionRequest 艺术主题推荐
type ArtSuggestionRequest struct {
	Mood string `json:"mood" binding:"max=32" example:"cozy"`
}

// WorkshopSuggestionRequest 工作坊推荐
type WorkshopSuggestionRequest struct {
	Vibe      string `json:"vibe" binding:"max=32" example:"focused"`
	TimeOfDay string `json:"timeOfDay" binding:"max=32" example:"evening"`
}
