// Package router 注册全部HTTP路由
package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/xiebiao/cafe/docs" // swag init生成的接口文档
	"github.com/xiebiao/cafe/internal/interface/http/handler"
	"github.com/xiebiao/cafe/internal/interface/http/middleware"
	"github.com/xiebiao/cafe/pkg/response"
)

// Handlers 全部HTTP处理器,由wire按字段注入
type Handlers struct {
	Menu       *handler.MenuHandler
	Cart       *handler.CartHandler
	Order      *handler.OrderHandler
	AdminOrder *handler.AdminOrderHandler
	Workshop   *handler.WorkshopHandler
	Franchise  *handler.FranchiseHandler
	Recommend  *handler.RecommendHandler
	Catalog    *handler.CatalogHandler
	ArtBooking *handler.ArtBookingHandler
	Token      *handler.TokenHandler
}

// Options 路由选项
type Options struct {
	Mode          string // debug | release | test
	EnableSwagger bool
}

// New 创建Gin引擎并注册路由
// 中间件顺序:Recovery → RequestLogger → Metrics → (Auth) → Handler
func New(opts Options, logger *zap.Logger, h Handlers, auth *middleware.AuthMiddleware) *gin.Engine {
	if opts.Mode != "" {
		gin.SetMode(opts.Mode)
	}

	r := gin.New()
	r.Use(middleware.Recovery(logger), middleware.RequestLogger(logger), middleware.Metrics())

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	if opts.EnableSwagger {
		// 访问 http://localhost:8080/swagger/index.html 查看API文档
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	v1 := r.Group("/api/v1")
	v1.GET("/ping", func(c *gin.Context) {
		response.Success(c, gin.H{"message": "pong", "status": "healthy"})
	})

	// 公开接口
	menu := v1.Group("/menu")
	{
		menu.GET("", h.Menu.ListMenu)
		menu.GET("/items/:id", h.Menu.GetItem)
	}
	v1.GET("/coffees", h.Catalog.ListCoffees)
	v1.GET("/art", h.Catalog.ListArt)
	v1.POST("/art/book", h.ArtBooking.CreateBooking)
	v1.GET("/insights/popular", h.Catalog.Popular)
	v1.GET("/workshops", h.Workshop.ListWorkshops)
	v1.POST("/workshops/register", h.Workshop.Register)
	v1.POST("/franchise/enquiries", h.Franchise.SubmitEnquiry)

	ai := v1.Group("/ai")
	{
		ai.POST("/coffee", h.Recommend.SuggestCoffee)
		ai.POST("/art", h.Recommend.SuggestArt)
		ai.POST("/workshop", h.Recommend.SuggestWorkshop)
	}

	// 顾客接口(需要登录)
	cart := v1.Group("/cart", auth.RequireAuth())
	{
		cart.GET("", h.Cart.GetCart)
		cart.POST("/add", h.Cart.AddToCart)
		cart.PATCH("/update", h.Cart.UpdateCart)
		cart.DELETE("/remove/:itemId", h.Cart.RemoveItem)
		cart.DELETE("/clear", h.Cart.ClearCart)
	}

	orders := v1.Group("/orders", auth.RequireAuth())
	{
		orders.POST("", h.Order.CreateOrder)
		orders.GET("/:id", h.Order.GetOrder)
	}

	// 店员接口(需要管理员)
	admin := v1.Group("/admin", auth.RequireAuth(), auth.RequireAdmin())
	{
		admin.GET("/orders", h.AdminOrder.ListOrders)
		admin.PUT("/orders/:id/complete", h.AdminOrder.CompleteOrder)
		admin.PUT("/orders/:id/mark-paid", h.AdminOrder.MarkPaid)
		admin.PUT("/orders/:id/verify-complete", h.AdminOrder.VerifyAndComplete)
		admin.DELETE("/orders/:id", h.AdminOrder.DeleteOrder)

		admin.GET("/workshops/registrations", h.Workshop.ListRegistrations)

		admin.GET("/franchise/enquiries", h.Franchise.ListEnquiries)
		admin.PATCH("/franchise/enquiries/:id/status", h.Franchise.UpdateStatus)

		admin.GET("/art/bookings", h.ArtBooking.ListBookings)
		admin.PATCH("/art/bookings/:id/accept", h.ArtBooking.AcceptBooking)
		admin.PATCH("/art/bookings/:id/reject", h.ArtBooking.RejectBooking)

		admin.POST("/tokens/revoke", h.Token.RevokeToken)
	}

	return r
}
