//go:build wireinject
// +build wireinject

// Wire依赖注入配置文件
//
// 教学说明:
// 1. Wire是Google开发的编译期依赖注入工具
// 2. 与运行时反射注入不同,Wire在编译期生成代码
// 3. 修改本文件后运行 `wire gen ./cmd/api` 重新生成wire_gen.go
//
// 核心概念:
// - Provider: 提供依赖的构造函数(如NewOrderRepository)
// - Injector: 声明最终要构造的目标类型(这里是*App)
// - wire.Bind: 把具体类型绑定到接口(如*mysql.TxManager → apporder.TxManager)

package main

import (
	"github.com/google/wire"

	appart "github.com/xiebiao/cafe/internal/application/art"
	appcart "github.com/xiebiao/cafe/internal/application/cart"
	"github.com/xiebiao/cafe/internal/application/catalog"
	appfranchise "github.com/xiebiao/cafe/internal/application/franchise"
	"github.com/xiebiao/cafe/internal/application/insights"
	appmenu "github.com/xiebiao/cafe/internal/application/menu"
	apporder "github.com/xiebiao/cafe/internal/application/order"
	"github.com/xiebiao/cafe/internal/application/recommend"
	appworkshop "github.com/xiebiao/cafe/internal/application/workshop"
	"github.com/xiebiao/cafe/internal/infrastructure/persistence/mysql"
	"github.com/xiebiao/cafe/internal/infrastructure/persistence/redis"
	"github.com/xiebiao/cafe/internal/interface/http/handler"
	"github.com/xiebiao/cafe/internal/interface/http/middleware"
	"github.com/xiebiao/cafe/internal/interface/http/router"
	"github.com/xiebiao/cafe/pkg/clock"
)

// infrastructureSet 配置、日志、追踪、MySQL、Redis、RabbitMQ
var infrastructureSet = wire.NewSet(
	provideConfig,
	provideLogger,
	provideTracer,
	mysql.NewDB,
	redis.NewClient,
	provideEventPublisher,
	clock.NewSystem,
)

// repositorySet 仓储和事务管理器
var repositorySet = wire.NewSet(
	mysql.NewOrderRepository,
	mysql.NewMenuRepository,
	mysql.NewCartRepository,
	mysql.NewWorkshopRepository,
	mysql.NewFranchiseRepository,
	mysql.NewCoffeeRepository,
	mysql.NewArtRepository,
	mysql.NewTxManager,
	wire.Bind(new(apporder.TxManager), new(*mysql.TxManager)),
	wire.Bind(new(appworkshop.TxManager), new(*mysql.TxManager)),
	wire.Bind(new(appart.TxManager), new(*mysql.TxManager)),
	provideMenuCache,
)

// domainSet 订单号和取餐码生成器
var domainSet = wire.NewSet(
	provideTokenGenerator,
	provideSequentialIDGenerator,
)

// applicationSet 应用层用例
var applicationSet = wire.NewSet(
	apporder.NewCreateOrderUseCase,
	apporder.NewGetOrderUseCase,
	apporder.NewListOrdersUseCase,
	apporder.NewManageOrderUseCase,
	appcart.NewCartUseCase,
	appmenu.NewMenuUseCase,
	appworkshop.NewWorkshopUseCase,
	appfranchise.NewEnquiryUseCase,
	catalog.NewCatalogUseCase,
	appart.NewBookingUseCase,
	insights.NewInsightsUseCase,
	recommend.NewRecommendUseCase,
)

// middlewareSet JWT与黑名单
// 同一个TokenBlacklist既是鉴权中间件的读端,也是吊销接口的写端
var middlewareSet = wire.NewSet(
	provideJWTManager,
	redis.NewTokenBlacklist,
	wire.Bind(new(middleware.Blacklist), new(*redis.TokenBlacklist)),
	wire.Bind(new(handler.TokenRevoker), new(*redis.TokenBlacklist)),
	middleware.NewAuthMiddleware,
)

// handlerSet HTTP处理器
var handlerSet = wire.NewSet(
	handler.NewMenuHandler,
	handler.NewCartHandler,
	handler.NewOrderHandler,
	handler.NewAdminOrderHandler,
	handler.NewWorkshopHandler,
	handler.NewFranchiseHandler,
	handler.NewRecommendHandler,
	handler.NewCatalogHandler,
	handler.NewArtBookingHandler,
	handler.NewTokenHandler,
	wire.Struct(new(router.Handlers), "*"),
)

// InitializeApp 初始化整个应用
// cleanup按依赖的逆序关闭RabbitMQ、追踪和日志
func InitializeApp() (*App, func(), error) {
	wire.Build(
		infrastructureSet,
		repositorySet,
		domainSet,
		applicationSet,
		middlewareSet,
		handlerSet,
		provideGinEngine,
		newApp,
	)
	return nil, nil, nil
}
