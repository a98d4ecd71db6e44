package mysql

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/xiebiao/cafe/internal/infrastructure/config"
)

// NewDB 创建数据库连接
// 设计说明：
// 1. 使用GORM v2作为ORM框架
// 2. 配置连接池参数（MaxOpenConns、MaxIdleConns、ConnMaxLifetime）
// 3. 开发环境开启SQL日志，生产环境关闭
// 4. database.auto_migrate为true时自动迁移表结构
func NewDB(cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
	logLevel := logger.Silent
	if cfg.Server.Mode == "debug" {
		logLevel = logger.Info
	}

	db, err := gorm.Open(mysql.Open(cfg.Database.DSN()), &gorm.Config{
		Logger:  logger.Default.LogMode(logLevel),
		NowFunc: time.Now,
	})
	if err != nil {
		return nil, fmt.Errorf("连接数据库失败: %w", err)
	}

	// 连接池
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("获取SQL DB失败: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("数据库连接测试失败: %w", err)
	}
	log.Info("database connected",
		zap.String("host", cfg.Database.Host),
		zap.String("db", cfg.Database.DBName),
	)

	// 注意：生产环境应使用版本化的迁移脚本，不要依赖AutoMigrate
	if cfg.Database.AutoMigrate {
		if err := AutoMigrate(db); err != nil {
			return nil, fmt.Errorf("数据库迁移失败: %w", err)
		}
		log.Info("database migrated")
	}

	return db, nil
}

// AutoMigrate 自动迁移表结构
// AutoMigrate只会创建表、添加字段和索引，不会删除或修改现有字段
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&MenuItemModel{},
		&MenuPriceModel{},
		&CartModel{},
		&CartItemModel{},
		&OrderModel{},
		&OrderItemModel{},
		&WorkshopModel{},
		&WorkshopRegistrationModel{},
		&FranchiseEnquiryModel{},
		&CoffeeModel{},
		&ArtModel{},
		&ArtBookingModel{},
	)
}

// OrderModel GORM订单模型
// 教学要点:
// 1. order_id和order_token各有唯一索引,并发下单拿到相同序号/取餐码时由数据库拒绝
// 2. created_at索引服务于"当天订单数"统计和管理端倒序列表
type OrderModel struct {
	ID            uint             `gorm:"primaryKey"`
	OrderID       string           `gorm:"uniqueIndex;size:32;not null;comment:订单号"`
	OrderToken    string           `gorm:"uniqueIndex;size:16;not null;comment:取餐码"`
	UserID        uint             `gorm:"index;not null;comment:顾客用户ID"`
	TotalAmount   int64            `gorm:"not null;comment:订单总金额(分)"`
	PaymentMethod string           `gorm:"size:20;not null;comment:支付方式"`
	PaymentStatus string           `gorm:"size:20;not null;comment:支付状态"`
	PickupTime    time.Time        `gorm:"not null;comment:取餐时间"`
	Status        string           `gorm:"index;size:16;not null;comment:订单状态"`
	Items         []OrderItemModel `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt     time.Time        `gorm:"index;comment:创建时间"`
	UpdatedAt     time.Time        `gorm:"comment:更新时间"`
}

func (OrderModel) TableName() string { return "orders" }

// OrderItemModel GORM订单明细模型,记录下单时的名称和价格快照
type OrderItemModel struct {
	ID         uint   `gorm:"primaryKey"`
	OrderID    uint   `gorm:"index;not null;comment:订单主键"`
	MenuItemID string `gorm:"size:64;not null;comment:菜品ID"`
	Name       string `gorm:"size:100;not null;comment:下单时菜品名"`
	Price      int64  `gorm:"not null;comment:下单时单价(分)"`
	Quantity   int    `gorm:"not null;comment:数量"`
}

func (OrderItemModel) TableName() string { return "order_items" }

// MenuItemModel GORM菜品模型
// 主键是业务编码(如itm_robusta_iced_americano)
type MenuItemModel struct {
	ID           string           `gorm:"primaryKey;size:64"`
	Name         string           `gorm:"size:100;not null;comment:菜品名"`
	Category     string           `gorm:"size:50;comment:分类"`
	ImageURL     string           `gorm:"size:500;comment:图片URL"`
	GroupID      string           `gorm:"index:idx_menu_list;size:64;comment:分组"`
	DisplayOrder int              `gorm:"index:idx_menu_list;default:0;comment:展示顺序"`
	IsActive     bool             `gorm:"index;default:true;comment:是否上架"`
	Prices       []MenuPriceModel `gorm:"foreignKey:MenuItemID"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (MenuItemModel) TableName() string { return "menu_items" }

// MenuPriceModel 规格价格,Position决定顺序(第一个规格是下单价)
type MenuPriceModel struct {
	ID              uint   `gorm:"primaryKey"`
	MenuItemID      string `gorm:"index;size:64;not null"`
	Position        int    `gorm:"not null;default:0"`
	Size            string `gorm:"size:20"`
	Price           int64  `gorm:"not null;comment:价格(分)"`
	DiscountPercent int    `gorm:"default:0"`
	InStock         bool   `gorm:"default:true"`
}

func (MenuPriceModel) TableName() string { return "menu_prices" }

// CartModel 购物车,每个用户一行
type CartModel struct {
	ID        uint            `gorm:"primaryKey"`
	UserID    uint            `gorm:"uniqueIndex;not null"`
	Items     []CartItemModel `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (CartModel) TableName() string { return "carts" }

// CartItemModel 购物车条目,只保存菜品ID引用
type CartItemModel struct {
	ID         uint   `gorm:"primaryKey"`
	CartID     uint   `gorm:"index;not null"`
	Position   int    `gorm:"not null;default:0"`
	MenuItemID string `gorm:"size:64;not null"`
	Quantity   int    `gorm:"not null"`
}

func (CartItemModel) TableName() string { return "cart_items" }

// WorkshopModel 工作坊
// Tags用逗号拼接存储
type WorkshopModel struct {
	ID              uint      `gorm:"primaryKey"`
	Title           string    `gorm:"size:200;not null"`
	Description     string    `gorm:"type:text"`
	Date            time.Time `gorm:"index;not null"`
	TotalSeats      int       `gorm:"not null"`
	RegisteredCount int       `gorm:"not null;default:0"`
	Tags            string    `gorm:"size:255"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (WorkshopModel) TableName() string { return "workshops" }

// WorkshopRegistrationModel 工作坊报名记录
type WorkshopRegistrationModel struct {
	ID            uint      `gorm:"primaryKey"`
	WorkshopID    uint      `gorm:"index;not null"`
	WorkshopTitle string    `gorm:"size:200"`
	Name          string    `gorm:"size:100;not null"`
	Phone         string    `gorm:"size:30;not null"`
	Email         string    `gorm:"size:100"`
	Status        string    `gorm:"size:16;not null"`
	CreatedAt     time.Time `gorm:"index"`
}

func (WorkshopRegistrationModel) TableName() string { return "workshop_registrations" }

// FranchiseEnquiryModel 加盟咨询
type FranchiseEnquiryModel struct {
	ID              uint      `gorm:"primaryKey"`
	FullName        string    `gorm:"size:100;not null"`
	Phone           string    `gorm:"size:30;not null"`
	Email           string    `gorm:"size:100"`
	City            string    `gorm:"size:100;not null"`
	InvestmentRange string    `gorm:"size:50"`
	Message         string    `gorm:"type:text"`
	Status          string    `gorm:"index;size:16;not null"`
	CreatedAt       time.Time `gorm:"index"`
	UpdatedAt       time.Time
}

func (FranchiseEnquiryModel) TableName() string { return "franchise_enquiries" }

// CoffeeModel 咖啡单品
// idx_coffee_list服务于"招牌在前、新品在前"的目录排序
type CoffeeModel struct {
	ID          uint      `gorm:"primaryKey"`
	Name        string    `gorm:"size:100;not null"`
	Description string    `gorm:"type:text"`
	Strength    string    `gorm:"index;size:16;not null;comment:浓度"`
	Tags        string    `gorm:"size:255;comment:风味标签(逗号分隔)"`
	IsSignature bool      `gorm:"index:idx_coffee_list,priority:1;default:false"`
	Popularity  int       `gorm:"not null;default:0;comment:热度"`
	CreatedAt   time.Time `gorm:"index:idx_coffee_list,priority:2"`
	UpdatedAt   time.Time
}

func (CoffeeModel) TableName() string { return "coffees" }

// ArtModel 艺术品
type ArtModel struct {
	ID           uint      `gorm:"primaryKey"`
	Title        string    `gorm:"size:200;not null"`
	ArtistName   string    `gorm:"size:100;not null"`
	Description  string    `gorm:"type:text"`
	Price        int64     `gorm:"not null;comment:价格(分)"`
	ImageURL     string    `gorm:"size:500"`
	Availability string    `gorm:"index;size:16;not null;default:available"`
	MoodTags     string    `gorm:"size:255;comment:心情标签(逗号分隔)"`
	CreatedAt    time.Time `gorm:"index"`
	UpdatedAt    time.Time
}

func (ArtModel) TableName() string { return "art_pieces" }

// ArtBookingModel 艺术品预订申请
type ArtBookingModel struct {
	ID        uint      `gorm:"primaryKey"`
	ArtID     uint      `gorm:"index:idx_booking_art_status,priority:1;not null"`
	ArtName   string    `gorm:"size:200"`
	UserName  string    `gorm:"size:100;not null"`
	Phone     string    `gorm:"size:30;not null"`
	Email     string    `gorm:"size:100"`
	Message   string    `gorm:"type:text"`
	Status    string    `gorm:"index:idx_booking_art_status,priority:2;size:16;not null"`
	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time
}

func (ArtBookingModel) TableName() string { return "art_bookings" }
