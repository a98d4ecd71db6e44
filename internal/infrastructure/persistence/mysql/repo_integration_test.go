package mysql

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/xiebiao/cafe/internal/domain/art"
	"github.com/xiebiao/cafe/internal/domain/cart"
	"github.com/xiebiao/cafe/internal/domain/coffee"
	"github.com/xiebiao/cafe/internal/domain/franchise"
	"github.com/xiebiao/cafe/internal/domain/menu"
	"github.com/xiebiao/cafe/internal/domain/order"
	"github.com/xiebiao/cafe/internal/domain/workshop"
)

// 需要一个可随意清空的MySQL库:
// CAFE_TEST_MYSQL_DSN="root:password@tcp(localhost:3306)/cafe_test?charset=utf8mb4&parseTime=True&loc=UTC" go test ./...
func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := os.Getenv("CAFE_TEST_MYSQL_DSN")
	if dsn == "" {
		t.Skip("未设置CAFE_TEST_MYSQL_DSN,跳过MySQL集成测试")
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, AutoMigrate(db))

	for _, table := range []string{"order_items", "orders", "cart_items", "carts", "menu_prices", "menu_items",
		"workshop_registrations", "workshops", "franchise_enquiries", "coffees", "art_bookings", "art_pieces"} {
		require.NoError(t, db.Exec("DELETE FROM "+table).Error)
	}
	return db
}

func newTestOrder(orderID, token string, createdAt time.Time) *order.Order {
	o := order.NewOrder(42,
		[]order.OrderItem{{MenuItemID: "itm_latte", Name: "Latte", Price: 2500, Quantity: 2}},
		order.PaymentPayAtCounter, createdAt.Add(time.Hour), token, createdAt)
	o.OrderID = orderID
	return o
}

func TestOrderRepository_Integration(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	repo := NewOrderRepository(db)
	txm := NewTxManager(db)

	day := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	t.Run("创建并按ID查询", func(t *testing.T) {
		o := newTestOrder("ORD-20240115-001", "ESP-1001", day.Add(9*time.Hour))
		require.NoError(t, repo.Create(ctx, o))
		require.NotZero(t, o.ID)

		got, err := repo.FindByID(ctx, o.ID)
		require.NoError(t, err)
		assert.Equal(t, "ESP-1001", got.OrderToken)
		assert.Len(t, got.Items, 1)
	})

	t.Run("取餐码重复返回冲突", func(t *testing.T) {
		o := newTestOrder("ORD-20240115-002", "ESP-1001", day.Add(10*time.Hour))
		err := repo.Create(ctx, o)
		assert.ErrorIs(t, err, order.ErrOrderConflict)
	})

	t.Run("取餐码存在性", func(t *testing.T) {
		exists, err := repo.ExistsByToken(ctx, "ESP-1001")
		require.NoError(t, err)
		assert.True(t, exists)

		exists, err = repo.ExistsByToken(ctx, "MOC-9999")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("当天订单数统计是左闭右开区间", func(t *testing.T) {
		require.NoError(t, repo.Create(ctx, newTestOrder("ORD-20240116-001", "LAT-2000", day.Add(24*time.Hour))))

		n, err := repo.CountCreatedBetween(ctx, day, day.Add(24*time.Hour))
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)
	})

	t.Run("事务内锁定并完成", func(t *testing.T) {
		orders, err := repo.List(ctx, order.ListFilter{Status: order.StatusPending})
		require.NoError(t, err)
		require.NotEmpty(t, orders)
		id := orders[0].ID

		err = txm.Transaction(ctx, func(ctx context.Context) error {
			o, err := repo.LockByID(ctx, id)
			if err != nil {
				return err
			}
			if err := o.Complete(time.Now()); err != nil {
				return err
			}
			return repo.Update(ctx, o)
		})
		require.NoError(t, err)

		got, err := repo.FindByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, order.StatusCompleted, got.Status)
	})

	t.Run("嵌套事务失败只回滚内层", func(t *testing.T) {
		innerErr := errors.New("inner failed")
		err := txm.Transaction(ctx, func(ctx context.Context) error {
			if err := repo.Create(ctx, newTestOrder("ORD-20240115-010", "BRU-3000", day.Add(11*time.Hour))); err != nil {
				return err
			}
			nestedErr := txm.Transaction(ctx, func(ctx context.Context) error {
				if err := repo.Create(ctx, newTestOrder("ORD-20240115-011", "BRU-3001", day.Add(11*time.Hour))); err != nil {
					return err
				}
				return innerErr
			})
			assert.ErrorIs(t, nestedErr, innerErr)
			return nil
		})
		require.NoError(t, err)

		exists, err := repo.ExistsByToken(ctx, "BRU-3000")
		require.NoError(t, err)
		assert.True(t, exists)
		exists, err = repo.ExistsByToken(ctx, "BRU-3001")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("删除", func(t *testing.T) {
		orders, err := repo.List(ctx, order.ListFilter{})
		require.NoError(t, err)
		require.NoError(t, repo.Delete(ctx, orders[0].ID))
		assert.ErrorIs(t, repo.Delete(ctx, orders[0].ID), order.ErrOrderNotFound)
		_, err = repo.FindByID(ctx, orders[0].ID)
		assert.ErrorIs(t, err, order.ErrOrderNotFound)
	})
}

func TestMenuAndCartRepository_Integration(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	latte := &menu.Item{ID: "itm_latte", Name: "Latte", DisplayOrder: 2, IsActive: true,
		Prices: []menu.Price{{Size: "Regular", Price: 2500, InStock: true}, {Size: "Large", Price: 3000, InStock: true}}}
	mocha := &menu.Item{ID: "itm_mocha", Name: "Mocha", DisplayOrder: 1, IsActive: true,
		Prices: []menu.Price{{Size: "Regular", Price: 2800, InStock: true}}}
	require.NoError(t, db.Create(toMenuModel(latte)).Error)
	require.NoError(t, db.Create(toMenuModel(mocha)).Error)

	menuRepo := NewMenuRepository(db)
	cartRepo := NewCartRepository(db)

	t.Run("上架菜品按展示顺序", func(t *testing.T) {
		items, err := menuRepo.ListActive(ctx, "")
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, "itm_mocha", items[0].ID)
		assert.Equal(t, int64(2500), items[1].BasePrice())
	})

	t.Run("批量查询忽略不存在的ID", func(t *testing.T) {
		found, err := menuRepo.FindByIDs(ctx, []string{"itm_latte", "itm_gone", "itm_latte"})
		require.NoError(t, err)
		assert.Len(t, found, 1)
		assert.Contains(t, found, "itm_latte")
	})

	t.Run("菜品不存在", func(t *testing.T) {
		_, err := menuRepo.FindByID(ctx, "itm_gone")
		assert.ErrorIs(t, err, menu.ErrItemNotFound)
	})

	t.Run("购物车保存与清空", func(t *testing.T) {
		_, err := cartRepo.FindByUserID(ctx, 42)
		assert.ErrorIs(t, err, cart.ErrCartNotFound)
		assert.NoError(t, cartRepo.ClearByUserID(ctx, 42))

		c := cart.New(42)
		require.NoError(t, c.Add("itm_latte", 2))
		require.NoError(t, c.Add("itm_mocha", 1))
		c.UpdatedAt = time.Now()
		require.NoError(t, cartRepo.Save(ctx, c))

		require.NoError(t, c.Update("itm_latte", 0))
		require.NoError(t, cartRepo.Save(ctx, c))

		got, err := cartRepo.FindByUserID(ctx, 42)
		require.NoError(t, err)
		assert.Equal(t, []cart.Item{{MenuItemID: "itm_mocha", Quantity: 1}}, got.Items)

		require.NoError(t, cartRepo.ClearByUserID(ctx, 42))
		got, err = cartRepo.FindByUserID(ctx, 42)
		require.NoError(t, err)
		assert.Empty(t, got.Items)
	})
}

func TestWorkshopAndFranchiseRepository_Integration(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	w := &workshop.Workshop{Title: "Latte Art Experience", Date: now.Add(48 * time.Hour), TotalSeats: 1, Tags: []string{"latte-art"}}
	require.NoError(t, db.Create(toWorkshopModel(w)).Error)

	wsRepo := NewWorkshopRepository(db)
	txm := NewTxManager(db)

	t.Run("报名占用名额", func(t *testing.T) {
		list, err := wsRepo.List(ctx)
		require.NoError(t, err)
		require.Len(t, list, 1)
		id := list[0].ID

		err = txm.Transaction(ctx, func(ctx context.Context) error {
			locked, err := wsRepo.LockByID(ctx, id)
			if err != nil {
				return err
			}
			if err := locked.Reserve(now); err != nil {
				return err
			}
			if err := wsRepo.UpdateRegisteredCount(ctx, locked); err != nil {
				return err
			}
			return wsRepo.CreateRegistration(ctx, workshop.NewRegistration(locked, "Asha", "9000000000", "", now))
		})
		require.NoError(t, err)

		regs, err := wsRepo.ListRegistrations(ctx)
		require.NoError(t, err)
		require.Len(t, regs, 1)
		assert.Equal(t, "Latte Art Experience", regs[0].WorkshopTitle)

		_, err = wsRepo.LockByID(ctx, id+1000)
		assert.ErrorIs(t, err, workshop.ErrWorkshopNotFound)
	})

	t.Run("加盟咨询状态更新", func(t *testing.T) {
		repo := NewFranchiseRepository(db)
		e, err := franchise.NewEnquiry("Ravi Kumar", "9876543210", "", "Pune", "20-30L", "", now)
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, e))

		updated, err := repo.UpdateStatus(ctx, e.ID, franchise.StatusContacted)
		require.NoError(t, err)
		assert.Equal(t, franchise.StatusContacted, updated.Status)

		_, err = repo.UpdateStatus(ctx, e.ID+1000, franchise.StatusContacted)
		assert.ErrorIs(t, err, franchise.ErrEnquiryNotFound)

		list, total, err := repo.List(ctx, 0, 10)
		require.NoError(t, err)
		assert.Len(t, list, 1)
		assert.Equal(t, int64(1), total)
	})
}

func TestCatalogRepository_Integration(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	for _, c := range []*coffee.Coffee{
		{Name: "Filter Kaapi", Strength: coffee.StrengthStrong, Tags: []string{"bold"}, IsSignature: true, Popularity: 90, CreatedAt: now},
		{Name: "Vanilla Cloud", Strength: coffee.StrengthLight, Tags: []string{"milk", "soft"}, CreatedAt: now.Add(time.Minute)},
		{Name: "Monsoon Malabar", Strength: coffee.StrengthMedium, Tags: []string{"earthy"}, IsSignature: true, Popularity: 70, CreatedAt: now},
	} {
		require.NoError(t, db.Create(toCoffeeModel(c)).Error)
	}
	coffeeRepo := NewCoffeeRepository(db)

	t.Run("招牌在前", func(t *testing.T) {
		list, err := coffeeRepo.List(ctx)
		require.NoError(t, err)
		require.Len(t, list, 3)
		assert.True(t, list[0].IsSignature)
		assert.True(t, list[1].IsSignature)
		assert.Equal(t, "Vanilla Cloud", list[2].Name)
	})

	t.Run("按浓度或标签匹配", func(t *testing.T) {
		list, err := coffeeRepo.FindMatches(ctx, coffee.StrengthStrong, []string{"milk", "milk"}, 3)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, "Filter Kaapi", list[0].Name)
		assert.Equal(t, "Vanilla Cloud", list[1].Name)

		list, err = coffeeRepo.FindMatches(ctx, coffee.StrengthStrong, nil, 1)
		require.NoError(t, err)
		assert.Len(t, list, 1)
	})

	artRepo := NewArtRepository(db)
	txm := NewTxManager(db)
	sold := &art.Art{Title: "Copper Dusk", Price: 900000, Availability: art.Sold, MoodTags: []string{"bold"}, CreatedAt: now}
	onShow := &art.Art{Title: "Monsoon Blue", Price: 1500000, Availability: art.Available, MoodTags: []string{"calm", "cozy"}, CreatedAt: now}
	require.NoError(t, db.Create(toArtModel(sold)).Error)
	artModel := toArtModel(onShow)
	require.NoError(t, db.Create(artModel).Error)

	t.Run("可预订的在前,按心情过滤", func(t *testing.T) {
		list, err := artRepo.List(ctx)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, art.Available, list[0].Availability)

		list, err = artRepo.ListByMoodTag(ctx, "cozy", 3)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, "Monsoon Blue", list[0].Title)

		list, err = artRepo.ListUnsoldByPrice(ctx, 3)
		require.NoError(t, err)
		assert.Len(t, list, 1)
	})

	t.Run("事务内接受预订", func(t *testing.T) {
		a, err := artRepo.FindByID(ctx, artModel.ID)
		require.NoError(t, err)
		b, err := art.NewBooking(a, "Meera", "9000000000", "", "", now)
		require.NoError(t, err)
		require.NoError(t, artRepo.CreateBooking(ctx, b))

		err = txm.Transaction(ctx, func(ctx context.Context) error {
			locked, err := artRepo.LockBookingByID(ctx, b.ID)
			if err != nil {
				return err
			}
			piece, err := artRepo.LockByID(ctx, locked.ArtID)
			if err != nil {
				return err
			}
			if err := piece.Reserve(now); err != nil {
				return err
			}
			locked.Accept(now)
			if err := artRepo.UpdateBookingStatus(ctx, locked); err != nil {
				return err
			}
			return artRepo.UpdateAvailability(ctx, piece)
		})
		require.NoError(t, err)

		got, err := artRepo.FindByID(ctx, artModel.ID)
		require.NoError(t, err)
		assert.Equal(t, art.Reserved, got.Availability)

		others, err := artRepo.HasOtherAccepted(ctx, artModel.ID, b.ID)
		require.NoError(t, err)
		assert.False(t, others)

		list, total, err := artRepo.ListBookings(ctx, 0, 10)
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		assert.Equal(t, art.BookingAccepted, list[0].Status)

		_, err = artRepo.LockBookingByID(ctx, b.ID+1000)
		assert.ErrorIs(t, err, art.ErrBookingNotFound)
	})
}
