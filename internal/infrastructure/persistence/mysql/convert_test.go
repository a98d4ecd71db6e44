package mysql

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/xiebiao/cafe/internal/domain/art"
	"github.com/xiebiao/cafe/internal/domain/cart"
	"github.com/xiebiao/cafe/internal/domain/coffee"
	"github.com/xiebiao/cafe/internal/domain/franchise"
	"github.com/xiebiao/cafe/internal/domain/menu"
	"github.com/xiebiao/cafe/internal/domain/order"
	"github.com/xiebiao/cafe/internal/domain/workshop"
)

func TestOrderModelConversion(t *testing.T) {
	now := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)
	o := &order.Order{
		ID:            7,
		OrderID:       "ORD-20240115-005",
		OrderToken:    "ESP-1234",
		UserID:        42,
		Items:         []order.OrderItem{{MenuItemID: "itm_latte", Name: "Latte", Price: 2500, Quantity: 2}},
		TotalAmount:   5000,
		PaymentMethod: order.PaymentPayNow,
		PaymentStatus: order.PaymentStatusPaidUnverified,
		PickupTime:    now.Add(time.Hour),
		Status:        order.StatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	back := toOrderEntity(toOrderModel(o))
	assert.Equal(t, o, back)
}

func TestMenuModelConversion(t *testing.T) {
	item := &menu.Item{
		ID:       "itm_robusta_iced_americano",
		Name:     "Robusta Iced Americano",
		Category: "Iced",
		GroupID:  "robusta-specials",
		IsActive: true,
		Prices: []menu.Price{
			{Size: "Regular", Price: 16000, InStock: true},
			{Size: "Large", Price: 19000, DiscountPercent: 10},
		},
	}

	model := toMenuModel(item)
	assert.Equal(t, 0, model.Prices[0].Position)
	assert.Equal(t, 1, model.Prices[1].Position)
	assert.Equal(t, item.ID, model.Prices[1].MenuItemID)
	assert.Equal(t, item, toMenuEntity(model))
}

func TestCartModelConversion(t *testing.T) {
	m := &CartModel{
		ID:     3,
		UserID: 42,
		Items: []CartItemModel{
			{CartID: 3, Position: 0, MenuItemID: "itm_latte", Quantity: 2},
			{CartID: 3, Position: 1, MenuItemID: "itm_mocha", Quantity: 1},
		},
	}

	c := toCartEntity(m)
	assert.Equal(t, uint(42), c.UserID)
	assert.Equal(t, []cart.Item{{MenuItemID: "itm_latte", Quantity: 2}, {MenuItemID: "itm_mocha", Quantity: 1}}, c.Items)

	empty := toCartEntity(&CartModel{UserID: 1})
	assert.NotNil(t, empty.Items)
	assert.Empty(t, empty.Items)
}

func TestWorkshopModelConversion(t *testing.T) {
	w := &workshop.Workshop{
		ID:         1,
		Title:      "Latte Art Experience",
		TotalSeats: 12,
		Tags:       []string{"beginner", "latte-art"},
	}
	model := toWorkshopModel(w)
	assert.Equal(t, "beginner,latte-art", model.Tags)
	assert.Equal(t, w, toWorkshopEntity(model))
}

func TestEnquiryModelConversion(t *testing.T) {
	e := &franchise.Enquiry{ID: 5, FullName: "Ravi Kumar", Phone: "9876543210", City: "Pune", Status: franchise.StatusContacted}
	assert.Equal(t, e, toEnquiryEntity(toEnquiryModel(e)))
}

func TestCatalogModelConversion(t *testing.T) {
	now := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)

	t.Run("咖啡", func(t *testing.T) {
		c := &coffee.Coffee{ID: 2, Name: "Filter Kaapi", Strength: coffee.StrengthStrong,
			Tags: []string{"bold", "chicory"}, IsSignature: true, Popularity: 88, CreatedAt: now, UpdatedAt: now}
		model := toCoffeeModel(c)
		assert.Equal(t, "bold,chicory", model.Tags)
		assert.Equal(t, c, toCoffeeEntity(model))
	})

	t.Run("艺术品", func(t *testing.T) {
		a := &art.Art{ID: 5, Title: "Monsoon Blue", ArtistName: "Kavya", Price: 2500000,
			Availability: art.Reserved, MoodTags: []string{"calm", "cozy"}, CreatedAt: now, UpdatedAt: now}
		model := toArtModel(a)
		assert.Equal(t, "reserved", model.Availability)
		assert.Equal(t, "calm,cozy", model.MoodTags)
		assert.Equal(t, a, toArtEntity(model))
	})

	t.Run("预订申请", func(t *testing.T) {
		b := &art.Booking{ID: 9, ArtID: 5, ArtName: "Monsoon Blue", UserName: "Meera", Phone: "9000000000",
			Status: art.BookingAccepted, CreatedAt: now, UpdatedAt: now}
		assert.Equal(t, b, toBookingEntity(toBookingModel(b)))
	})
}

func TestTags(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"空字符串", "", []string{}},
		{"单个", "cupping", []string{"cupping"}},
		{"多个带空格", "a, b ,,c", []string{"a", "b", "c"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, splitTags(tt.in))
		})
	}
	assert.Equal(t, "", joinTags(nil))
}

func TestErrorHelpers(t *testing.T) {
	assert.True(t, isDuplicateError(gorm.ErrDuplicatedKey))
	assert.True(t, isDuplicateError(errors.New("Error 1062 (23000): Duplicate entry 'ESP-1234' for key 'orders.idx_orders_order_token'")))
	assert.False(t, isDuplicateError(nil))
	assert.False(t, isDuplicateError(errors.New("connection refused")))

	assert.True(t, isNotFound(fmt.Errorf("查询: %w", gorm.ErrRecordNotFound)))
	assert.False(t, isNotFound(errors.New("boom")))
}

func TestUniqueStrings(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, uniqueStrings([]string{"a", "b", "a"}))
	assert.Empty(t, uniqueStrings(nil))
}
