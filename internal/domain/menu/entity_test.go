package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestItem(t *testing.T) {
	item := &Item{
		ID: "itm_robusta_iced_americano",
		Prices: []Price{
			{Size: "Regular", Price: 16000, InStock: false},
			{Size: "Large", Price: 19000, InStock: true},
		},
	}
	assert.True(t, item.HasStock())
	assert.Equal(t, int64(16000), item.BasePrice())

	item.Prices[1].InStock = false
	assert.False(t, item.HasStock())

	empty := &Item{}
	assert.Zero(t, empty.BasePrice())
	assert.False(t, empty.HasStock())
}
