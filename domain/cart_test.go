package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupCartByStand(t *testing.T) {
	items := []CartItem{
		{ID: 1, MenuID: 100, Price: 18000, Qty: 2, StandID: 1, StandName: "Warung Sunda"},
		{ID: 2, MenuID: 102, Price: 5000, Qty: 3, StandID: 2, StandName: "Dapur Bu Rina"},
		{ID: 3, MenuID: 101, Price: 12000, Qty: 1, StandID: 1, StandName: "Warung Sunda"},
	}

	groups := GroupCartByStand(items)
	require.Len(t, groups, 2)

	// stands keep first-seen order, lines interleaved across stands regroup
	assert.Equal(t, uint(1), groups[0].StandID)
	assert.Equal(t, "Warung Sunda", groups[0].StandName)
	assert.Len(t, groups[0].Items, 2)
	assert.Equal(t, int64(48000), groups[0].Total)

	assert.Equal(t, uint(2), groups[1].StandID)
	assert.Len(t, groups[1].Items, 1)
	assert.Equal(t, int64(15000), groups[1].Total)
}

func TestGroupCartByStand_Empty(t *testing.T) {
	assert.Empty(t, GroupCartByStand(nil))
}

func TestCartItemSubtotal(t *testing.T) {
	item := CartItem{Price: 18000, Qty: 3}
	assert.Equal(t, int64(54000), item.Subtotal())
}
