package cart

import (
	"context"
	"testing"

	"kantinkampus/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memCartRepo struct {
	nextID uint
	lines  map[uint]domain.CartLine
}

func newMemCartRepo() *memCartRepo {
	return &memCartRepo{nextID: 1, lines: make(map[uint]domain.CartLine)}
}

func (r *memCartRepo) FindLine(_ context.Context, buyerID, menuID uint) (domain.CartLine, error) {
	for _, l := range r.lines {
		if l.BuyerID == buyerID && l.MenuID == menuID {
			return l, nil
		}
	}
	return domain.CartLine{}, domain.ErrNotFound
}

func (r *memCartRepo) FindLineByID(_ context.Context, id uint) (domain.CartLine, error) {
	l, ok := r.lines[id]
	if !ok {
		return domain.CartLine{}, domain.ErrNotFound
	}
	return l, nil
}

func (r *memCartRepo) Create(_ context.Context, line *domain.CartLine) error {
	line.ID = r.nextID
	r.nextID++
	r.lines[line.ID] = *line
	return nil
}

func (r *memCartRepo) UpdateQty(_ context.Context, id uint, qty int, notes string) error {
	l, ok := r.lines[id]
	if !ok {
		return domain.ErrNotFound
	}
	l.Qty = qty
	if notes != "" {
		l.Notes = notes
	}
	r.lines[id] = l
	return nil
}

func (r *memCartRepo) DeleteLine(_ context.Context, id uint) error {
	if _, ok := r.lines[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.lines, id)
	return nil
}

func (r *memCartRepo) Clear(_ context.Context, buyerID uint) error {
	for id, l := range r.lines {
		if l.BuyerID == buyerID {
			delete(r.lines, id)
		}
	}
	return nil
}

func (r *memCartRepo) FindItems(_ context.Context, buyerID uint) ([]domain.CartItem, error) {
	var items []domain.CartItem
	for _, l := range r.lines {
		if l.BuyerID == buyerID {
			items = append(items, domain.CartItem{ID: l.ID, BuyerID: l.BuyerID, MenuID: l.MenuID, Qty: l.Qty})
		}
	}
	return items, nil
}

func (r *memCartRepo) Count(_ context.Context, buyerID uint) (int64, error) {
	var total int64
	for _, l := range r.lines {
		if l.BuyerID == buyerID {
			total += int64(l.Qty)
		}
	}
	return total, nil
}

type stubMenuRepo struct {
	menus map[uint]domain.Menu
}

func (r *stubMenuRepo) FindByID(_ context.Context, id uint) (domain.Menu, error) {
	m, ok := r.menus[id]
	if !ok {
		return domain.Menu{}, domain.ErrNotFound
	}
	return m, nil
}

func newTestCartService() (*cartService, *memCartRepo) {
	repo := newMemCartRepo()
	menus := &stubMenuRepo{menus: map[uint]domain.Menu{
		100: {ID: 100, StandID: 1, Name: "Nasi Goreng", Price: 18000, Status: domain.MenuAvailable},
		101: {ID: 101, StandID: 1, Name: "Es Teh", Price: 5000, Status: domain.MenuUnavailable},
	}}
	return NewCartService(repo, menus), repo
}

func TestAddToCart_MergesDuplicateMenu(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestCartService()

	first, err := svc.AddToCart(ctx, 7, 100, 2, "")
	require.NoError(t, err)
	assert.Equal(t, 2, first.Qty)

	merged, err := svc.AddToCart(ctx, 7, 100, 3, "extra sambal")
	require.NoError(t, err)
	assert.Equal(t, first.ID, merged.ID, "same line, not a duplicate")
	assert.Equal(t, 5, merged.Qty)

	assert.Len(t, repo.lines, 1)
	assert.Equal(t, "extra sambal", repo.lines[first.ID].Notes)
}

func TestAddToCart_RejectsUnavailableMenu(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestCartService()

	_, err := svc.AddToCart(ctx, 7, 101, 1, "")
	assert.ErrorIs(t, err, domain.ErrMenuUnavailable)
}

func TestAddToCart_RejectsNonPositiveQty(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestCartService()

	_, err := svc.AddToCart(ctx, 7, 100, 0, "")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUpdateQty_ZeroRemovesLine(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestCartService()

	line, err := svc.AddToCart(ctx, 7, 100, 2, "")
	require.NoError(t, err)

	require.NoError(t, svc.UpdateQty(ctx, 7, line.ID, 4))
	assert.Equal(t, 4, repo.lines[line.ID].Qty)

	require.NoError(t, svc.UpdateQty(ctx, 7, line.ID, 0))
	assert.Empty(t, repo.lines)
}

func TestUpdateQty_OtherBuyersLineForbidden(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestCartService()

	line, err := svc.AddToCart(ctx, 7, 100, 2, "")
	require.NoError(t, err)

	err = svc.UpdateQty(ctx, 8, line.ID, 1)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestClearCart(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestCartService()

	_, err := svc.AddToCart(ctx, 7, 100, 2, "")
	require.NoError(t, err)

	count, err := svc.CartCount(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	require.NoError(t, svc.ClearCart(ctx, 7))
	assert.Empty(t, repo.lines)
}
