package menu

import (
	"context"
	"testing"

	"kantinkampus/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memMenuRepo struct {
	nextID     uint
	menus      map[uint]domain.Menu
	referenced map[uint]bool
}

func newMemMenuRepo() *memMenuRepo {
	return &memMenuRepo{nextID: 1, menus: make(map[uint]domain.Menu), referenced: make(map[uint]bool)}
}

func (r *memMenuRepo) Create(_ context.Context, menu *domain.Menu) error {
	menu.ID = r.nextID
	r.nextID++
	r.menus[menu.ID] = *menu
	return nil
}

func (r *memMenuRepo) FindByID(_ context.Context, id uint) (domain.Menu, error) {
	m, ok := r.menus[id]
	if !ok {
		return domain.Menu{}, domain.ErrNotFound
	}
	return m, nil
}

func (r *memMenuRepo) FindByStand(_ context.Context, standID uint) ([]domain.Menu, error) {
	var out []domain.Menu
	for _, m := range r.menus {
		if m.StandID == standID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *memMenuRepo) FindAvailable(_ context.Context) ([]domain.Menu, error) {
	var out []domain.Menu
	for _, m := range r.menus {
		if m.Status == domain.MenuAvailable {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *memMenuRepo) Search(_ context.Context, _ string) ([]domain.Menu, error) {
	return nil, nil
}

func (r *memMenuRepo) Update(_ context.Context, menu *domain.Menu) error {
	if _, ok := r.menus[menu.ID]; !ok {
		return domain.ErrNotFound
	}
	r.menus[menu.ID] = *menu
	return nil
}

func (r *memMenuRepo) UpdateStatus(_ context.Context, id uint, status string) error {
	m, ok := r.menus[id]
	if !ok {
		return domain.ErrNotFound
	}
	m.Status = status
	r.menus[id] = m
	return nil
}

func (r *memMenuRepo) Delete(_ context.Context, id uint) error {
	if _, ok := r.menus[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.menus, id)
	return nil
}

func (r *memMenuRepo) ReferencedByOrders(_ context.Context, id uint) (bool, error) {
	return r.referenced[id], nil
}

type stubStandRepo struct {
	stands map[uint]domain.Stand
}

func (r *stubStandRepo) FindBySeller(_ context.Context, sellerID uint) (domain.Stand, error) {
	for _, s := range r.stands {
		if s.SellerID == sellerID {
			return s, nil
		}
	}
	return domain.Stand{}, domain.ErrNotFound
}

func newTestMenuService() (*menuService, *memMenuRepo) {
	repo := newMemMenuRepo()
	stands := &stubStandRepo{stands: map[uint]domain.Stand{
		1: {ID: 1, SellerID: 10, Name: "Warung Sunda"},
		2: {ID: 2, SellerID: 20, Name: "Dapur Bu Rina"},
	}}
	return NewMenuService(repo, stands), repo
}

func TestAddMenu(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestMenuService()

	created, err := svc.AddMenu(ctx, 10, MenuInput{Name: "Nasi Goreng", Price: 18000})
	require.NoError(t, err)
	assert.Equal(t, uint(1), created.StandID, "menu lands on the seller's own stand")
	assert.Equal(t, domain.MenuAvailable, created.Status, "defaults to available")

	_, err = svc.AddMenu(ctx, 10, MenuInput{Name: "", Price: 1000})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.AddMenu(ctx, 10, MenuInput{Name: "Gratis", Price: 0})
	assert.ErrorIs(t, err, domain.ErrValidation)

	// a seller without a stand cannot list menus
	_, err = svc.AddMenu(ctx, 99, MenuInput{Name: "Bakso", Price: 10000})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateMenu_OwnershipEnforced(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestMenuService()

	created, err := svc.AddMenu(ctx, 10, MenuInput{Name: "Nasi Goreng", Price: 18000})
	require.NoError(t, err)

	updated, err := svc.UpdateMenu(ctx, 10, created.ID, MenuInput{Price: 20000})
	require.NoError(t, err)
	assert.Equal(t, int64(20000), updated.Price)
	assert.Equal(t, "Nasi Goreng", updated.Name, "empty fields keep old values")

	_, err = svc.UpdateMenu(ctx, 20, created.ID, MenuInput{Price: 1})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestDeleteMenu_SoftDisablesWhenOrdered(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestMenuService()

	fresh, err := svc.AddMenu(ctx, 10, MenuInput{Name: "Es Teh", Price: 5000})
	require.NoError(t, err)
	ordered, err := svc.AddMenu(ctx, 10, MenuInput{Name: "Nasi Goreng", Price: 18000})
	require.NoError(t, err)
	repo.referenced[ordered.ID] = true

	// never ordered: gone for real
	require.NoError(t, svc.DeleteMenu(ctx, 10, fresh.ID))
	_, ok := repo.menus[fresh.ID]
	assert.False(t, ok)

	// referenced by order history: disabled, not deleted
	require.NoError(t, svc.DeleteMenu(ctx, 10, ordered.ID))
	kept, ok := repo.menus[ordered.ID]
	require.True(t, ok)
	assert.Equal(t, domain.MenuUnavailable, kept.Status)
}
