package favorite

import (
	"context"
	"testing"

	"kantinkampus/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type favKey struct {
	buyerID uint
	menuID  uint
}

type memFavoriteRepo struct {
	favorites map[favKey]bool
}

func newMemFavoriteRepo() *memFavoriteRepo {
	return &memFavoriteRepo{favorites: make(map[favKey]bool)}
}

func (r *memFavoriteRepo) Exists(_ context.Context, buyerID, menuID uint) (bool, error) {
	return r.favorites[favKey{buyerID, menuID}], nil
}

func (r *memFavoriteRepo) Create(_ context.Context, favorite *domain.Favorite) error {
	r.favorites[favKey{favorite.BuyerID, favorite.MenuID}] = true
	return nil
}

func (r *memFavoriteRepo) Delete(_ context.Context, buyerID, menuID uint) error {
	delete(r.favorites, favKey{buyerID, menuID})
	return nil
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

func (r *stubMenuRepo) FindFavorites(_ context.Context, _ uint) ([]domain.Menu, error) {
	return nil, nil
}

func TestToggle(t *testing.T) {
	ctx := context.Background()
	repo := newMemFavoriteRepo()
	menus := &stubMenuRepo{menus: map[uint]domain.Menu{
		100: {ID: 100, Name: "Nasi Goreng", Status: domain.MenuAvailable},
	}}
	svc := NewFavoriteService(repo, menus)

	favorited, err := svc.Toggle(ctx, 7, 100)
	require.NoError(t, err)
	assert.True(t, favorited)
	assert.True(t, repo.favorites[favKey{7, 100}])

	favorited, err = svc.Toggle(ctx, 7, 100)
	require.NoError(t, err)
	assert.False(t, favorited)
	assert.Empty(t, repo.favorites)

	_, err = svc.Toggle(ctx, 7, 999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
