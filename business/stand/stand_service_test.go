package stand

import (
	"context"
	"testing"

	"kantinkampus/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memStandRepo struct {
	nextID uint
	stands map[uint]domain.Stand
}

func newMemStandRepo() *memStandRepo {
	return &memStandRepo{nextID: 1, stands: make(map[uint]domain.Stand)}
}

func (r *memStandRepo) Create(_ context.Context, stand *domain.Stand) error {
	stand.ID = r.nextID
	r.nextID++
	r.stands[stand.ID] = *stand
	return nil
}

func (r *memStandRepo) FindByID(_ context.Context, id uint) (domain.Stand, error) {
	s, ok := r.stands[id]
	if !ok {
		return domain.Stand{}, domain.ErrNotFound
	}
	return s, nil
}

func (r *memStandRepo) FindBySeller(_ context.Context, sellerID uint) (domain.Stand, error) {
	for _, s := range r.stands {
		if s.SellerID == sellerID {
			return s, nil
		}
	}
	return domain.Stand{}, domain.ErrNotFound
}

func (r *memStandRepo) FindAll(_ context.Context) ([]domain.Stand, error) {
	var out []domain.Stand
	for _, s := range r.stands {
		out = append(out, s)
	}
	return out, nil
}

func (r *memStandRepo) Update(_ context.Context, stand *domain.Stand) error {
	if _, ok := r.stands[stand.ID]; !ok {
		return domain.ErrNotFound
	}
	r.stands[stand.ID] = *stand
	return nil
}

func TestCreateStand_OnePerSeller(t *testing.T) {
	ctx := context.Background()
	svc := NewStandService(newMemStandRepo())

	stand, err := svc.CreateStand(ctx, 10, "Warung Sunda", "Masakan sunda", "")
	require.NoError(t, err)
	assert.NotZero(t, stand.ID)
	assert.Equal(t, uint(10), stand.SellerID)

	_, err = svc.CreateStand(ctx, 10, "Warung Kedua", "", "")
	assert.ErrorIs(t, err, domain.ErrDuplicateStand)

	// a different seller is fine
	_, err = svc.CreateStand(ctx, 11, "Dapur Bu Rina", "", "")
	assert.NoError(t, err)
}

func TestCreateStand_RequiresName(t *testing.T) {
	ctx := context.Background()
	svc := NewStandService(newMemStandRepo())

	_, err := svc.CreateStand(ctx, 10, "", "", "")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUpdateStand(t *testing.T) {
	ctx := context.Background()
	repo := newMemStandRepo()
	svc := NewStandService(repo)

	created, err := svc.CreateStand(ctx, 10, "Warung Sunda", "", "")
	require.NoError(t, err)

	updated, err := svc.UpdateStand(ctx, 10, "Warung Sunda Baru", "Pindah lokasi", "front.jpg")
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Warung Sunda Baru", updated.Name)
	assert.Equal(t, "Pindah lokasi", repo.stands[created.ID].Description)

	_, err = svc.UpdateStand(ctx, 99, "Nobody", "", "")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
