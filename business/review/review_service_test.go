package review

import (
	"context"
	"testing"

	"kantinkampus/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memReviewRepo struct {
	nextID  uint
	reviews []domain.Review
}

func (r *memReviewRepo) Create(_ context.Context, review *domain.Review) error {
	r.nextID++
	review.ID = r.nextID
	r.reviews = append(r.reviews, *review)
	return nil
}

func (r *memReviewRepo) FindByMenu(_ context.Context, menuID uint) ([]domain.Review, error) {
	var out []domain.Review
	for _, rev := range r.reviews {
		if rev.MenuID == menuID {
			out = append(out, rev)
		}
	}
	return out, nil
}

type stubMenuRepo struct{}

func (r *stubMenuRepo) FindByID(_ context.Context, id uint) (domain.Menu, error) {
	if id != 100 {
		return domain.Menu{}, domain.ErrNotFound
	}
	return domain.Menu{ID: 100, Name: "Nasi Goreng"}, nil
}

func TestAddReview(t *testing.T) {
	ctx := context.Background()
	repo := &memReviewRepo{}
	svc := NewReviewService(repo, &stubMenuRepo{})

	orderID := uint(5)
	created, err := svc.AddReview(ctx, 7, 100, &orderID, 4, "Enak banget")
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, 4, created.Rating)

	for _, rating := range []int{0, 6, -1} {
		_, err := svc.AddReview(ctx, 7, 100, nil, rating, "")
		assert.ErrorIs(t, err, domain.ErrValidation, "rating %d", rating)
	}

	_, err = svc.AddReview(ctx, 7, 999, nil, 3, "")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAddReview_AppendOnly(t *testing.T) {
	ctx := context.Background()
	repo := &memReviewRepo{}
	svc := NewReviewService(repo, &stubMenuRepo{})

	// the same buyer reviewing twice yields two rows, never an update
	_, err := svc.AddReview(ctx, 7, 100, nil, 5, "Mantap")
	require.NoError(t, err)
	_, err = svc.AddReview(ctx, 7, 100, nil, 2, "Kali ini kurang")
	require.NoError(t, err)

	reviews, err := svc.GetMenuReviews(ctx, 100)
	require.NoError(t, err)
	assert.Len(t, reviews, 2)
}
