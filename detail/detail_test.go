package detail

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rmucenieks/store-poc/models"
)

type mockDetailsRepository struct {
	details *models.ProductDetails
	err     error
	calls   int
}

func (m *mockDetailsRepository) FetchProductDetails(ctx context.Context, productID, lang string) (*models.ProductDetails, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.details, nil
}

type mockImageResolver struct {
	url string
}

func (m *mockImageResolver) ImageURL(imageName string) string {
	return m.url
}

func englishKey() string { return "en" }

func newTestCoordinator(repo *mockDetailsRepository, images *mockImageResolver) *Coordinator {
	return NewCoordinator(models.DemoProduct(), repo, images, englishKey)
}

func TestLoadDetailsSuccess(t *testing.T) {
	repo := &mockDetailsRepository{
		details: &models.ProductDetails{
			Overview: &models.OverviewSpec{Streams: 6, MaxClientCount: "300+"},
		},
	}
	c := newTestCoordinator(repo, &mockImageResolver{})

	c.LoadDetails(context.Background())

	require.NotNil(t, c.Details())
	assert.Equal(t, 6, c.Details().Overview.Streams)
	assert.False(t, c.IsLoading())
}

func TestLoadDetailsFailureClearsDetails(t *testing.T) {
	repo := &mockDetailsRepository{
		details: &models.ProductDetails{Overview: &models.OverviewSpec{Streams: 6}},
	}
	c := newTestCoordinator(repo, &mockImageResolver{})

	c.LoadDetails(context.Background())
	require.NotNil(t, c.Details())

	repo.err = errors.New("boom")
	c.LoadDetails(context.Background())

	assert.Nil(t, c.Details(), "stale details never survive a failed reload")
	assert.False(t, c.IsLoading())
}

func TestLoadDetailsAbsentSectionsAreNotAnError(t *testing.T) {
	repo := &mockDetailsRepository{details: &models.ProductDetails{}}
	c := newTestCoordinator(repo, &mockImageResolver{})

	c.LoadDetails(context.Background())

	require.NotNil(t, c.Details())
	assert.Nil(t, c.Details().Overview)
	assert.Nil(t, c.Details().Hardware)
	assert.Nil(t, c.Details().Software)
	assert.Nil(t, c.Details().Features)
}

func TestQuantityStepper(t *testing.T) {
	c := newTestCoordinator(&mockDetailsRepository{}, &mockImageResolver{})

	assert.Equal(t, 1, c.Quantity())

	c.IncrementQuantity()
	c.IncrementQuantity()
	assert.Equal(t, 3, c.Quantity())

	c.DecrementQuantity()
	c.DecrementQuantity()
	assert.Equal(t, 1, c.Quantity())

	// Bounded below at one
	c.DecrementQuantity()
	assert.Equal(t, 1, c.Quantity())
}

func TestImageURLDelegatesToResolver(t *testing.T) {
	images := &mockImageResolver{url: "https://cdn.example.com/store-pics/e7.avif"}
	c := newTestCoordinator(&mockDetailsRepository{}, images)

	assert.Equal(t, "https://cdn.example.com/store-pics/e7.avif", c.ImageURL())
}
