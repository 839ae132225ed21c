package cart

import (
	"context"
	"testing"

	"github.com/artlease-io/artlease-backend/pkg/db/models"
	pkgerrors "github.com/artlease-io/artlease-backend/pkg/errors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type memoryStore struct {
	carts map[string]*Cart
}

func newMemoryStore() *memoryStore {
	return &memoryStore{carts: map[string]*Cart{}}
}

func (m *memoryStore) Load(_ context.Context, cartID string) (*Cart, error) {
	if cart, ok := m.carts[cartID]; ok {
		copied := *cart
		copied.Lines = append([]Line{}, cart.Lines...)
		return &copied, nil
	}
	return &Cart{}, nil
}

func (m *memoryStore) Save(_ context.Context, cartID string, cart *Cart) error {
	m.carts[cartID] = cart
	return nil
}

func (m *memoryStore) Clear(_ context.Context, cartID string) error {
	delete(m.carts, cartID)
	return nil
}

type fakeArtworks struct {
	byID map[uuid.UUID]*models.Artwork
}

func (f *fakeArtworks) FindByID(_ context.Context, id uuid.UUID) (*models.Artwork, error) {
	if artwork, ok := f.byID[id]; ok {
		return artwork, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func newCartServiceForTest(t *testing.T, artworks ...*models.Artwork) (Service, *memoryStore) {
	t.Helper()

	reader := &fakeArtworks{byID: map[uuid.UUID]*models.Artwork{}}
	for _, artwork := range artworks {
		reader.byID[artwork.ID] = artwork
	}
	store := newMemoryStore()
	svc, err := NewService(store, reader)
	require.NoError(t, err)
	return svc, store
}

func testArtwork(price string) *models.Artwork {
	return &models.Artwork{
		ID:            uuid.New(),
		ProviderID:    uuid.New(),
		Title:         "Test Piece",
		ArtistName:    "Tester",
		PricePerMonth: decimal.RequireFromString(price),
	}
}

func TestClampMonths(t *testing.T) {
	cases := map[int]int{
		-3:  1,
		0:   1,
		1:   1,
		7:   7,
		12:  12,
		13:  12,
		100: 12,
	}
	for input, want := range cases {
		if got := ClampMonths(input); got != want {
			t.Fatalf("ClampMonths(%d) = %d, want %d", input, got, want)
		}
	}
}

func TestAddSnapshotsPriceAndComputesSubtotal(t *testing.T) {
	artwork := testArtwork("150.50")
	svc, _ := newCartServiceForTest(t, artwork)

	dto, err := svc.Add(context.Background(), "c1", artwork.ID, 3, "")
	require.NoError(t, err)
	require.Len(t, dto.Lines, 1)

	line := dto.Lines[0]
	assert.True(t, line.PricePerMonth.Equal(decimal.RequireFromString("150.50")))
	assert.Equal(t, 3, line.Months)
	assert.True(t, line.Subtotal.Equal(decimal.RequireFromString("451.50")))
	assert.True(t, dto.Total.Equal(decimal.RequireFromString("451.50")))
}

func TestAddUpdatesExistingLineInPlace(t *testing.T) {
	artwork := testArtwork("100")
	svc, _ := newCartServiceForTest(t, artwork)

	_, err := svc.Add(context.Background(), "c1", artwork.ID, 2, "")
	require.NoError(t, err)

	dto, err := svc.Add(context.Background(), "c1", artwork.ID, 5, "2026-01-01")
	require.NoError(t, err)
	require.Len(t, dto.Lines, 1, "same artwork must not duplicate lines")
	assert.Equal(t, 5, dto.Lines[0].Months)
	assert.Equal(t, "2026-01-01", dto.Lines[0].StartDate)
	assert.True(t, dto.Total.Equal(decimal.NewFromInt(500)))
}

func TestAddClampsDuration(t *testing.T) {
	artwork := testArtwork("10")
	svc, _ := newCartServiceForTest(t, artwork)

	dto, err := svc.Add(context.Background(), "c1", artwork.ID, 50, "")
	require.NoError(t, err)
	assert.Equal(t, 12, dto.Lines[0].Months)

	dto, err = svc.Add(context.Background(), "c1", artwork.ID, -1, "")
	require.NoError(t, err)
	assert.Equal(t, 1, dto.Lines[0].Months)
}

func TestAddUnknownArtwork(t *testing.T) {
	svc, _ := newCartServiceForTest(t)

	_, err := svc.Add(context.Background(), "c1", uuid.New(), 1, "")
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeNotFound, typed.Code())
}

func TestAddRejectsMalformedStartDate(t *testing.T) {
	artwork := testArtwork("10")
	svc, _ := newCartServiceForTest(t, artwork)

	_, err := svc.Add(context.Background(), "c1", artwork.ID, 1, "01/02/2026")
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeValidation, typed.Code())
}

func TestRemoveLineAndTotals(t *testing.T) {
	first := testArtwork("100")
	second := testArtwork("250")
	svc, _ := newCartServiceForTest(t, first, second)

	_, err := svc.Add(context.Background(), "c1", first.ID, 1, "")
	require.NoError(t, err)
	dto, err := svc.Add(context.Background(), "c1", second.ID, 2, "")
	require.NoError(t, err)
	assert.True(t, dto.Total.Equal(decimal.NewFromInt(600)))

	dto, err = svc.RemoveLine(context.Background(), "c1", first.ID)
	require.NoError(t, err)
	require.Len(t, dto.Lines, 1)
	assert.True(t, dto.Total.Equal(decimal.NewFromInt(500)))
}

func TestUpdateLineMissing(t *testing.T) {
	svc, _ := newCartServiceForTest(t)

	_, err := svc.UpdateLine(context.Background(), "c1", uuid.New(), 2, "")
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeNotFound, typed.Code())
}

func TestClearIsIdempotent(t *testing.T) {
	artwork := testArtwork("10")
	svc, store := newCartServiceForTest(t, artwork)

	_, err := svc.Add(context.Background(), "c1", artwork.ID, 1, "")
	require.NoError(t, err)

	require.NoError(t, svc.Clear(context.Background(), "c1"))
	require.NoError(t, svc.Clear(context.Background(), "c1"))

	_, exists := store.carts["c1"]
	assert.False(t, exists)

	dto, err := svc.Get(context.Background(), "c1")
	require.NoError(t, err)
	assert.Empty(t, dto.Lines)
	assert.True(t, dto.Total.IsZero())
}
