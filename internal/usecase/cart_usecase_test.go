package usecase_test

import (
	"app/internal/domain/model"
	repo "app/internal/repository"
	"app/internal/usecase"
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// =====================
// Mocks（衝突回避の命名）
// =====================

type CartRepoMock struct{ mock.Mock }

func (m *CartRepoMock) GetOrCreateByUserID(ctx context.Context, userID int64) (model.Cart, error) {
	args := m.Called(ctx, userID)
	c, _ := args.Get(0).(model.Cart)
	return c, args.Error(1)
}

func (m *CartRepoMock) ListLines(ctx context.Context, cartID int64) ([]model.CartLine, error) {
	args := m.Called(ctx, cartID)
	lines, _ := args.Get(0).([]model.CartLine)
	return lines, args.Error(1)
}

func (m *CartRepoMock) UpsertLine(ctx context.Context, cartID int64, itemID int64, addQty int64) error {
	args := m.Called(ctx, cartID, itemID, addQty)
	return args.Error(0)
}

func (m *CartRepoMock) DeleteLine(ctx context.Context, cartID int64, itemID int64) error {
	args := m.Called(ctx, cartID, itemID)
	return args.Error(0)
}

func (m *CartRepoMock) ClearLines(ctx context.Context, cartID int64) error {
	args := m.Called(ctx, cartID)
	return args.Error(0)
}

var _ repo.CartRepository = (*CartRepoMock)(nil)

type CartItemRepoMock struct{ mock.Mock }

func (m *CartItemRepoMock) List(ctx context.Context, q repo.ItemListQuery) ([]model.Item, error) {
	panic("not used in CartUsecase tests")
}

func (m *CartItemRepoMock) FindByID(ctx context.Context, itemID int64) (model.Item, error) {
	args := m.Called(ctx, itemID)
	it, _ := args.Get(0).(model.Item)
	return it, args.Error(1)
}

func (m *CartItemRepoMock) Create(ctx context.Context, item model.Item) (model.Item, error) {
	panic("not used in CartUsecase tests")
}

func (m *CartItemRepoMock) Update(ctx context.Context, item model.Item) error {
	panic("not used in CartUsecase tests")
}

func (m *CartItemRepoMock) Delete(ctx context.Context, itemID int64) error {
	panic("not used in CartUsecase tests")
}

var _ repo.ItemRepository = (*CartItemRepoMock)(nil)

// =====================
// helper
// =====================

func assertHTTPError(t *testing.T, err error, wantStatus int, wantMsg string) {
	t.Helper()

	if err == nil {
		t.Fatalf("expected error, got nil")
	}
	he, ok := usecase.AsHTTPError(err)
	if !ok {
		t.Fatalf("expected HTTPError, got %v", err)
	}
	assert.Equal(t, wantStatus, he.Status)
	if !strings.Contains(he.Message, wantMsg) {
		t.Fatalf("expected message containing %q, got %q", wantMsg, he.Message)
	}
}

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// =====================
// GetCart
// =====================

func TestCartUsecase_GetCart_Empty(t *testing.T) {
	ctx := context.Background()

	cRepo := new(CartRepoMock)
	iRepo := new(CartItemRepoMock)
	uc := usecase.NewCartUsecase(cRepo, iRepo)

	cRepo.On("GetOrCreateByUserID", mock.Anything, int64(1)).Return(model.Cart{ID: 10, UserID: 1}, nil)
	cRepo.On("ListLines", mock.Anything, int64(10)).Return([]model.CartLine{}, nil)

	out, err := uc.GetCart(ctx, 1)
	assert.NoError(t, err)
	assert.Equal(t, 0, len(out.Items))
	assert.True(t, out.Total.IsZero())

	cRepo.AssertExpectations(t)
}

// total = Σ(qty × 現在価格) がdecimalで正確に出ること。
// 10.00×2 + 5.50×1 = 25.50（浮動小数の丸め誤差を出さない）
func TestCartUsecase_GetCart_TotalIsDecimalExact(t *testing.T) {
	ctx := context.Background()

	cRepo := new(CartRepoMock)
	iRepo := new(CartItemRepoMock)
	uc := usecase.NewCartUsecase(cRepo, iRepo)

	cRepo.On("GetOrCreateByUserID", mock.Anything, int64(1)).Return(model.Cart{ID: 10, UserID: 1}, nil)
	cRepo.On("ListLines", mock.Anything, int64(10)).Return([]model.CartLine{
		{ID: 100, CartID: 10, ItemID: 1, Qty: 2},
		{ID: 101, CartID: 10, ItemID: 2, Qty: 1},
	}, nil)

	iRepo.On("FindByID", mock.Anything, int64(1)).Return(model.Item{ID: 1, Name: "A", Price: price("10.00")}, nil)
	iRepo.On("FindByID", mock.Anything, int64(2)).Return(model.Item{ID: 2, Name: "B", Price: price("5.50")}, nil)

	out, err := uc.GetCart(ctx, 1)
	assert.NoError(t, err)
	assert.Equal(t, 2, len(out.Items))

	assert.True(t, out.Items[0].Subtotal.Equal(price("20.00")), "subtotal A = %s", out.Items[0].Subtotal)
	assert.True(t, out.Items[1].Subtotal.Equal(price("5.50")), "subtotal B = %s", out.Items[1].Subtotal)
	assert.True(t, out.Total.Equal(price("25.50")), "total = %s", out.Total)

	cRepo.AssertExpectations(t)
	iRepo.AssertExpectations(t)
}

// 明細の商品がカタログから消えていたら、黙って除外せず409
func TestCartUsecase_GetCart_StaleItemReference(t *testing.T) {
	ctx := context.Background()

	cRepo := new(CartRepoMock)
	iRepo := new(CartItemRepoMock)
	uc := usecase.NewCartUsecase(cRepo, iRepo)

	cRepo.On("GetOrCreateByUserID", mock.Anything, int64(1)).Return(model.Cart{ID: 10, UserID: 1}, nil)
	cRepo.On("ListLines", mock.Anything, int64(10)).Return([]model.CartLine{
		{ID: 100, CartID: 10, ItemID: 99, Qty: 1},
	}, nil)

	iRepo.On("FindByID", mock.Anything, int64(99)).Return(model.Item{}, repo.ErrNotFound)

	_, err := uc.GetCart(ctx, 1)
	assertHTTPError(t, err, http.StatusConflict, "no longer in catalog")
}

func TestCartUsecase_GetCart_Unauthorized(t *testing.T) {
	uc := usecase.NewCartUsecase(new(CartRepoMock), new(CartItemRepoMock))

	_, err := uc.GetCart(context.Background(), 0)
	assertHTTPError(t, err, http.StatusUnauthorized, "unauthorized")
}

// =====================
// AddItem
// =====================

func TestCartUsecase_AddItem_Success(t *testing.T) {
	ctx := context.Background()

	cRepo := new(CartRepoMock)
	iRepo := new(CartItemRepoMock)
	uc := usecase.NewCartUsecase(cRepo, iRepo)

	cRepo.On("GetOrCreateByUserID", mock.Anything, int64(1)).Return(model.Cart{ID: 10, UserID: 1}, nil)
	iRepo.On("FindByID", mock.Anything, int64(5)).Return(model.Item{ID: 5, Price: price("3.00")}, nil)
	cRepo.On("UpsertLine", mock.Anything, int64(10), int64(5), int64(2)).Return(nil)

	err := uc.AddItem(ctx, 1, usecase.AddItemInput{ItemID: 5, Qty: 2})
	assert.NoError(t, err)

	cRepo.AssertExpectations(t)
	iRepo.AssertExpectations(t)
}

// カタログに無い商品は404で、カートには一切書かない
func TestCartUsecase_AddItem_ItemNotFound_NoMutation(t *testing.T) {
	ctx := context.Background()

	cRepo := new(CartRepoMock)
	iRepo := new(CartItemRepoMock)
	uc := usecase.NewCartUsecase(cRepo, iRepo)

	cRepo.On("GetOrCreateByUserID", mock.Anything, int64(1)).Return(model.Cart{ID: 10, UserID: 1}, nil)
	iRepo.On("FindByID", mock.Anything, int64(99)).Return(model.Item{}, repo.ErrNotFound)

	err := uc.AddItem(ctx, 1, usecase.AddItemInput{ItemID: 99, Qty: 1})
	assertHTTPError(t, err, http.StatusNotFound, "item not found")

	cRepo.AssertNotCalled(t, "UpsertLine", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCartUsecase_AddItem_InvalidItemID(t *testing.T) {
	uc := usecase.NewCartUsecase(new(CartRepoMock), new(CartItemRepoMock))

	err := uc.AddItem(context.Background(), 1, usecase.AddItemInput{ItemID: 0, Qty: 1})
	assertHTTPError(t, err, http.StatusBadRequest, "invalid item_id")
}

// =====================
// RemoveItem
// =====================

func TestCartUsecase_RemoveItem_Success(t *testing.T) {
	ctx := context.Background()

	cRepo := new(CartRepoMock)
	uc := usecase.NewCartUsecase(cRepo, new(CartItemRepoMock))

	cRepo.On("GetOrCreateByUserID", mock.Anything, int64(1)).Return(model.Cart{ID: 10, UserID: 1}, nil)
	cRepo.On("DeleteLine", mock.Anything, int64(10), int64(5)).Return(nil)

	err := uc.RemoveItem(ctx, 1, 5)
	assert.NoError(t, err)

	cRepo.AssertExpectations(t)
}

// カートに無い商品のremoveは404。明細を作ったりしない
func TestCartUsecase_RemoveItem_NotInCart(t *testing.T) {
	ctx := context.Background()

	cRepo := new(CartRepoMock)
	uc := usecase.NewCartUsecase(cRepo, new(CartItemRepoMock))

	cRepo.On("GetOrCreateByUserID", mock.Anything, int64(1)).Return(model.Cart{ID: 10, UserID: 1}, nil)
	cRepo.On("DeleteLine", mock.Anything, int64(10), int64(5)).Return(repo.ErrNotFound)

	err := uc.RemoveItem(ctx, 1, 5)
	assertHTTPError(t, err, http.StatusNotFound, "not in cart")

	cRepo.AssertNotCalled(t, "UpsertLine", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// =====================
// ClearCart
// =====================

func TestCartUsecase_ClearCart_Success(t *testing.T) {
	ctx := context.Background()

	cRepo := new(CartRepoMock)
	uc := usecase.NewCartUsecase(cRepo, new(CartItemRepoMock))

	cRepo.On("GetOrCreateByUserID", mock.Anything, int64(1)).Return(model.Cart{ID: 10, UserID: 1}, nil)
	cRepo.On("ClearLines", mock.Anything, int64(10)).Return(nil)

	err := uc.ClearCart(ctx, 1)
	assert.NoError(t, err)

	cRepo.AssertExpectations(t)
}
