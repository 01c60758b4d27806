package usecase

import (
	repo "app/internal/repository"
	"context"
	"errors"
	"net/http"

	"github.com/shopspring/decimal"
)

// CartUsecase は /cart の業務ロジックです。
// 価格はカートに保存せず、返却のたびにItemRepositoryから現在価格を引きます。
type CartUsecase struct {
	cartRepo repo.CartRepository
	itemRepo repo.ItemRepository
}

func NewCartUsecase(
	cartRepo repo.CartRepository,
	itemRepo repo.ItemRepository,
) *CartUsecase {
	return &CartUsecase{
		cartRepo: cartRepo,
		itemRepo: itemRepo,
	}
}

// 明細1行のレスポンス。unit_priceは現在のカタログ価格
type CartLineResponse struct {
	ID        int64           `json:"id"`
	ItemID    int64           `json:"item_id"`
	Name      string          `json:"name"`
	Qty       int64           `json:"qty"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

type CartResponse struct {
	Items []CartLineResponse `json:"items"`
	Total decimal.Decimal    `json:"total"`
}

// handlerからusecaseに渡す入力
type AddItemInput struct {
	ItemID int64
	Qty    int64
}

// GetCart はカート取得（無ければ作って空を返す）。
// total = Σ(qty × 現在価格) をdecimalで計算する。
// 明細の商品がカタログから消えていたら、黙って除外せず409で失敗させる。
func (u *CartUsecase) GetCart(ctx context.Context, userID int64) (CartResponse, error) {
	if userID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	cart, err := u.cartRepo.GetOrCreateByUserID(ctx, userID)
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	lines, err := u.cartRepo.ListLines(ctx, cart.ID)
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	respItems := make([]CartLineResponse, 0, len(lines))
	total := decimal.Zero

	for _, ln := range lines {
		it, err := u.itemRepo.FindByID(ctx, ln.ItemID)
		if errors.Is(err, repo.ErrNotFound) {
			//削除済み商品を参照している明細は見える形で失敗させる
			return CartResponse{}, NewHTTPError(http.StatusConflict, "item no longer in catalog")
		}
		if err != nil {
			return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
		}

		qty := decimal.NewFromInt(ln.Qty)
		subtotal := it.Price.Mul(qty)

		respItems = append(respItems, CartLineResponse{
			ID:        ln.ID,
			ItemID:    ln.ItemID,
			Name:      it.Name,
			Qty:       ln.Qty,
			UnitPrice: it.Price,
			Subtotal:  subtotal,
		})

		total = total.Add(subtotal)
	}

	return CartResponse{Items: respItems, Total: total}, nil
}

// AddItem はカートに追加（同一商品は数量加算）。
// 商品が存在しなければ404で、カートには何も書かない。
// qtyは0以下でも「最低1つ追加」に切り上げる。
func (u *CartUsecase) AddItem(ctx context.Context, userID int64, in AddItemInput) error {
	if userID <= 0 {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if in.ItemID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid item_id")
	}

	//カート取得（無ければ作成）
	cart, err := u.cartRepo.GetOrCreateByUserID(ctx, userID)
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	//商品チェック（存在しないitem_idは弾く）
	if _, err := u.itemRepo.FindByID(ctx, in.ItemID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusNotFound, "item not found")
		}
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	// Upsert（同一商品は加算、切り上げはストア側でも行う）
	if err := u.cartRepo.UpsertLine(ctx, cart.ID, in.ItemID, in.Qty); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return nil
}

// RemoveItem は明細を1行削除。カートに無ければ404
func (u *CartUsecase) RemoveItem(ctx context.Context, userID int64, itemID int64) error {
	if userID <= 0 {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if itemID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid item_id")
	}

	cart, err := u.cartRepo.GetOrCreateByUserID(ctx, userID)
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if err := u.cartRepo.DeleteLine(ctx, cart.ID, itemID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusNotFound, "not in cart")
		}
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return nil
}

// ClearCart は明細を全削除。空でも成功（冪等）
func (u *CartUsecase) ClearCart(ctx context.Context, userID int64) error {
	if userID <= 0 {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	cart, err := u.cartRepo.GetOrCreateByUserID(ctx, userID)
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if err := u.cartRepo.ClearLines(ctx, cart.ID); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return nil
}
