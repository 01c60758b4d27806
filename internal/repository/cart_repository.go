package repository

import (
	"context"

	"app/internal/domain/model"
)

// カートと明細の永続化を約束。
// どの操作もストア側で原子的に実行される（§途中状態を他のリクエストが見ない）。
type CartRepository interface {
	// user_idのカートを取得し、無ければ作成。
	// 同時に呼ばれても1ユーザー1カートを保つ（重複キーは外に出さない）。
	GetOrCreateByUserID(ctx context.Context, userID int64) (model.Cart, error)
	// 明細一覧。id昇順で返す
	ListLines(ctx context.Context, cartID int64) ([]model.CartLine, error)
	// 同一商品は数量加算、無ければ作成。addQtyは1未満なら1に切り上げ
	UpsertLine(ctx context.Context, cartID int64, itemID int64, addQty int64) error
	// 明細を1行削除。無ければ ErrNotFound
	DeleteLine(ctx context.Context, cartID int64, itemID int64) error
	// 明細を全削除。空でもエラーにしない
	ClearLines(ctx context.Context, cartID int64) error
}
