package repository

import (
	"app/internal/domain/model"
	"context"
	"errors"

	"github.com/shopspring/decimal"
)

var ErrNotFound = errors.New("not found")

// 一覧検索
type ItemListQuery struct {
	Q        string
	Category string
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
	Sort     string
	Limit    int
	Offset   int
}

// 商品の永続化（保存・取得）だけを約束。
// FindByIDがカート側の「カタログ参照」でもある（現在価格はここから引く）。
type ItemRepository interface {
	List(ctx context.Context, q ItemListQuery) ([]model.Item, error)
	FindByID(ctx context.Context, itemID int64) (model.Item, error)

	Create(ctx context.Context, item model.Item) (model.Item, error)
	Update(ctx context.Context, item model.Item) error
	Delete(ctx context.Context, itemID int64) error
}
