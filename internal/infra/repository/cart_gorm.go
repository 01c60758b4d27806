package repository

import (
	"app/internal/domain/model"
	repo "app/internal/repository"
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CartGormRepository struct {
	db *gorm.DB
}

// DI
func NewCartGormRepository(db *gorm.DB) *CartGormRepository {
	return &CartGormRepository{db: db}
}

// ユーザーのカートを取得し、無ければ作成。
// user_idのunique制約 + ON CONFLICT DO NOTHING で、同時の初回アクセスでも
// カートは必ず1行。衝突したら読み直して勝った行を返す。
func (r *CartGormRepository) GetOrCreateByUserID(ctx context.Context, userID int64) (model.Cart, error) {
	now := time.Now()
	newCart := model.Cart{
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoNothing: true,
		}).
		Create(&newCart)
	if res.Error != nil {
		return model.Cart{}, res.Error
	}

	//作れた場合はそのまま返せる
	if res.RowsAffected == 1 && newCart.ID != 0 {
		return newCart, nil
	}

	//負けた側は既存行を読み直す
	var cart model.Cart
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&cart).Error; err != nil {
		return model.Cart{}, err
	}
	return cart, nil
}

// カート明細を一覧取得。テストで順序が揺れないようid昇順
func (r *CartGormRepository) ListLines(ctx context.Context, cartID int64) ([]model.CartLine, error) {
	var lines []model.CartLine

	if err := r.db.WithContext(ctx).
		Where("cart_id = ?", cartID).
		Order("id asc").
		Find(&lines).Error; err != nil {
		return []model.CartLine{}, err
	}

	return lines, nil
}

// 同一商品は数量加算、無ければ作成。
// INSERT ... ON CONFLICT (cart_id,item_id) DO UPDATE qty = qty + excluded.qty
// の1文で完結させ、同時追加でも加算が失われない。
func (r *CartGormRepository) UpsertLine(ctx context.Context, cartID int64, itemID int64, addQty int64) error {
	//0以下は「最低1つ追加」に切り上げ
	if addQty < 1 {
		addQty = 1
	}

	now := time.Now()
	line := model.CartLine{
		CartID:    cartID,
		ItemID:    itemID,
		Qty:       addQty,
		CreatedAt: now,
		UpdatedAt: now,
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "cart_id"}, {Name: "item_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"qty":        gorm.Expr("cart_lines.qty + excluded.qty"),
				"updated_at": now,
			}),
		}).
		Create(&line).Error
}

// 明細を削除。該当行が無ければ ErrNotFound（上位で404にする）
func (r *CartGormRepository) DeleteLine(ctx context.Context, cartID int64, itemID int64) error {
	res := r.db.WithContext(ctx).
		Where("cart_id = ? AND item_id = ?", cartID, itemID).
		Delete(&model.CartLine{})

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// 指定カートの明細を全削除。既に空でもエラーにしない
func (r *CartGormRepository) ClearLines(ctx context.Context, cartID int64) error {
	return r.db.WithContext(ctx).
		Where("cart_id = ?", cartID).
		Delete(&model.CartLine{}).Error
}
