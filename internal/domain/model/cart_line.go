package model

import "time"

// カートの明細。
// 同一カート内で同じ商品は1行だけ（cart_id + item_id にunique制約）。
// 価格は保存せず、合計計算のたびにitemsから現在価格を引く。
type CartLine struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	CartID    int64     `gorm:"not null;uniqueIndex:uq_cart_item" json:"cart_id"`
	ItemID    int64     `gorm:"not null;uniqueIndex:uq_cart_item" json:"item_id"`
	Qty       int64     `gorm:"not null" json:"qty"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
