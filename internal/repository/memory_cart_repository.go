package repository

import (
	"context"
	"sync"
	"time"

	"github.com/irodori/backend/internal/model"
)

// MemoryCartRepository は CartRepository のインメモリ実装。
// カートはセッション限りなので DB には置かない。全アクセスを単一の
// ミューテックスで直列化する（同一カートへの並行書き込みを作らない）。
type MemoryCartRepository struct {
	mu    sync.Mutex
	carts map[string][]*model.CartItem
}

// NewMemoryCartRepository は MemoryCartRepository を生成する
func NewMemoryCartRepository() *MemoryCartRepository {
	return &MemoryCartRepository{carts: make(map[string][]*model.CartItem)}
}

// List はカート内アイテムを追加順で返す
func (r *MemoryCartRepository) List(ctx context.Context, token string) ([]*model.CartItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	items := r.carts[token]
	out := make([]*model.CartItem, len(items))
	for i, item := range items {
		copied := *item
		out[i] = &copied
	}
	return out, nil
}

// Add はアイテムをカート末尾に追加する
func (r *MemoryCartRepository) Add(ctx context.Context, token string, item *model.CartItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	copied := *item
	if copied.CreatedAt.IsZero() {
		copied.CreatedAt = time.Now()
	}
	r.carts[token] = append(r.carts[token], &copied)
	return nil
}

// Remove は ID 指定でアイテムを削除する。最後の1件を消すとカート自体も消える。
func (r *MemoryCartRepository) Remove(ctx context.Context, token string, itemID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	items := r.carts[token]
	for i, item := range items {
		if item.ID == itemID {
			r.carts[token] = append(items[:i], items[i+1:]...)
			if len(r.carts[token]) == 0 {
				delete(r.carts, token)
			}
			return nil
		}
	}
	return ErrNotFound
}
