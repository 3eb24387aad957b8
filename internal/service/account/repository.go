package account

import (
	"context"
	"errors"
	"sync"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"wallet-mapper/internal/model"
)

var ErrAccountNotFound = errors.New("账户不存在")

// Repository 已知公钥的账户目录
type Repository interface {
	Find(ctx context.Context, addr model.Address) (*model.KnownAccount, error)
	Save(ctx context.Context, acc *model.KnownAccount) error
}

// MemoryRepository 进程内实现, 用于开发环境和测试
type MemoryRepository struct {
	mu       sync.RWMutex
	accounts map[model.Address]model.KnownAccount
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{accounts: make(map[model.Address]model.KnownAccount)}
}

func (r *MemoryRepository) Find(ctx context.Context, addr model.Address) (*model.KnownAccount, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	acc, ok := r.accounts[addr]
	if !ok {
		return nil, ErrAccountNotFound
	}
	return &acc, nil
}

func (r *MemoryRepository) Save(ctx context.Context, acc *model.KnownAccount) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *acc
	if cp.UpdatedAt.IsZero() {
		cp.UpdatedAt = time.Now()
	}
	r.accounts[model.Address(cp.Address)] = cp
	return nil
}

// GormRepository 基于 PostgreSQL 的实现, 表结构见 migrations
type GormRepository struct {
	db *gorm.DB
}

func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

func (r *GormRepository) Find(ctx context.Context, addr model.Address) (*model.KnownAccount, error) {
	var acc model.KnownAccount
	err := r.db.WithContext(ctx).Where("address = ?", addr.String()).First(&acc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrAccountNotFound
	}
	if err != nil {
		return nil, err
	}
	return &acc, nil
}

// Save 按地址 upsert, 公钥变化时覆盖
func (r *GormRepository) Save(ctx context.Context, acc *model.KnownAccount) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "address"}},
		DoUpdates: clause.AssignmentColumns([]string{"public_key", "updated_at"}),
	}).Create(acc).Error
}
