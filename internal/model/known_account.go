package model

import "time"

// KnownAccount 已观测到公钥的账户目录
type KnownAccount struct {
	Address   string    `gorm:"type:varchar(64);primaryKey" json:"address"`
	PublicKey string    `gorm:"type:varchar(66);not null" json:"public_key"` // 压缩公钥 hex
	UpdatedAt time.Time `json:"updated_at"`
}

func (KnownAccount) TableName() string {
	return "known_accounts"
}
