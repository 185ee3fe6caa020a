package model

import "time"

// TokenBlacklist holds revoked session ids until the token would have expired anyway.
type TokenBlacklist struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	JTI       string    `gorm:"column:jti;size:64;not null;uniqueIndex" json:"jti"`
	ExpiredAt time.Time `gorm:"not null;index" json:"expired_at"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (TokenBlacklist) TableName() string {
	return "token_blacklist"
}
