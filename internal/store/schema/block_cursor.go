package schema

import "time"

// BlockCursor checkpoints the last registry block the emitter has
// processed for one chain, so a restart resumes instead of replaying
// from the start block.
type BlockCursor struct {
	Chain       string    `gorm:"primaryKey;type:text"`
	BlockNumber uint64    `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

func (BlockCursor) TableName() string {
	return "block_cursors"
}
