package repository

import (
	"errors"
	"time"

	"github.com/harber-marketplace/harber-client/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SnapshotRepository 客户端购物车快照存储接口
type SnapshotRepository interface {
	Load(profile string) (*models.CartSnapshot, error)
	Save(profile, payload string) error
	Clear(profile string) error
}

// GormSnapshotRepository GORM 实现（本地 SQLite 文件）
type GormSnapshotRepository struct {
	db *gorm.DB
}

// NewSnapshotRepository 创建快照仓库并迁移快照表
func NewSnapshotRepository(db *gorm.DB) (*GormSnapshotRepository, error) {
	if db == nil {
		return nil, errors.New("snapshot db is nil")
	}
	if err := db.AutoMigrate(&models.CartSnapshot{}); err != nil {
		return nil, err
	}
	return &GormSnapshotRepository{db: db}, nil
}

// Load 读取快照，不存在时返回 nil
func (r *GormSnapshotRepository) Load(profile string) (*models.CartSnapshot, error) {
	var snapshot models.CartSnapshot
	err := r.db.Where("profile = ?", profile).First(&snapshot).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &snapshot, nil
}

// Save 覆盖写入快照（last writer wins）
func (r *GormSnapshotRepository) Save(profile, payload string) error {
	snapshot := models.CartSnapshot{
		Profile:   profile,
		Payload:   payload,
		UpdatedAt: time.Now(),
	}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "profile"}},
		DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
	}).Create(&snapshot).Error
}

// Clear 删除快照
func (r *GormSnapshotRepository) Clear(profile string) error {
	return r.db.Where("profile = ?", profile).Delete(&models.CartSnapshot{}).Error
}
