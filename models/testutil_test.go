package models

import (
	"testing"

	"blogapi/config"
	"blogapi/global"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB 用内存sqlite替换全局连接，每个测试拿到独立的空库
func setupTestDB(t *testing.T) {
	t.Helper()

	global.Log = zap.NewNop().Sugar()
	global.Config = &config.Config{}

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("打开测试数据库失败: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("获取底层连接失败: %v", err)
	}
	// 内存库随连接销毁，限制为单连接避免表丢失
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&UserModel{},
		&ArticleModel{},
		&ArticleTagModel{},
		&CommentModel{},
		&CategoryModel{},
		&TagModel{},
	); err != nil {
		t.Fatalf("建表失败: %v", err)
	}

	global.DB = db
	t.Cleanup(func() {
		sqlDB.Close()
		global.DB = nil
	})
}
