// 手动触发数据库迁移与种子数据初始化
//
// 迁移和种子已集成在主应用启动流程中，此脚本用于在不启动
// HTTP 服务的情况下重建表结构和基础数据（首次部署或测试环境重置）。
//
// 用法: go run scripts/seed.go

package main

import (
	"greencampus_backend/internal/config"
	"greencampus_backend/pkg/database"
	"greencampus_backend/pkg/logger"
	"log"
)

func main() {
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("无法读取配置文件: %v", err)
	}

	// release 模式下也强制执行迁移
	cfg.ForceMigrate = true

	logger.InitLogger(cfg)

	if _, err := database.InitDB(cfg); err != nil {
		log.Fatalf("数据库初始化失败: %v", err)
	}

	log.Println("迁移与种子数据初始化完成")
}
