package main

import (
	"github.com/sirupsen/logrus"

	"github.com/cuongthieu-itme/product-workflow-sub001/internal/global"
)

// InitRegistry đăng ký toàn bộ collection vào registry dùng chung.
// Service chỉ lấy collection qua registry, không giữ tham chiếu database trực tiếp.
func InitRegistry() {
	db := global.MongoDB_Session.Database(global.MongoDB_ServerConfig.MongoDB_DBName)

	for _, name := range global.GetColNames() {
		if err := global.RegistryCollections.Register(name, db.Collection(name)); err != nil {
			logrus.Fatalf("Failed to register collection %s: %v", name, err)
		}
	}

	logrus.WithFields(logrus.Fields{
		"count":       len(global.GetColNames()),
		"collections": global.RegistryCollections.Names(),
	}).Info("Registered collections")
}
