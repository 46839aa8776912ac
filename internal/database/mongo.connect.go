// Package database quản lý kết nối MongoDB và khởi tạo collection/index.
package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// GetInstance tạo kết nối MongoDB với connection pool và kiểm tra bằng ping
func GetInstance(connectionURI string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	clientOpts := options.Client().
		ApplyURI(connectionURI).
		SetMinPoolSize(10).
		SetMaxPoolSize(50).
		SetMaxConnIdleTime(5 * time.Minute).
		SetConnectTimeout(10 * time.Second).
		SetServerSelectionTimeout(10 * time.Second)

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("không kết nối được MongoDB: %w", err)
	}

	// Ping để chắc chắn kết nối hoạt động trước khi server nhận request
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("không ping được MongoDB: %w", err)
	}

	return client, nil
}

// CloseInstance đóng kết nối MongoDB khi server tắt
func CloseInstance(client *mongo.Client) error {
	if client == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return client.Disconnect(ctx)
}
