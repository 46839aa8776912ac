// Package registry cung cấp một registry generic thread-safe,
// dùng để quản lý các tài nguyên dùng chung theo tên (collection, client, ...).
package registry

import (
	"fmt"
	"sync"
)

// Registry quản lý các item theo tên, an toàn khi truy cập đồng thời
type Registry[T any] struct {
	mu    sync.RWMutex
	items map[string]T
}

// NewRegistry tạo mới một Registry
func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{
		items: make(map[string]T),
	}
}

// Register đăng ký một item với tên cho trước, lỗi nếu tên đã tồn tại
func (r *Registry[T]) Register(name string, item T) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[name]; exists {
		return fmt.Errorf("item '%s' đã được đăng ký", name)
	}
	r.items[name] = item
	return nil
}

// Get lấy item theo tên
func (r *Registry[T]) Get(name string) (T, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, exists := r.items[name]
	return item, exists
}

// Names trả về danh sách tên đã đăng ký
func (r *Registry[T]) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.items))
	for name := range r.items {
		names = append(names, name)
	}
	return names
}
