package registry

import (
	"sort"
	"testing"
)

func TestRegistry_RegisterVaGet(t *testing.T) {
	r := NewRegistry[int]()

	if err := r.Register("a", 1); err != nil {
		t.Fatalf("lỗi không mong đợi: %v", err)
	}
	if err := r.Register("a", 2); err == nil {
		t.Error("đăng ký trùng tên phải trả về lỗi")
	}

	got, ok := r.Get("a")
	if !ok || got != 1 {
		t.Errorf("Get(a) = %d, %v; muốn 1, true", got, ok)
	}
	if _, ok := r.Get("khong-co"); ok {
		t.Error("tên chưa đăng ký không được trả về item")
	}
}

func TestRegistry_Names(t *testing.T) {
	r := NewRegistry[int]()
	_ = r.Register("b", 2)
	_ = r.Register("a", 1)

	names := r.Names()
	sort.Strings(names)
	if len(names) != 2 || names[0] != "a" || names[1] != "b" {
		t.Errorf("Names() = %v, muốn [a b]", names)
	}
}
