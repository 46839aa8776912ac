package common

import (
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/mongo"
)

func TestIsNotFound(t *testing.T) {
	if !IsNotFound(ErrNotFound) {
		t.Error("ErrNotFound phải là not-found")
	}
	if !IsNotFound(NewNotFoundError("step")) {
		t.Error("NewNotFoundError phải là not-found")
	}
	if !IsNotFound(ConvertMongoError(mongo.ErrNoDocuments)) {
		t.Error("mongo.ErrNoDocuments sau convert phải là not-found")
	}

	// Lỗi kết nối/truy vấn không được nhận nhầm thành not-found
	if IsNotFound(ErrDatabaseConnection) {
		t.Error("lỗi kết nối không phải not-found")
	}
	if IsNotFound(ConvertMongoError(errors.New("socket closed"))) {
		t.Error("lỗi truy vấn chung không phải not-found")
	}
	if IsNotFound(errors.New("lỗi bất kỳ")) {
		t.Error("error thường không phải not-found")
	}
	if IsNotFound(nil) {
		t.Error("nil không phải not-found")
	}
}
