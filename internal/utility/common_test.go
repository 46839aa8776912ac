package utility

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestValidateEmail(t *testing.T) {
	if err := ValidateEmail("an.nguyen@example.com"); err != nil {
		t.Errorf("email hợp lệ bị từ chối: %v", err)
	}

	for _, bad := range []string{"", "an.nguyen", "an@", "@example.com", "an @example.com"} {
		if err := ValidateEmail(bad); err == nil {
			t.Errorf("email %q phải bị từ chối", bad)
		}
	}
}

func TestString2ObjectID(t *testing.T) {
	oid := primitive.NewObjectID()
	if got := String2ObjectID(oid.Hex()); got != oid {
		t.Errorf("String2ObjectID = %s, muốn %s", got.Hex(), oid.Hex())
	}
	if got := String2ObjectID("khong-phai-hex"); !got.IsZero() {
		t.Errorf("chuỗi không hợp lệ phải trả về NilObjectID, nhận %s", got.Hex())
	}
}

func TestObjectID2String(t *testing.T) {
	oid := primitive.NewObjectID()
	if got := ObjectID2String(oid); got != oid.Hex() {
		t.Errorf("ObjectID2String = %s, muốn %s", got, oid.Hex())
	}
}
