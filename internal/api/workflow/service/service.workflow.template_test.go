package workflowsvc

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
)

func TestWithVersionBump_MoiLanGhiTangVersionDungMot(t *testing.T) {
	update := withVersionBump(bson.M{"steps": nil, "lastModifiedBy": "an"})

	inc, ok := update["$inc"].(bson.M)
	if !ok {
		t.Fatalf("update thiếu $inc: %v", update)
	}
	if inc["version"] != 1 {
		t.Errorf("$inc version = %v, muốn 1", inc["version"])
	}

	set, ok := update["$set"].(bson.M)
	if !ok {
		t.Fatalf("update thiếu $set: %v", update)
	}
	if set["lastModifiedBy"] != "an" {
		t.Errorf("$set mất dữ liệu gốc: %v", set)
	}
	// version chỉ được tăng qua $inc, set trực tiếp sẽ triệt tiêu việc tăng
	if _, have := set["version"]; have {
		t.Error("$set không được chứa version")
	}
}

func TestWithVersionBump_VersionTangNghiemNgatQuaNhieuLanGhi(t *testing.T) {
	// Mô phỏng một chuỗi thao tác ghi liên tiếp trên cùng template
	version := int64(1)
	for i := 0; i < 5; i++ {
		update := withVersionBump(bson.M{"lastModifiedBy": "an"})
		before := version
		version += int64(update["$inc"].(bson.M)["version"].(int))
		if version <= before {
			t.Fatalf("version không tăng nghiêm ngặt: %d -> %d", before, version)
		}
	}
	if version != 6 {
		t.Errorf("sau 5 lần ghi version = %d, muốn 6", version)
	}
}
