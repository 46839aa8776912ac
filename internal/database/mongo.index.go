package database

import (
	"context"
	"fmt"
	"reflect"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureDatabaseAndCollections tạo các collection còn thiếu trong database.
// Mongo tự tạo collection khi ghi, nhưng tạo sẵn để index được dựng ngay khi bật server.
func EnsureDatabaseAndCollections(ctx context.Context, client *mongo.Client, dbName string, colNames []string) error {
	db := client.Database(dbName)

	existing, err := db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("không liệt kê được collection: %w", err)
	}
	existingSet := make(map[string]bool, len(existing))
	for _, name := range existing {
		existingSet[name] = true
	}

	for _, name := range colNames {
		if name == "" || existingSet[name] {
			continue
		}
		if err := db.CreateCollection(ctx, name); err != nil {
			return fmt.Errorf("không tạo được collection %s: %w", name, err)
		}
	}
	return nil
}

// CreateIndexes dựng index cho collection dựa trên struct tag `index` của model.
// Các giá trị hỗ trợ:
//   - index:"single"        -> index tăng dần trên field
//   - index:"single:-1"     -> index giảm dần
//   - index:"unique"        -> index duy nhất (sparse để bỏ qua giá trị rỗng)
//   - index:"text"          -> text index
//
// Tên field lấy từ bson tag.
func CreateIndexes(ctx context.Context, col *mongo.Collection, model interface{}) error {
	t := reflect.TypeOf(model)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return fmt.Errorf("model phải là struct, nhận được %s", t.Kind())
	}

	var indexModels []mongo.IndexModel
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		indexTag := field.Tag.Get("index")
		if indexTag == "" {
			continue
		}

		bsonName := strings.Split(field.Tag.Get("bson"), ",")[0]
		if bsonName == "" || bsonName == "-" || bsonName == "_id" {
			continue
		}

		switch {
		case indexTag == "single":
			indexModels = append(indexModels, mongo.IndexModel{
				Keys: bson.D{{Key: bsonName, Value: 1}},
			})
		case indexTag == "single:-1":
			indexModels = append(indexModels, mongo.IndexModel{
				Keys: bson.D{{Key: bsonName, Value: -1}},
			})
		case indexTag == "unique":
			indexModels = append(indexModels, mongo.IndexModel{
				Keys:    bson.D{{Key: bsonName, Value: 1}},
				Options: options.Index().SetUnique(true).SetSparse(true),
			})
		case indexTag == "text":
			indexModels = append(indexModels, mongo.IndexModel{
				Keys: bson.D{{Key: bsonName, Value: "text"}},
			})
		}
	}

	if len(indexModels) == 0 {
		return nil
	}

	if _, err := col.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("không tạo được index cho %s: %w", col.Name(), err)
	}
	return nil
}
