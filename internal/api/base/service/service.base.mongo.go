// Package basesvc cung cấp service CRUD generic trên một collection MongoDB.
// Mọi service domain nhúng BaseServiceMongoImpl và chỉ viết thêm nghiệp vụ riêng.
package basesvc

import (
	"context"
	"reflect"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/cuongthieu-itme/product-workflow-sub001/internal/api/base/models"
	"github.com/cuongthieu-itme/product-workflow-sub001/internal/common"
)

// BaseServiceMongo interface CRUD chung cho một model T
type BaseServiceMongo[T any] interface {
	// Create
	InsertOne(ctx context.Context, data T) (T, error)
	InsertMany(ctx context.Context, data []T) ([]T, error)

	// Read
	Find(ctx context.Context, filter interface{}, opts *options.FindOptions) ([]T, error)
	FindOne(ctx context.Context, filter interface{}, opts *options.FindOneOptions) (T, error)
	FindOneById(ctx context.Context, id interface{}) (T, error)
	FindManyByIds(ctx context.Context, ids []interface{}) ([]T, error)
	FindWithPagination(ctx context.Context, filter interface{}, page, limit int64, opts *options.FindOptions) (*basemodels.PaginateResult[T], error)

	// Update
	UpdateOne(ctx context.Context, filter interface{}, update interface{}) (T, error)
	UpdateMany(ctx context.Context, filter interface{}, update interface{}) (int64, error)
	UpdateById(ctx context.Context, id interface{}, update interface{}) (T, error)
	FindOneAndUpdate(ctx context.Context, filter interface{}, update interface{}, opts *options.FindOneAndUpdateOptions) (T, error)

	// Delete
	DeleteOne(ctx context.Context, filter interface{}) error
	DeleteMany(ctx context.Context, filter interface{}) (int64, error)
	DeleteById(ctx context.Context, id interface{}) error
	FindOneAndDelete(ctx context.Context, filter interface{}) (T, error)

	// Other
	CountDocuments(ctx context.Context, filter interface{}) (int64, error)
	Distinct(ctx context.Context, fieldName string, filter interface{}) ([]interface{}, error)
	Upsert(ctx context.Context, filter interface{}, data T) (T, error)
	UpsertMany(ctx context.Context, filter interface{}, data []T) ([]T, error)
	DocumentExists(ctx context.Context, filter interface{}) (bool, error)
}

// BaseServiceMongoImpl triển khai BaseServiceMongo trên một *mongo.Collection
type BaseServiceMongoImpl[T any] struct {
	collection *mongo.Collection
}

// NewBaseServiceMongo tạo service CRUD cho collection cho trước
func NewBaseServiceMongo[T any](collection *mongo.Collection) *BaseServiceMongoImpl[T] {
	return &BaseServiceMongoImpl[T]{collection: collection}
}

// Collection trả về collection đang dùng (cho các truy vấn đặc thù của domain)
func (s *BaseServiceMongoImpl[T]) Collection() *mongo.Collection {
	return s.collection
}

// touchTimestamps gán CreatedAt/UpdatedAt (UnixMilli) nếu model có các field này.
// isNew = true thì gán cả CreatedAt.
func touchTimestamps[T any](data *T, isNew bool) {
	v := reflect.ValueOf(data).Elem()
	if v.Kind() != reflect.Struct {
		return
	}

	now := time.Now().UnixMilli()
	if isNew {
		if f := v.FieldByName("CreatedAt"); f.IsValid() && f.CanSet() && f.Kind() == reflect.Int64 {
			f.SetInt(now)
		}
	}
	if f := v.FieldByName("UpdatedAt"); f.IsValid() && f.CanSet() && f.Kind() == reflect.Int64 {
		f.SetInt(now)
	}
}

// normalizeFilter trả về filter rỗng hợp lệ khi caller truyền nil
func normalizeFilter(filter interface{}) interface{} {
	if filter == nil {
		return bson.M{}
	}
	return filter
}

// normalizeUpdate bọc update vào $set nếu caller truyền thẳng document,
// đồng thời luôn đẩy updatedAt lên thời điểm hiện tại.
func normalizeUpdate(update interface{}) interface{} {
	now := time.Now().UnixMilli()

	if m, ok := update.(bson.M); ok {
		hasOperator := false
		for k := range m {
			if len(k) > 0 && k[0] == '$' {
				hasOperator = true
				break
			}
		}
		if hasOperator {
			set, ok := m["$set"].(bson.M)
			if !ok {
				set = bson.M{}
			}
			set["updatedAt"] = now
			m["$set"] = set
			return m
		}
		m["updatedAt"] = now
		return bson.M{"$set": m}
	}

	return update
}

// ==================== Create ====================

// InsertOne thêm một document, tự gán createdAt/updatedAt
func (s *BaseServiceMongoImpl[T]) InsertOne(ctx context.Context, data T) (T, error) {
	var zero T

	touchTimestamps(&data, true)

	result, err := s.collection.InsertOne(ctx, data)
	if err != nil {
		return zero, common.ConvertMongoError(err)
	}

	return s.FindOneById(ctx, result.InsertedID)
}

// InsertMany thêm nhiều document, tự gán createdAt/updatedAt từng document
func (s *BaseServiceMongoImpl[T]) InsertMany(ctx context.Context, data []T) ([]T, error) {
	if len(data) == 0 {
		return nil, common.NewValidationError("Danh sách dữ liệu rỗng", nil)
	}

	docs := make([]interface{}, 0, len(data))
	for i := range data {
		touchTimestamps(&data[i], true)
		docs = append(docs, data[i])
	}

	result, err := s.collection.InsertMany(ctx, docs)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}

	return s.FindManyByIds(ctx, result.InsertedIDs)
}

// ==================== Read ====================

// Find tìm tất cả document khớp filter
func (s *BaseServiceMongoImpl[T]) Find(ctx context.Context, filter interface{}, opts *options.FindOptions) ([]T, error) {
	cursor, err := s.collection.Find(ctx, normalizeFilter(filter), opts)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	var results []T
	if err := cursor.All(ctx, &results); err != nil {
		return nil, common.ConvertMongoError(err)
	}
	return results, nil
}

// FindOne tìm một document khớp filter
func (s *BaseServiceMongoImpl[T]) FindOne(ctx context.Context, filter interface{}, opts *options.FindOneOptions) (T, error) {
	var result T
	err := s.collection.FindOne(ctx, normalizeFilter(filter), opts).Decode(&result)
	if err != nil {
		return result, common.ConvertMongoError(err)
	}
	return result, nil
}

// FindOneById tìm document theo _id
func (s *BaseServiceMongoImpl[T]) FindOneById(ctx context.Context, id interface{}) (T, error) {
	return s.FindOne(ctx, bson.M{"_id": id}, nil)
}

// FindManyByIds tìm nhiều document theo danh sách _id
func (s *BaseServiceMongoImpl[T]) FindManyByIds(ctx context.Context, ids []interface{}) ([]T, error) {
	return s.Find(ctx, bson.M{"_id": bson.M{"$in": ids}}, nil)
}

// FindWithPagination tìm document có phân trang. page bắt đầu từ 1.
func (s *BaseServiceMongoImpl[T]) FindWithPagination(ctx context.Context, filter interface{}, page, limit int64, opts *options.FindOptions) (*basemodels.PaginateResult[T], error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	f := normalizeFilter(filter)

	total, err := s.collection.CountDocuments(ctx, f)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}

	if opts == nil {
		opts = options.Find()
	}
	opts.SetSkip((page - 1) * limit).SetLimit(limit)

	items, err := s.Find(ctx, f, opts)
	if err != nil {
		return nil, err
	}

	totalPage := total / limit
	if total%limit != 0 {
		totalPage++
	}

	return &basemodels.PaginateResult[T]{
		Page:      page,
		Limit:     limit,
		ItemCount: int64(len(items)),
		Items:     items,
		Total:     total,
		TotalPage: totalPage,
	}, nil
}

// ==================== Update ====================

// UpdateOne cập nhật một document khớp filter và trả về bản sau cập nhật
func (s *BaseServiceMongoImpl[T]) UpdateOne(ctx context.Context, filter interface{}, update interface{}) (T, error) {
	return s.FindOneAndUpdate(ctx, filter, update, nil)
}

// UpdateMany cập nhật nhiều document, trả về số document đã sửa
func (s *BaseServiceMongoImpl[T]) UpdateMany(ctx context.Context, filter interface{}, update interface{}) (int64, error) {
	result, err := s.collection.UpdateMany(ctx, normalizeFilter(filter), normalizeUpdate(update))
	if err != nil {
		return 0, common.ConvertMongoError(err)
	}
	return result.ModifiedCount, nil
}

// UpdateById cập nhật document theo _id
func (s *BaseServiceMongoImpl[T]) UpdateById(ctx context.Context, id interface{}, update interface{}) (T, error) {
	return s.UpdateOne(ctx, bson.M{"_id": id}, update)
}

// FindOneAndUpdate cập nhật và trả về document sau cập nhật
func (s *BaseServiceMongoImpl[T]) FindOneAndUpdate(ctx context.Context, filter interface{}, update interface{}, opts *options.FindOneAndUpdateOptions) (T, error) {
	var result T

	if opts == nil {
		opts = options.FindOneAndUpdate()
	}
	opts.SetReturnDocument(options.After)

	err := s.collection.FindOneAndUpdate(ctx, normalizeFilter(filter), normalizeUpdate(update), opts).Decode(&result)
	if err != nil {
		return result, common.ConvertMongoError(err)
	}
	return result, nil
}

// ==================== Delete ====================

// DeleteOne xóa một document khớp filter
func (s *BaseServiceMongoImpl[T]) DeleteOne(ctx context.Context, filter interface{}) error {
	result, err := s.collection.DeleteOne(ctx, normalizeFilter(filter))
	if err != nil {
		return common.ConvertMongoError(err)
	}
	if result.DeletedCount == 0 {
		return common.ErrNotFound
	}
	return nil
}

// DeleteMany xóa nhiều document, trả về số document đã xóa
func (s *BaseServiceMongoImpl[T]) DeleteMany(ctx context.Context, filter interface{}) (int64, error) {
	result, err := s.collection.DeleteMany(ctx, normalizeFilter(filter))
	if err != nil {
		return 0, common.ConvertMongoError(err)
	}
	return result.DeletedCount, nil
}

// DeleteById xóa document theo _id
func (s *BaseServiceMongoImpl[T]) DeleteById(ctx context.Context, id interface{}) error {
	return s.DeleteOne(ctx, bson.M{"_id": id})
}

// FindOneAndDelete xóa và trả về document vừa xóa
func (s *BaseServiceMongoImpl[T]) FindOneAndDelete(ctx context.Context, filter interface{}) (T, error) {
	var result T
	err := s.collection.FindOneAndDelete(ctx, normalizeFilter(filter)).Decode(&result)
	if err != nil {
		return result, common.ConvertMongoError(err)
	}
	return result, nil
}

// ==================== Other ====================

// CountDocuments đếm số document khớp filter
func (s *BaseServiceMongoImpl[T]) CountDocuments(ctx context.Context, filter interface{}) (int64, error) {
	count, err := s.collection.CountDocuments(ctx, normalizeFilter(filter))
	if err != nil {
		return 0, common.ConvertMongoError(err)
	}
	return count, nil
}

// Distinct lấy danh sách giá trị khác nhau của một field
func (s *BaseServiceMongoImpl[T]) Distinct(ctx context.Context, fieldName string, filter interface{}) ([]interface{}, error) {
	values, err := s.collection.Distinct(ctx, fieldName, normalizeFilter(filter))
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	return values, nil
}

// Upsert cập nhật document khớp filter, tạo mới nếu chưa có
func (s *BaseServiceMongoImpl[T]) Upsert(ctx context.Context, filter interface{}, data T) (T, error) {
	var result T

	touchTimestamps(&data, false)

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	err := s.collection.FindOneAndUpdate(ctx, normalizeFilter(filter), bson.M{"$set": data}, opts).Decode(&result)
	if err != nil {
		return result, common.ConvertMongoError(err)
	}
	return result, nil
}

// UpsertMany upsert từng phần tử theo filter chung (best-effort, dừng ở lỗi đầu tiên)
func (s *BaseServiceMongoImpl[T]) UpsertMany(ctx context.Context, filter interface{}, data []T) ([]T, error) {
	results := make([]T, 0, len(data))
	for _, item := range data {
		result, err := s.Upsert(ctx, filter, item)
		if err != nil {
			return results, err
		}
		results = append(results, result)
	}
	return results, nil
}

// DocumentExists kiểm tra có document nào khớp filter không
func (s *BaseServiceMongoImpl[T]) DocumentExists(ctx context.Context, filter interface{}) (bool, error) {
	count, err := s.collection.CountDocuments(ctx, normalizeFilter(filter), options.Count().SetLimit(1))
	if err != nil {
		return false, common.ConvertMongoError(err)
	}
	return count > 0, nil
}
