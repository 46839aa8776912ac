package basehdl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestParseOrderedSort_GiuThuTuKhaiBao(t *testing.T) {
	sort, err := parseOrderedSort(`{"createdAt": -1, "name": 1}`)
	require.NoError(t, err)
	require.Len(t, sort, 2)

	// Thứ tự field sort quyết định thứ tự kết quả, phải giữ nguyên như client khai báo
	assert.Equal(t, bson.E{Key: "createdAt", Value: int64(-1)}, sort[0])
	assert.Equal(t, bson.E{Key: "name", Value: int64(1)}, sort[1])
}

func TestParseOrderedSort_GiaTriKhacMotVaTruMot(t *testing.T) {
	_, err := parseOrderedSort(`{"name": 2}`)
	assert.Error(t, err)

	_, err = parseOrderedSort(`{"name": "asc"}`)
	assert.Error(t, err)
}

func TestParseOrderedSort_KhongPhaiObject(t *testing.T) {
	_, err := parseOrderedSort(`["name"]`)
	assert.Error(t, err)
}

func TestTransformInputToModel_CopyFieldTrungTen(t *testing.T) {
	type input struct {
		Name  string
		Count int
	}
	type model struct {
		Name  string
		Count int
		Extra string
	}

	m, err := TransformInputToModel[input, model](input{Name: "abc", Count: 3})
	require.NoError(t, err)
	assert.Equal(t, "abc", m.Name)
	assert.Equal(t, 3, m.Count)
	assert.Empty(t, m.Extra)
}

func TestTransformInputToModel_ChuoiHexSangObjectID(t *testing.T) {
	type input struct {
		OwnerID string
	}
	type model struct {
		OwnerID primitive.ObjectID
	}

	oid := primitive.NewObjectID()
	m, err := TransformInputToModel[input, model](input{OwnerID: oid.Hex()})
	require.NoError(t, err)
	assert.Equal(t, oid, m.OwnerID)

	_, err = TransformInputToModel[input, model](input{OwnerID: "khong-phai-hex"})
	assert.Error(t, err)
}

func TestParseObjectID(t *testing.T) {
	oid := primitive.NewObjectID()

	got, err := parseObjectID(oid.Hex())
	require.NoError(t, err)
	assert.Equal(t, oid, got)

	_, err = parseObjectID("xx")
	assert.Error(t, err)
}
