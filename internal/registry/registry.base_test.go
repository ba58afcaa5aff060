// Package registry - Test registry generic: đăng ký, ghi đè, lấy, xóa.
package registry

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistry_RegisterVaGet(t *testing.T) {
	r := NewRegistry[string]()

	isNew, err := r.Register("a", "giá trị a")
	assert.NoError(t, err)
	assert.True(t, isNew, "đăng ký lần đầu phải là item mới")

	isNew, err = r.Register("a", "giá trị a2")
	assert.NoError(t, err)
	assert.False(t, isNew, "đăng ký lại cùng tên phải là ghi đè")

	item, exists := r.Get("a")
	assert.True(t, exists)
	assert.Equal(t, "giá trị a2", item, "Get phải trả về giá trị mới nhất")

	_, exists = r.Get("không tồn tại")
	assert.False(t, exists)
}

func TestRegistry_TenRongBiTuChoi(t *testing.T) {
	r := NewRegistry[int]()

	_, err := r.Register("", 1)
	assert.Error(t, err, "tên rỗng phải bị từ chối")

	_, err = r.GetOrCreate("", func() (int, error) { return 1, nil })
	assert.Error(t, err)
}

func TestRegistry_GetOrCreate(t *testing.T) {
	r := NewRegistry[int]()
	calls := 0

	v, err := r.GetOrCreate("x", func() (int, error) {
		calls++
		return 42, nil
	})
	assert.NoError(t, err)
	assert.Equal(t, 42, v)

	// Lần hai trả về item đã có, không gọi creator nữa
	v, err = r.GetOrCreate("x", func() (int, error) {
		calls++
		return 99, nil
	})
	assert.NoError(t, err)
	assert.Equal(t, 42, v)
	assert.Equal(t, 1, calls, "creator chỉ được gọi một lần")
}

func TestRegistry_ClearVaClearAll(t *testing.T) {
	r := NewRegistry[string]()
	r.Register("a", "1")
	r.Register("b", "2")

	deleted, err := r.Clear("a", nil)
	assert.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = r.Clear("a", nil)
	assert.NoError(t, err)
	assert.False(t, deleted, "xóa lần hai phải trả về false")

	count, err := r.ClearAll(nil)
	assert.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestRegistry_AnToanDongThoi(t *testing.T) {
	r := NewRegistry[int]()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			r.Register(fmt.Sprintf("key-%d", n), n)
			r.Get(fmt.Sprintf("key-%d", n))
		}(i)
	}
	wg.Wait()

	count, err := r.ClearAll(nil)
	assert.NoError(t, err)
	assert.Equal(t, 50, count)
}
