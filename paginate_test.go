package docserve_test

import (
	"testing"

	"github.com/docserve/docserve"
	"github.com/stretchr/testify/assert"
)

func TestPaginate(t *testing.T) {
	t.Parallel()

	t.Run("first page of 500 lines with default page size", func(t *testing.T) {
		t.Parallel()

		info := docserve.Paginate(500, 1, docserve.DefaultPageSize)

		assert.Equal(t, 3, info.TotalPages)
		assert.Equal(t, 1, info.Page)
		assert.Equal(t, 0, info.Offset)
		assert.Equal(t, 200, info.Count)
	})

	t.Run("last page holds the remainder", func(t *testing.T) {
		t.Parallel()

		info := docserve.Paginate(500, 3, 200)

		assert.Equal(t, 3, info.Page)
		assert.Equal(t, 400, info.Offset)
		assert.Equal(t, 100, info.Count)
	})

	t.Run("out of range page clamps down", func(t *testing.T) {
		t.Parallel()

		info := docserve.Paginate(100, 999, 200)

		assert.Equal(t, 1, info.Page)
		assert.Equal(t, 1, info.TotalPages)
		assert.Equal(t, 100, info.Count)
	})

	t.Run("zero or negative page clamps up", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, 1, docserve.Paginate(100, 0, 50).Page)
		assert.Equal(t, 1, docserve.Paginate(100, -3, 50).Page)
	})

	t.Run("empty document has one page with zero lines", func(t *testing.T) {
		t.Parallel()

		info := docserve.Paginate(0, 1, 200)

		assert.Equal(t, 1, info.TotalPages)
		assert.Equal(t, 1, info.Page)
		assert.Equal(t, 0, info.Count)
	})

	t.Run("total pages is at least 1 for any input", func(t *testing.T) {
		t.Parallel()

		for _, totalLines := range []int{0, 1, 199, 200, 201, 10000} {
			for _, pageSize := range []int{-1, 0, 1, 200, 500, 9999} {
				info := docserve.Paginate(totalLines, 1, pageSize)
				assert.GreaterOrEqual(t, info.TotalPages, 1)
				assert.GreaterOrEqual(t, info.Page, 1)
				assert.LessOrEqual(t, info.Page, info.TotalPages)
			}
		}
	})
}

func TestClampPageSize(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1, docserve.ClampPageSize(0))
	assert.Equal(t, 1, docserve.ClampPageSize(-10))
	assert.Equal(t, 200, docserve.ClampPageSize(200))
	assert.Equal(t, 500, docserve.ClampPageSize(501))
	assert.Equal(t, 500, docserve.ClampPageSize(100000))
}

func TestResolvePageSize(t *testing.T) {
	t.Parallel()

	assert.Equal(t, docserve.DefaultPageSize, docserve.ResolvePageSize(0))
	assert.Equal(t, 1, docserve.ResolvePageSize(-5))
	assert.Equal(t, 500, docserve.ResolvePageSize(700))
	assert.Equal(t, 42, docserve.ResolvePageSize(42))
}

func TestPaginateRange(t *testing.T) {
	t.Parallel()

	t.Run("end page defaults to start page", func(t *testing.T) {
		t.Parallel()

		info := docserve.PaginateRange(500, 2, 0, 200)

		assert.Equal(t, 2, info.StartPage)
		assert.Equal(t, 2, info.EndPage)
		assert.Equal(t, 200, info.Offset)
		assert.Equal(t, 200, info.Count)
	})

	t.Run("spans start of startPage to end of endPage", func(t *testing.T) {
		t.Parallel()

		info := docserve.PaginateRange(500, 1, 2, 200)

		assert.Equal(t, 0, info.Offset)
		assert.Equal(t, 400, info.Count)
	})

	t.Run("end page floored to start page after clamping", func(t *testing.T) {
		t.Parallel()

		info := docserve.PaginateRange(500, 3, 1, 200)

		assert.Equal(t, 3, info.StartPage)
		assert.Equal(t, 3, info.EndPage)
		assert.Equal(t, 400, info.Offset)
		assert.Equal(t, 100, info.Count)
	})

	t.Run("both pages clamp independently", func(t *testing.T) {
		t.Parallel()

		info := docserve.PaginateRange(100, -1, 999, 200)

		assert.Equal(t, 1, info.StartPage)
		assert.Equal(t, 1, info.EndPage)
		assert.Equal(t, 100, info.Count)
	})
}

func TestPageFor(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1, docserve.PageFor(1, 200, 3))
	assert.Equal(t, 1, docserve.PageFor(200, 200, 3))
	assert.Equal(t, 2, docserve.PageFor(201, 200, 3))
	assert.Equal(t, 3, docserve.PageFor(999, 200, 3))
	assert.Equal(t, 1, docserve.PageFor(-10, 200, 3))
}
