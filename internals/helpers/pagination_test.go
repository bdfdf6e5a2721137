// file: internals/helpers/pagination_test.go
package helper

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func paramsFor(t *testing.T, target string, opt Options) Params {
	t.Helper()

	app := fiber.New()
	var got Params
	app.Get("/list", func(c *fiber.Ctx) error {
		got = ParseFiber(c, "created_at", "desc", opt)
		return c.SendString("ok")
	})

	resp, err := app.Test(httptest.NewRequest("GET", target, nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	return got
}

func TestParseFiberDefaults(t *testing.T) {
	p := paramsFor(t, "/list", DefaultOpts)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 25, p.PerPage)
	assert.Equal(t, "created_at", p.SortBy)
	assert.Equal(t, "desc", p.SortOrder)
}

func TestParseFiberCapsPerPage(t *testing.T) {
	p := paramsFor(t, "/list?per_page=9999", DefaultOpts)
	assert.Equal(t, 200, p.PerPage)
}

func TestParseFiberAllRequiresOptIn(t *testing.T) {
	p := paramsFor(t, "/list?per_page=all", DefaultOpts)
	assert.False(t, p.All)
	assert.Equal(t, 25, p.PerPage)

	p = paramsFor(t, "/list?per_page=all", ExportOpts)
	assert.True(t, p.All)
	assert.Equal(t, 10_000, p.PerPage)
	assert.Equal(t, 1, p.Page)
}

func TestOffset(t *testing.T) {
	p := paramsFor(t, "/list?page=3&per_page=20", DefaultOpts)
	assert.Equal(t, 40, p.Offset())
	assert.Equal(t, 20, p.Limit())
}

func TestSafeOrderClauseWhitelist(t *testing.T) {
	allowed := map[string]string{"created_at": "created_at", "name": "full_name"}

	p := paramsFor(t, "/list?sort_by=name&order=asc", DefaultOpts)
	clause, err := p.SafeOrderClause(allowed, "created_at")
	require.NoError(t, err)
	assert.Equal(t, "ORDER BY full_name ASC", clause)

	// unknown keys fall back to the default column
	p = paramsFor(t, "/list?sort_by=password", DefaultOpts)
	clause, err = p.SafeOrderClause(allowed, "created_at")
	require.NoError(t, err)
	assert.Equal(t, "ORDER BY created_at DESC", clause)
}

func TestBuildMeta(t *testing.T) {
	p := Params{Page: 2, PerPage: 10}
	meta := BuildMeta(35, p)

	assert.Equal(t, int64(35), meta.Total)
	assert.Equal(t, 4, meta.TotalPages)
	assert.True(t, meta.HasNext)
	assert.True(t, meta.HasPrev)
	require.NotNil(t, meta.NextPage)
	require.NotNil(t, meta.PrevPage)
	assert.Equal(t, 3, *meta.NextPage)
	assert.Equal(t, 1, *meta.PrevPage)
}

func TestBuildMetaEmpty(t *testing.T) {
	meta := BuildMeta(0, Params{Page: 1, PerPage: 25})
	assert.Zero(t, meta.TotalPages)
	assert.False(t, meta.HasNext)
	assert.False(t, meta.HasPrev)
}
