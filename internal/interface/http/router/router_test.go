package router_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	appbook "github.com/xiebiao/bookcatalog/internal/application/book"
	appseller "github.com/xiebiao/bookcatalog/internal/application/seller"
	"github.com/xiebiao/bookcatalog/internal/domain/seller"
	"github.com/xiebiao/bookcatalog/internal/infrastructure/persistence/mysql"
	"github.com/xiebiao/bookcatalog/internal/infrastructure/persistence/mysql/mysqltest"
	"github.com/xiebiao/bookcatalog/internal/infrastructure/persistence/redis"
	"github.com/xiebiao/bookcatalog/internal/interface/http/dto"
	"github.com/xiebiao/bookcatalog/internal/interface/http/handler"
	"github.com/xiebiao/bookcatalog/internal/interface/http/router"
	"github.com/xiebiao/bookcatalog/pkg/password"
	"github.com/xiebiao/bookcatalog/pkg/response"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// newServer 组装完整的HTTP栈：SQLite + miniredis缓存
func newServer(t *testing.T, cache seller.DetailCache) *gin.Engine {
	t.Helper()
	db := mysqltest.NewDB(t)
	tm := mysql.NewTxManager(db)
	sellers := mysql.NewSellerRepository(db)
	books := mysql.NewBookRepository(db)
	hasher := password.NewHasher(bcrypt.MinCost)
	publisher := seller.NopPublisher{}

	sellerHandler := handler.NewSellerHandler(
		appseller.NewCreateSellerUseCase(sellers, tm, hasher, publisher),
		appseller.NewListSellersUseCase(sellers, tm),
		appseller.NewGetSellerUseCase(sellers, books, tm, cache),
		appseller.NewUpdateSellerUseCase(sellers, books, tm, cache, publisher),
		appseller.NewDeleteSellerUseCase(sellers, books, tm, cache, publisher),
	)
	bookHandler := handler.NewBookHandler(
		appbook.NewCreateBookUseCase(books, sellers, tm, cache),
		appbook.NewGetBookUseCase(books, tm),
		appbook.NewDeleteBookUseCase(books, tm, cache),
	)

	return router.New(router.Options{Logger: zerolog.Nop()}, sellerHandler, bookHandler)
}

func newRedisCache(t *testing.T) seller.DetailCache {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return redis.NewSellerCache(client, time.Minute)
}

func do(t *testing.T, r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v), w.Body.String())
}

func createSeller(t *testing.T, r http.Handler, first, last, email, pw string) dto.SellerResponse {
	t.Helper()
	body, err := json.Marshal(map[string]string{
		"first_name": first, "last_name": last, "email": email, "password": pw,
	})
	require.NoError(t, err)
	w := do(t, r, http.MethodPost, "/api/v1/seller/create", string(body))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var s dto.SellerResponse
	decode(t, w, &s)
	return s
}

func createBook(t *testing.T, r http.Handler, sellerID uint, title string) dto.BookResponse {
	t.Helper()
	body, err := json.Marshal(map[string]interface{}{
		"title": title, "author": "Author", "year": 2021, "count_pages": 250, "seller_id": sellerID,
	})
	require.NoError(t, err)
	w := do(t, r, http.MethodPost, "/api/v1/book/create", string(body))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var b dto.BookResponse
	decode(t, w, &b)
	return b
}

func assertNoPassword(t *testing.T, w *httptest.ResponseRecorder) {
	t.Helper()
	assert.NotContains(t, w.Body.String(), "password")
	assert.NotContains(t, w.Body.String(), "$2a$")
}

func assertError(t *testing.T, w *httptest.ResponseRecorder, status int) response.ErrorBody {
	t.Helper()
	require.Equal(t, status, w.Code, w.Body.String())
	var body response.ErrorBody
	decode(t, w, &body)
	assert.NotZero(t, body.Code)
	assert.NotEmpty(t, body.Detail)
	return body
}

// TestSellerLifecycle 创建 → 添加图书 → 查询 → 删除 → 图书不可达
func TestSellerLifecycle(t *testing.T) {
	for name, cache := range map[string]func(*testing.T) seller.DetailCache{
		"无缓存":   func(*testing.T) seller.DetailCache { return seller.NopCache{} },
		"Redis缓存": newRedisCache,
	} {
		t.Run(name, func(t *testing.T) {
			r := newServer(t, cache(t))

			john := createSeller(t, r, "John", "Doe", "johndoe@example.com", "secret")
			assert.NotZero(t, john.ID)
			assert.Equal(t, "John", john.FirstName)

			first := createBook(t, r, john.ID, "First Book")
			second := createBook(t, r, john.ID, "Second Book")

			w := do(t, r, http.MethodGet, "/api/v1/seller/"+itoa(john.ID), "")
			require.Equal(t, http.StatusOK, w.Code)
			assertNoPassword(t, w)
			var detail dto.SellerWithBooksResponse
			decode(t, w, &detail)
			assert.Equal(t, john, detail.SellerResponse)
			require.Len(t, detail.Books, 2)
			assert.Equal(t, first.ID, detail.Books[0].ID)
			assert.Equal(t, second.ID, detail.Books[1].ID)
			assert.Equal(t, john.ID, detail.Books[0].SellerID)
			assert.Equal(t, 250, detail.Books[0].CountPages)

			w = do(t, r, http.MethodDelete, "/api/v1/seller/", `{"id":`+itoa(john.ID)+`,"email":"johndoe@example.com"}`)
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())
			var msg response.MessageBody
			decode(t, w, &msg)
			assert.Equal(t, "Seller and associated books deleted successfully", msg.Message)

			body := assertError(t, do(t, r, http.MethodGet, "/api/v1/seller/"+itoa(john.ID), ""), http.StatusNotFound)
			assert.Equal(t, "Seller not found", body.Detail)

			for _, id := range []uint{first.ID, second.ID} {
				assertError(t, do(t, r, http.MethodGet, "/api/v1/book/"+itoa(id), ""), http.StatusNotFound)
			}
		})
	}
}

func TestCreateSeller_ResponseShape(t *testing.T) {
	r := newServer(t, seller.NopCache{})

	w := do(t, r, http.MethodPost, "/api/v1/seller/create",
		`{"first_name":"John","last_name":"Doe","email":"johndoe@example.com","password":"secret"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assertNoPassword(t, w)

	var raw map[string]interface{}
	decode(t, w, &raw)
	assert.ElementsMatch(t, []string{"id", "first_name", "last_name", "email"}, keys(raw))
}

func TestCreateSeller_Validation(t *testing.T) {
	r := newServer(t, seller.NopCache{})

	cases := map[string]string{
		"缺少password":     `{"first_name":"John","last_name":"Doe","email":"a@b.c"}`,
		"first_name超长":   `{"first_name":"` + strings.Repeat("a", 31) + `","last_name":"Doe","email":"a@b.c","password":"p"}`,
		"email超长":        `{"first_name":"John","last_name":"Doe","email":"` + strings.Repeat("e", 51) + `","password":"p"}`,
		"first_name类型错误": `{"first_name":123,"last_name":"Doe","email":"a@b.c","password":"p"}`,
		"非法JSON":         `{"first_name":`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			got := assertError(t, do(t, r, http.MethodPost, "/api/v1/seller/create", body), http.StatusUnprocessableEntity)
			assert.Equal(t, 40900, got.Code)
		})
	}

	w := do(t, r, http.MethodGet, "/api/v1/seller/", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String(), "校验失败的请求没有写库")
}

func TestListSellers(t *testing.T) {
	r := newServer(t, seller.NopCache{})

	w := do(t, r, http.MethodGet, "/api/v1/seller/", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	a := createSeller(t, r, "Ann", "Lee", "ann@example.com", "pw")
	b := createSeller(t, r, "Bob", "Ray", "bob@example.com", "pw")

	w = do(t, r, http.MethodGet, "/api/v1/seller/", "")
	require.Equal(t, http.StatusOK, w.Code)
	assertNoPassword(t, w)
	var list []dto.SellerResponse
	decode(t, w, &list)
	assert.Equal(t, []dto.SellerResponse{a, b}, list)
}

func TestGetSeller_Errors(t *testing.T) {
	r := newServer(t, seller.NopCache{})

	assertError(t, do(t, r, http.MethodGet, "/api/v1/seller/999", ""), http.StatusNotFound)
	assertError(t, do(t, r, http.MethodGet, "/api/v1/seller/abc", ""), http.StatusUnprocessableEntity)
	assertError(t, do(t, r, http.MethodGet, "/api/v1/seller/0", ""), http.StatusUnprocessableEntity)
	assertError(t, do(t, r, http.MethodGet, "/api/v1/seller/-1", ""), http.StatusUnprocessableEntity)
}

func TestGetSeller_EmptyBooks(t *testing.T) {
	r := newServer(t, seller.NopCache{})
	s := createSeller(t, r, "John", "Doe", "johndoe@example.com", "secret")

	w := do(t, r, http.MethodGet, "/api/v1/seller/"+itoa(s.ID), "")
	require.Equal(t, http.StatusOK, w.Code)
	var raw map[string]interface{}
	decode(t, w, &raw)
	assert.Equal(t, []interface{}{}, raw["books"])
}

func TestUpdateSeller(t *testing.T) {
	r := newServer(t, newRedisCache(t))
	s := createSeller(t, r, "John", "Doe", "johndoe@example.com", "secret")
	b := createBook(t, r, s.ID, "Kept")

	// 预热缓存
	require.Equal(t, http.StatusOK, do(t, r, http.MethodGet, "/api/v1/seller/"+itoa(s.ID), "").Code)

	body := `{"first_name":"Jane","last_name":"Smith","email":"jane@example.com","password":"ignored"}`
	w := do(t, r, http.MethodPut, "/api/v1/seller/"+itoa(s.ID), body)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assertNoPassword(t, w)
	var updated dto.SellerWithBooksResponse
	decode(t, w, &updated)
	assert.Equal(t, "Jane", updated.FirstName)
	assert.Equal(t, "jane@example.com", updated.Email)
	require.Len(t, updated.Books, 1)
	assert.Equal(t, b.ID, updated.Books[0].ID)

	// 幂等
	again := do(t, r, http.MethodPut, "/api/v1/seller/"+itoa(s.ID), body)
	require.Equal(t, http.StatusOK, again.Code)
	assert.JSONEq(t, w.Body.String(), again.Body.String())

	w = do(t, r, http.MethodGet, "/api/v1/seller/"+itoa(s.ID), "")
	var got dto.SellerWithBooksResponse
	decode(t, w, &got)
	assert.Equal(t, "Jane", got.FirstName, "更新后缓存已失效")

	// 删除时必须使用新邮箱
	assertError(t, do(t, r, http.MethodDelete, "/api/v1/seller/", `{"id":`+itoa(s.ID)+`,"email":"johndoe@example.com"}`), http.StatusNotFound)
	require.Equal(t, http.StatusOK, do(t, r, http.MethodDelete, "/api/v1/seller/", `{"id":`+itoa(s.ID)+`,"email":"jane@example.com"}`).Code)
}

func TestUpdateSeller_Errors(t *testing.T) {
	r := newServer(t, seller.NopCache{})
	s := createSeller(t, r, "John", "Doe", "johndoe@example.com", "secret")
	valid := `{"first_name":"Jane","last_name":"Smith","email":"jane@example.com"}`

	assertError(t, do(t, r, http.MethodPut, "/api/v1/seller/999", valid), http.StatusNotFound)
	assertError(t, do(t, r, http.MethodPut, "/api/v1/seller/abc", valid), http.StatusUnprocessableEntity)
	assertError(t, do(t, r, http.MethodPut, "/api/v1/seller/"+itoa(s.ID), `{"first_name":"Jane"}`), http.StatusUnprocessableEntity)
	assertError(t, do(t, r, http.MethodPut, "/api/v1/seller/"+itoa(s.ID),
		`{"first_name":"Jane","last_name":"`+strings.Repeat("l", 51)+`","email":"jane@example.com"}`), http.StatusUnprocessableEntity)

	w := do(t, r, http.MethodGet, "/api/v1/seller/"+itoa(s.ID), "")
	var got dto.SellerWithBooksResponse
	decode(t, w, &got)
	assert.Equal(t, "John", got.FirstName)
}

func TestDeleteSeller_Errors(t *testing.T) {
	r := newServer(t, seller.NopCache{})
	s := createSeller(t, r, "John", "Doe", "johndoe@example.com", "secret")
	b := createBook(t, r, s.ID, "Kept")

	got := assertError(t, do(t, r, http.MethodDelete, "/api/v1/seller/", `{"id":`+itoa(s.ID)+`,"email":"wrong@example.com"}`), http.StatusNotFound)
	assert.Equal(t, "Seller not found", got.Detail)
	assertError(t, do(t, r, http.MethodDelete, "/api/v1/seller/", `{"id":999,"email":"johndoe@example.com"}`), http.StatusNotFound)
	assertError(t, do(t, r, http.MethodDelete, "/api/v1/seller/", `{"email":"johndoe@example.com"}`), http.StatusUnprocessableEntity)
	assertError(t, do(t, r, http.MethodDelete, "/api/v1/seller/", `{"id":"one","email":"johndoe@example.com"}`), http.StatusUnprocessableEntity)

	// 失败的删除不影响数据
	require.Equal(t, http.StatusOK, do(t, r, http.MethodGet, "/api/v1/seller/"+itoa(s.ID), "").Code)
	require.Equal(t, http.StatusOK, do(t, r, http.MethodGet, "/api/v1/book/"+itoa(b.ID), "").Code)
}

func TestBookEndpoints(t *testing.T) {
	r := newServer(t, newRedisCache(t))
	s := createSeller(t, r, "John", "Doe", "johndoe@example.com", "secret")

	// 预热缓存，新增图书后详情应立即可见
	require.Equal(t, http.StatusOK, do(t, r, http.MethodGet, "/api/v1/seller/"+itoa(s.ID), "").Code)
	b := createBook(t, r, s.ID, "Dune")
	assert.Equal(t, "Dune", b.Title)
	assert.Equal(t, 2021, b.Year)

	var detail dto.SellerWithBooksResponse
	decode(t, do(t, r, http.MethodGet, "/api/v1/seller/"+itoa(s.ID), ""), &detail)
	require.Len(t, detail.Books, 1)

	w := do(t, r, http.MethodGet, "/api/v1/book/"+itoa(b.ID), "")
	require.Equal(t, http.StatusOK, w.Code)
	var got dto.BookResponse
	decode(t, w, &got)
	assert.Equal(t, b, got)

	w = do(t, r, http.MethodDelete, "/api/v1/book/"+itoa(b.ID), "")
	require.Equal(t, http.StatusOK, w.Code)
	assertError(t, do(t, r, http.MethodDelete, "/api/v1/book/"+itoa(b.ID), ""), http.StatusNotFound)

	decode(t, do(t, r, http.MethodGet, "/api/v1/seller/"+itoa(s.ID), ""), &detail)
	assert.Empty(t, detail.Books)
}

func TestCreateBook_Errors(t *testing.T) {
	r := newServer(t, seller.NopCache{})
	s := createSeller(t, r, "John", "Doe", "johndoe@example.com", "secret")

	assertError(t, do(t, r, http.MethodPost, "/api/v1/book/create",
		`{"title":"T","author":"A","year":2020,"count_pages":10,"seller_id":999}`), http.StatusNotFound)
	assertError(t, do(t, r, http.MethodPost, "/api/v1/book/create",
		`{"title":"T","author":"A","year":"abc","count_pages":10,"seller_id":`+itoa(s.ID)+`}`), http.StatusUnprocessableEntity)
	assertError(t, do(t, r, http.MethodPost, "/api/v1/book/create",
		`{"title":"`+strings.Repeat("t", 51)+`","author":"A","seller_id":`+itoa(s.ID)+`}`), http.StatusUnprocessableEntity)
	assertError(t, do(t, r, http.MethodPost, "/api/v1/book/create",
		`{"author":"A","seller_id":`+itoa(s.ID)+`}`), http.StatusUnprocessableEntity)
}

func TestCreateBook_YearAndPagesRequired(t *testing.T) {
	r := newServer(t, seller.NopCache{})
	s := createSeller(t, r, "John", "Doe", "johndoe@example.com", "secret")
	sid := itoa(s.ID)

	for name, body := range map[string]string{
		"缺少year":        `{"title":"T","author":"A","count_pages":10,"seller_id":` + sid + `}`,
		"缺少count_pages": `{"title":"T","author":"A","year":2020,"seller_id":` + sid + `}`,
		"year为null":      `{"title":"T","author":"A","year":null,"count_pages":10,"seller_id":` + sid + `}`,
	} {
		t.Run(name, func(t *testing.T) {
			assertError(t, do(t, r, http.MethodPost, "/api/v1/book/create", body), http.StatusUnprocessableEntity)
		})
	}

	// 显式传0合法
	w := do(t, r, http.MethodPost, "/api/v1/book/create",
		`{"title":"T","author":"A","year":0,"count_pages":0,"seller_id":`+sid+`}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var b dto.BookResponse
	decode(t, w, &b)
	assert.Zero(t, b.Year)
	assert.Zero(t, b.CountPages)

	// 缺字段的请求都没有写库
	w = do(t, r, http.MethodGet, "/api/v1/seller/"+sid, "")
	require.Equal(t, http.StatusOK, w.Code)
	var detail dto.SellerWithBooksResponse
	decode(t, w, &detail)
	assert.Len(t, detail.Books, 1)
}

func TestOperationalEndpoints(t *testing.T) {
	r := newServer(t, seller.NopCache{})

	w := do(t, r, http.MethodGet, "/ping", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"pong","status":"healthy"}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Request-ID", "req-123")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "req-123", w.Header().Get("X-Request-ID"))

	w = do(t, r, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "http_requests_total")
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func keys(m map[string]interface{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
