package book_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appbook "github.com/xiebiao/bookcatalog/internal/application/book"
	"github.com/xiebiao/bookcatalog/internal/domain/book"
	"github.com/xiebiao/bookcatalog/internal/domain/seller"
	"github.com/xiebiao/bookcatalog/internal/infrastructure/persistence/mysql"
	"github.com/xiebiao/bookcatalog/internal/infrastructure/persistence/mysql/mysqltest"
	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
)

// spyCache 记录被删除的缓存键
type spyCache struct {
	seller.NopCache
	deleted []uint
}

func (c *spyCache) DeleteDetail(_ context.Context, id uint) error {
	c.deleted = append(c.deleted, id)
	return nil
}

type fixture struct {
	owner  *seller.Seller
	cache  *spyCache
	books  book.Repository
	create *appbook.CreateBookUseCase
	get    *appbook.GetBookUseCase
	delete *appbook.DeleteBookUseCase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := mysqltest.NewDB(t)
	tm := mysql.NewTxManager(db)
	sellers := mysql.NewSellerRepository(db)
	books := mysql.NewBookRepository(db)
	cache := &spyCache{}

	owner := seller.NewSeller("John", "Doe", "johndoe@example.com", "hash")
	require.NoError(t, sellers.Create(context.Background(), owner))

	return &fixture{
		owner:  owner,
		cache:  cache,
		books:  books,
		create: appbook.NewCreateBookUseCase(books, sellers, tm, cache),
		get:    appbook.NewGetBookUseCase(books, tm),
		delete: appbook.NewDeleteBookUseCase(books, tm, cache),
	}
}

func TestCreateBook(t *testing.T) {
	f := newFixture(t)

	created, err := f.create.Execute(context.Background(), appbook.CreateBookRequest{
		Title: "Dune", Author: "Frank Herbert", Year: 1965, CountPages: 412, SellerID: f.owner.ID,
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "Dune", created.Title)
	assert.Equal(t, f.owner.ID, created.SellerID)
	assert.Equal(t, []uint{f.owner.ID}, f.cache.deleted)

	got, err := f.get.Execute(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestCreateBook_OwnerMissing(t *testing.T) {
	f := newFixture(t)

	_, err := f.create.Execute(context.Background(), appbook.CreateBookRequest{
		Title: "Orphan", Author: "Nobody", SellerID: f.owner.ID + 100,
	})
	assert.ErrorIs(t, err, seller.ErrSellerNotFound)
	assert.Empty(t, f.cache.deleted)
}

func TestCreateBook_Validation(t *testing.T) {
	f := newFixture(t)

	_, err := f.create.Execute(context.Background(), appbook.CreateBookRequest{
		Title: strings.Repeat("t", 51), Author: "A", SellerID: f.owner.ID,
	})
	assert.True(t, apperrors.IsValidation(err))

	listed, err := f.books.ListBySeller(context.Background(), f.owner.ID)
	require.NoError(t, err)
	assert.Empty(t, listed)
}

func TestGetBook_NotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.get.Execute(context.Background(), 404)
	assert.ErrorIs(t, err, book.ErrBookNotFound)

	_, err = f.get.Execute(context.Background(), 0)
	assert.True(t, apperrors.IsValidation(err))
}

func TestDeleteBook(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	created, err := f.create.Execute(ctx, appbook.CreateBookRequest{Title: "Dune", Author: "Herbert", SellerID: f.owner.ID})
	require.NoError(t, err)

	msg, err := f.delete.Execute(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, appbook.DeletedMessage, msg)
	assert.Equal(t, []uint{f.owner.ID, f.owner.ID}, f.cache.deleted)

	_, err = f.delete.Execute(ctx, created.ID)
	assert.ErrorIs(t, err, book.ErrBookNotFound)
}
