package book

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
)

func TestNewBook(t *testing.T) {
	b := NewBook("The Go Programming Language", "Donovan", 2015, 380, 1)

	assert.Equal(t, "The Go Programming Language", b.Title)
	assert.Equal(t, 2015, b.Year)
	assert.Equal(t, 380, b.CountPages)
	assert.Equal(t, uint(1), b.SellerID)
}

func TestBook_Validate(t *testing.T) {
	tests := []struct {
		name    string
		book    *Book
		wantErr bool
	}{
		{"合法", NewBook("Title", "Author", 2020, 100, 1), false},
		{"年份和页数为0也合法", NewBook("Title", "Author", 0, 0, 1), false},
		{"缺少title", NewBook("", "Author", 2020, 100, 1), true},
		{"title超长", NewBook(strings.Repeat("t", 51), "Author", 2020, 100, 1), true},
		{"author超长", NewBook("Title", strings.Repeat("a", 101), 2020, 100, 1), true},
		{"缺少author", NewBook("Title", " ", 2020, 100, 1), true},
		{"缺少seller_id", NewBook("Title", "Author", 2020, 100, 0), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.book.Validate()
			if tt.wantErr {
				assert.True(t, apperrors.IsValidation(err))
				return
			}
			assert.NoError(t, err)
		})
	}
}
