package seller

import (
	"context"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/trace"

	"github.com/xiebiao/bookcatalog/internal/domain/book"
	"github.com/xiebiao/bookcatalog/internal/domain/seller"
	"github.com/xiebiao/bookcatalog/pkg/metrics"
	"github.com/xiebiao/bookcatalog/pkg/tracing"
)

// =========================================
// 应用层DTO（数据传输对象）
// =========================================
// 说明：所有结果类型都不含密码字段

// SellerResult 卖家基本信息
type SellerResult struct {
	ID        uint   `json:"id" example:"1"`
	FirstName string `json:"first_name" example:"John"`
	LastName  string `json:"last_name" example:"Doe"`
	Email     string `json:"email" example:"johndoe@example.com"`
}

// BookForSellerResult 卖家详情中的图书
type BookForSellerResult struct {
	ID         uint   `json:"id" example:"1"`
	Title      string `json:"title" example:"Dune"`
	Author     string `json:"author" example:"Frank Herbert"`
	Year       int    `json:"year" example:"1965"`
	CountPages int    `json:"count_pages" example:"412"`
	SellerID   uint   `json:"seller_id" example:"1"`
}

// SellerWithBooksResult 卖家详情（含图书，按创建顺序）
type SellerWithBooksResult struct {
	SellerResult
	Books []BookForSellerResult `json:"books"`
}

func toSellerResult(s *seller.Seller) SellerResult {
	return SellerResult{
		ID:        s.ID,
		FirstName: s.FirstName,
		LastName:  s.LastName,
		Email:     s.Email,
	}
}

func toSellerWithBooks(s *seller.Seller, books []*book.Book) *SellerWithBooksResult {
	result := &SellerWithBooksResult{
		SellerResult: toSellerResult(s),
		Books:        make([]BookForSellerResult, 0, len(books)),
	}
	for _, b := range books {
		result.Books = append(result.Books, BookForSellerResult{
			ID:         b.ID,
			Title:      b.Title,
			Author:     b.Author,
			Year:       b.Year,
			CountPages: b.CountPages,
			SellerID:   s.ID,
		})
	}
	return result
}

// finish 结束用例：记录操作指标并关闭Span
func finish(span trace.Span, operation string, err error) {
	metrics.RecordOperation(operation, err)
	tracing.End(span, err)
}

// afterCommit 事务提交后的副作用：删除详情缓存、发布事件
// 失败只记日志，不影响已提交的结果
func afterCommit(ctx context.Context, cache seller.DetailCache, publisher seller.EventPublisher, id uint, event *seller.Event) {
	log := zerolog.Ctx(ctx)

	if cache != nil {
		if err := cache.DeleteDetail(ctx, id); err != nil {
			log.Warn().Err(err).Uint("seller_id", id).Msg("invalidate seller cache failed")
		}
	}

	if publisher != nil && event != nil {
		if err := publisher.Publish(ctx, *event); err != nil {
			log.Warn().Err(err).Str("event", event.Type).Uint("seller_id", id).Msg("publish seller event failed")
		}
	}
}
