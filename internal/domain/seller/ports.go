package seller

import (
	"context"
	"time"
)

// 卖家生命周期事件（同时作为RabbitMQ routing key）
const (
	EventCreated = "seller.created"
	EventUpdated = "seller.updated"
	EventDeleted = "seller.deleted"
)

// Event 卖家生命周期事件
type Event struct {
	Type         string    `json:"type"`
	SellerID     uint      `json:"seller_id"`
	Email        string    `json:"email"`
	BooksDeleted int64     `json:"books_deleted,omitempty"`
	OccurredAt   time.Time `json:"occurred_at"`
}

// NewEvent 创建事件
func NewEvent(eventType string, s *Seller) Event {
	return Event{
		Type:       eventType,
		SellerID:   s.ID,
		Email:      s.Email,
		OccurredAt: time.Now(),
	}
}

// EventPublisher 事件发布端口
// 只在事务提交后调用，发布失败不影响已提交的结果
type EventPublisher interface {
	Publish(ctx context.Context, e Event) error
}

// DetailCache 卖家详情缓存端口（Cache-Aside）
// 缓存的是不含密码的详情视图，由调用方决定具体结构
//
// 每次DeleteDetail都会递增该卖家的失效版本号。回填时带上读取缓存时看到的版本号，
// 期间发生过失效则放弃写入，避免把失效前读到的旧快照写回缓存。
type DetailCache interface {
	// GetDetail 读取缓存到dst，未命中返回false；version为当前失效版本号，供回填使用
	GetDetail(ctx context.Context, id uint, dst interface{}) (hit bool, version int64, err error)
	// SetDetail 仅当失效版本号仍等于version时写入
	SetDetail(ctx context.Context, id uint, version int64, v interface{}) error
	// DeleteDetail 删除缓存并递增失效版本号
	DeleteDetail(ctx context.Context, id uint) error
}

// NopPublisher 未启用MQ时使用
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Event) error { return nil }

// NopCache 未启用Redis时使用，永远未命中
type NopCache struct{}

func (NopCache) GetDetail(context.Context, uint, interface{}) (bool, int64, error) {
	return false, 0, nil
}
func (NopCache) SetDetail(context.Context, uint, int64, interface{}) error { return nil }
func (NopCache) DeleteDetail(context.Context, uint) error                  { return nil }
