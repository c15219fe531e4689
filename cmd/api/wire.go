//go:build wireinject
// +build wireinject

// Wire依赖注入配置
// 修改Provider后运行 `wire gen ./cmd/api` 重新生成wire_gen.go
package main

import (
	"github.com/google/wire"
	"github.com/rs/zerolog"

	appbook "github.com/xiebiao/bookcatalog/internal/application/book"
	appseller "github.com/xiebiao/bookcatalog/internal/application/seller"
	"github.com/xiebiao/bookcatalog/internal/infrastructure/config"
	"github.com/xiebiao/bookcatalog/internal/infrastructure/persistence/mysql"
	"github.com/xiebiao/bookcatalog/internal/interface/http/handler"
	"github.com/xiebiao/bookcatalog/internal/interface/http/router"
)

// infrastructureSet 数据库、缓存、消息、密码哈希
var infrastructureSet = wire.NewSet(
	provideDB,
	provideDetailCache,
	provideEventPublisher,
	provideHasher,
)

// repositorySet 仓储和事务管理器
var repositorySet = wire.NewSet(
	mysql.NewSellerRepository,
	mysql.NewBookRepository,
	mysql.NewTxManager,
)

// applicationSet 用例
var applicationSet = wire.NewSet(
	appseller.NewCreateSellerUseCase,
	appseller.NewListSellersUseCase,
	appseller.NewGetSellerUseCase,
	appseller.NewUpdateSellerUseCase,
	appseller.NewDeleteSellerUseCase,
	appbook.NewCreateBookUseCase,
	appbook.NewGetBookUseCase,
	appbook.NewDeleteBookUseCase,
)

// httpSet 处理器、路由、HTTP Server
var httpSet = wire.NewSet(
	handler.NewSellerHandler,
	handler.NewBookHandler,
	provideRouterOptions,
	router.New,
	provideServer,
)

// InitializeApp 组装应用
// cleanup按创建的逆序释放数据库、Redis、MQ连接
func InitializeApp(cfg *config.Config, log zerolog.Logger) (*App, func(), error) {
	wire.Build(
		infrastructureSet,
		repositorySet,
		applicationSet,
		httpSet,
		newApp,
	)
	return nil, nil, nil
}
