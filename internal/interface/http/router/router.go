// Package router 组装Gin引擎：中间件、业务路由、运维端点
package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/xiebiao/bookcatalog/internal/interface/http/handler"
	"github.com/xiebiao/bookcatalog/internal/interface/http/middleware"
)

// Options 路由配置
type Options struct {
	Logger        zerolog.Logger
	EnableSwagger bool
}

// New 创建并注册全部路由
//
// 业务路由（/api/v1）：
//
//	POST   /seller/create   创建卖家
//	GET    /seller/         卖家列表
//	GET    /seller/:id      卖家详情（含图书）
//	PUT    /seller/:id      更新卖家
//	DELETE /seller/         删除卖家及其图书
//	POST   /book/create     创建图书
//	GET    /book/:id        图书详情
//	DELETE /book/:id        删除图书
//
// 运维端点：/ping、/metrics、/swagger/*any（可关闭）
func New(opts Options, sellerHandler *handler.SellerHandler, bookHandler *handler.BookHandler) *gin.Engine {
	r := gin.New()
	r.Use(
		gin.Recovery(),
		middleware.Logger(opts.Logger),
		middleware.Tracing(),
		middleware.Metrics(),
	)

	// 健康检查
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// 访问 http://localhost:8080/swagger/index.html 查看API文档
	if opts.EnableSwagger {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	v1 := r.Group("/api/v1")
	{
		sellers := v1.Group("/seller")
		{
			sellers.POST("/create", sellerHandler.Create)
			sellers.GET("/", sellerHandler.List)
			sellers.GET("/:id", sellerHandler.Get)
			sellers.PUT("/:id", sellerHandler.Update)
			sellers.DELETE("/", sellerHandler.Delete)
		}

		books := v1.Group("/book")
		{
			books.POST("/create", bookHandler.Create)
			books.GET("/:id", bookHandler.Get)
			books.DELETE("/:id", bookHandler.Delete)
		}
	}

	return r
}
