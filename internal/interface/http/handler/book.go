package handler

import (
	"github.com/gin-gonic/gin"

	appbook "github.com/xiebiao/bookcatalog/internal/application/book"
	"github.com/xiebiao/bookcatalog/internal/interface/http/dto"
	"github.com/xiebiao/bookcatalog/pkg/response"
)

// BookHandler 图书HTTP处理器
type BookHandler struct {
	createUseCase *appbook.CreateBookUseCase
	getUseCase    *appbook.GetBookUseCase
	deleteUseCase *appbook.DeleteBookUseCase
}

// NewBookHandler 创建图书处理器
func NewBookHandler(
	createUseCase *appbook.CreateBookUseCase,
	getUseCase *appbook.GetBookUseCase,
	deleteUseCase *appbook.DeleteBookUseCase,
) *BookHandler {
	return &BookHandler{
		createUseCase: createUseCase,
		getUseCase:    getUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// Create 为卖家添加图书
// @Summary      创建图书
// @Description  所属卖家必须存在
// @Tags         图书
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateBookRequest true "图书信息"
// @Success      200 {object} dto.BookResponse
// @Failure      404 {object} response.ErrorBody "卖家不存在"
// @Failure      422 {object} response.ErrorBody "参数错误"
// @Router       /api/v1/book/create [post]
func (h *BookHandler) Create(c *gin.Context) {
	var req dto.CreateBookRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.createUseCase.Execute(c.Request.Context(), appbook.CreateBookRequest{
		Title:      req.Title,
		Author:     req.Author,
		Year:       *req.Year,
		CountPages: *req.CountPages,
		SellerID:   req.SellerID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, toBookResponse(result))
}

// Get 查询图书
// @Summary      图书详情
// @Tags         图书
// @Produce      json
// @Param        id path int true "图书ID"
// @Success      200 {object} dto.BookResponse
// @Failure      404 {object} response.ErrorBody "图书不存在"
// @Failure      422 {object} response.ErrorBody "参数错误"
// @Router       /api/v1/book/{id} [get]
func (h *BookHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	result, err := h.getUseCase.Execute(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, toBookResponse(result))
}

// Delete 删除图书
// @Summary      删除图书
// @Tags         图书
// @Produce      json
// @Param        id path int true "图书ID"
// @Success      200 {object} response.MessageBody
// @Failure      404 {object} response.ErrorBody "图书不存在"
// @Failure      422 {object} response.ErrorBody "参数错误"
// @Router       /api/v1/book/{id} [delete]
func (h *BookHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	message, err := h.deleteUseCase.Execute(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Message(c, message)
}

func toBookResponse(r *appbook.BookResult) dto.BookResponse {
	return dto.BookResponse{
		ID:         r.ID,
		Title:      r.Title,
		Author:     r.Author,
		Year:       r.Year,
		CountPages: r.CountPages,
		SellerID:   r.SellerID,
	}
}
