package handler

import (
	"github.com/gin-gonic/gin"

	appseller "github.com/xiebiao/bookcatalog/internal/application/seller"
	"github.com/xiebiao/bookcatalog/internal/interface/http/dto"
	"github.com/xiebiao/bookcatalog/pkg/response"
)

// SellerHandler 卖家HTTP处理器
type SellerHandler struct {
	createUseCase *appseller.CreateSellerUseCase
	listUseCase   *appseller.ListSellersUseCase
	getUseCase    *appseller.GetSellerUseCase
	updateUseCase *appseller.UpdateSellerUseCase
	deleteUseCase *appseller.DeleteSellerUseCase
}

// NewSellerHandler 创建卖家处理器
func NewSellerHandler(
	createUseCase *appseller.CreateSellerUseCase,
	listUseCase *appseller.ListSellersUseCase,
	getUseCase *appseller.GetSellerUseCase,
	updateUseCase *appseller.UpdateSellerUseCase,
	deleteUseCase *appseller.DeleteSellerUseCase,
) *SellerHandler {
	return &SellerHandler{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		getUseCase:    getUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// Create 创建卖家
// @Summary      创建卖家
// @Description  注册新卖家，密码以bcrypt哈希保存，响应中不返回
// @Tags         卖家
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateSellerRequest true "卖家信息"
// @Success      200 {object} dto.SellerResponse
// @Failure      422 {object} response.ErrorBody "参数错误"
// @Failure      500 {object} response.ErrorBody "数据库错误"
// @Router       /api/v1/seller/create [post]
func (h *SellerHandler) Create(c *gin.Context) {
	var req dto.CreateSellerRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.createUseCase.Execute(c.Request.Context(), appseller.CreateSellerRequest{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, toSellerResponse(*result))
}

// List 查询全部卖家
// @Summary      卖家列表
// @Description  按ID升序返回全部卖家，不分页
// @Tags         卖家
// @Produce      json
// @Success      200 {array} dto.SellerResponse
// @Failure      500 {object} response.ErrorBody "数据库错误"
// @Router       /api/v1/seller/ [get]
func (h *SellerHandler) List(c *gin.Context) {
	results, err := h.listUseCase.Execute(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	sellers := make([]dto.SellerResponse, 0, len(results))
	for _, r := range results {
		sellers = append(sellers, toSellerResponse(r))
	}
	response.Success(c, sellers)
}

// Get 查询卖家详情
// @Summary      卖家详情
// @Description  返回卖家信息及其全部图书（按创建顺序）
// @Tags         卖家
// @Produce      json
// @Param        id path int true "卖家ID"
// @Success      200 {object} dto.SellerWithBooksResponse
// @Failure      404 {object} response.ErrorBody "卖家不存在"
// @Failure      422 {object} response.ErrorBody "参数错误"
// @Router       /api/v1/seller/{id} [get]
func (h *SellerHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	result, err := h.getUseCase.Execute(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, toSellerWithBooksResponse(result))
}

// Update 更新卖家资料
// @Summary      更新卖家
// @Description  覆盖first_name、last_name、email，密码不变
// @Tags         卖家
// @Accept       json
// @Produce      json
// @Param        id path int true "卖家ID"
// @Param        request body dto.UpdateSellerRequest true "新资料"
// @Success      200 {object} dto.SellerWithBooksResponse
// @Failure      404 {object} response.ErrorBody "卖家不存在"
// @Failure      422 {object} response.ErrorBody "参数错误"
// @Router       /api/v1/seller/{id} [put]
func (h *SellerHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.UpdateSellerRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.updateUseCase.Execute(c.Request.Context(), appseller.UpdateSellerRequest{
		ID:        id,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, toSellerWithBooksResponse(result))
}

// Delete 删除卖家及其全部图书
// @Summary      删除卖家
// @Description  id与email同时匹配才删除，图书在同一事务中一并删除
// @Tags         卖家
// @Accept       json
// @Produce      json
// @Param        request body dto.DeleteSellerRequest true "卖家ID和邮箱"
// @Success      200 {object} response.MessageBody
// @Failure      404 {object} response.ErrorBody "卖家不存在或邮箱不匹配"
// @Failure      422 {object} response.ErrorBody "参数错误"
// @Router       /api/v1/seller/ [delete]
func (h *SellerHandler) Delete(c *gin.Context) {
	var req dto.DeleteSellerRequest
	if !bindJSON(c, &req) {
		return
	}

	message, err := h.deleteUseCase.Execute(c.Request.Context(), appseller.DeleteSellerRequest{
		ID:    req.ID,
		Email: req.Email,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Message(c, message)
}

func toSellerResponse(r appseller.SellerResult) dto.SellerResponse {
	return dto.SellerResponse{
		ID:        r.ID,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
	}
}

func toSellerWithBooksResponse(r *appseller.SellerWithBooksResult) dto.SellerWithBooksResponse {
	resp := dto.SellerWithBooksResponse{
		SellerResponse: toSellerResponse(r.SellerResult),
		Books:          make([]dto.BookForSellerResponse, 0, len(r.Books)),
	}
	for _, b := range r.Books {
		resp.Books = append(resp.Books, dto.BookForSellerResponse{
			ID:         b.ID,
			Title:      b.Title,
			Author:     b.Author,
			Year:       b.Year,
			CountPages: b.CountPages,
			SellerID:   b.SellerID,
		})
	}
	return resp
}
