package dto

// CreateBookRequest HTTP创建图书请求
// year、count_pages类型错误(如"abc")或缺失时绑定失败,返回422
// 用指针区分缺失和显式传0，0是合法值
type CreateBookRequest struct {
	Title      string `json:"title" binding:"required,max=50" example:"Dune"`
	Author     string `json:"author" binding:"required,max=100" example:"Frank Herbert"`
	Year       *int   `json:"year" binding:"required" example:"1965"`
	CountPages *int   `json:"count_pages" binding:"required" example:"412"`
	SellerID   uint   `json:"seller_id" binding:"required,min=1" example:"1"`
}

// BookResponse HTTP图书响应
type BookResponse struct {
	ID         uint   `json:"id" example:"1"`
	Title      string `json:"title" example:"Dune"`
	Author     string `json:"author" example:"Frank Herbert"`
	Year       int    `json:"year" example:"1965"`
	CountPages int    `json:"count_pages" example:"412"`
	SellerID   uint   `json:"seller_id" example:"1"`
}
