package dto

// CreateSellerRequest HTTP创建卖家请求
// validator tag说明:
// - required: 必填字段
// - max: 字符串按字符数校验,超长直接拒绝,不截断
type CreateSellerRequest struct {
	FirstName string `json:"first_name" binding:"required,max=30" example:"John"`
	LastName  string `json:"last_name" binding:"required,max=50" example:"Doe"`
	Email     string `json:"email" binding:"required,max=50" example:"johndoe@example.com"`
	Password  string `json:"password" binding:"required,max=50" example:"secret"`
}

// UpdateSellerRequest HTTP更新卖家请求
// 三个字段都必填,整体覆盖;请求中的password等其他字段被忽略
type UpdateSellerRequest struct {
	FirstName string `json:"first_name" binding:"required,max=30" example:"Jane"`
	LastName  string `json:"last_name" binding:"required,max=50" example:"Smith"`
	Email     string `json:"email" binding:"required,max=50" example:"jane@example.com"`
}

// DeleteSellerRequest HTTP删除卖家请求
// email必须与卖家当前邮箱完全一致
type DeleteSellerRequest struct {
	ID    uint   `json:"id" binding:"required,min=1" example:"1"`
	Email string `json:"email" binding:"required,max=50" example:"johndoe@example.com"`
}

// SellerResponse 卖家响应(不包含密码)
type SellerResponse struct {
	ID        uint   `json:"id" example:"1"`
	FirstName string `json:"first_name" example:"John"`
	LastName  string `json:"last_name" example:"Doe"`
	Email     string `json:"email" example:"johndoe@example.com"`
}

// BookForSellerResponse 卖家详情中的图书
type BookForSellerResponse struct {
	ID         uint   `json:"id" example:"1"`
	Title      string `json:"title" example:"Dune"`
	Author     string `json:"author" example:"Frank Herbert"`
	Year       int    `json:"year" example:"1965"`
	CountPages int    `json:"count_pages" example:"412"`
	SellerID   uint   `json:"seller_id" example:"1"`
}

// SellerWithBooksResponse 卖家详情响应
// books按创建顺序排列,没有图书时为空数组
type SellerWithBooksResponse struct {
	SellerResponse
	Books []BookForSellerResponse `json:"books"`
}
