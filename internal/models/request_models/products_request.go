package request_models

type ListProductsRequest struct {
	HairType string   `form:"hair_type"`
	Tier     string   `form:"tier"`
	Category string   `form:"category"`
	Concerns []string `form:"concern"`
	Page     int      `form:"page"`
	PageSize int      `form:"page_size"`
}

type ListLeadsRequest struct {
	Page     int `form:"page"`
	PageSize int `form:"page_size"`
}
