package response_models

import "cougcuts/internal/engine"

type ProductPage struct {
	Items    []engine.Product `json:"items"`
	Total    int              `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}
