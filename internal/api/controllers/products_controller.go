package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cougcuts/internal/models/request_models"
	"cougcuts/internal/services"
	"cougcuts/pkg/utils"
)

type ProductController struct {
	productService services.ProductServiceInterface
}

func NewProductController(productService services.ProductServiceInterface) *ProductController {
	return &ProductController{
		productService: productService,
	}
}

// ListProductsHandler godoc
// @Summary Browse the product catalog
// @Tags Products
// @Produce json
// @Param hair_type query string false "straight | wavy | curly | coily"
// @Param tier      query string false "low | mid | premium"
// @Param category  query string false "shampoo | conditioner | treatment | styler | oil | tool"
// @Param concern   query []string false "Concern tags, any match"
// @Param page      query int false "Page (default 1)"
// @Param page_size query int false "Page size 1-100 (default 20)"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /products [get]
func (pc *ProductController) ListProductsHandler(c *gin.Context) {
	var req request_models.ListProductsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid query parameters")
		return
	}

	page, err := pc.productService.ListProducts(req, c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, page, "Fetched products successfully")
}

// GetProductHandler godoc
// @Summary Get a product
// @Tags Products
// @Produce json
// @Param id path string true "Product id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /products/{id} [get]
func (pc *ProductController) GetProductHandler(c *gin.Context) {
	product, err := pc.productService.GetProduct(c.Param("id"), c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, product, "Fetched product successfully")
}

// ListConcernsHandler godoc
// @Summary List concern tags
// @Tags Products
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /products/concerns [get]
func (pc *ProductController) ListConcernsHandler(c *gin.Context) {
	utils.RespondSuccess(c, pc.productService.ListConcerns(c.Request.Context()), "Fetched concerns successfully")
}
