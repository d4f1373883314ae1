package controller

import (
	"net/http"
	"strconv"

	"catalog/database/model"
	"catalog/web/middleware"
	"catalog/web/service"

	"github.com/gin-gonic/gin"
)

// ProductController exposes the catalog CRUD endpoints. Absent records map to
// 404 with an empty body; the service layer never treats them as errors.
type ProductController struct {
	productService service.ProductService
}

// NewProductController creates a ProductController and initializes its routes.
func NewProductController(g *gin.RouterGroup) *ProductController {
	a := &ProductController{}
	a.initRouter(g)
	return a
}

func (a *ProductController) initRouter(g *gin.RouterGroup) {
	g = g.Group("/products")
	g.Use(middleware.SessionRequired())

	g.GET("", a.list)
	g.GET("/search", a.search)
	g.GET("/:id", a.get)
	g.POST("", a.create)
	g.PUT("/:id", a.update)
	g.DELETE("/:id", a.delete)
}

func (a *ProductController) list(c *gin.Context) {
	products, err := a.productService.ListProducts()
	if err != nil {
		jsonMsg(c, "list products", err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (a *ProductController) get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		pureJsonMsg(c, http.StatusBadRequest, false, "invalid product id")
		return
	}
	product, err := a.productService.GetProduct(id)
	if err != nil {
		jsonMsg(c, "get product", err)
		return
	}
	if product == nil {
		c.Status(http.StatusNotFound)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (a *ProductController) search(c *gin.Context) {
	products, err := a.productService.SearchProducts(c.Query("name"))
	if err != nil {
		jsonMsg(c, "search products", err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (a *ProductController) create(c *gin.Context) {
	var draft model.Product
	if err := c.ShouldBindJSON(&draft); err != nil {
		pureJsonMsg(c, http.StatusBadRequest, false, "invalid product data")
		return
	}
	product, err := a.productService.CreateProduct(&draft)
	if err != nil {
		jsonMsg(c, "create product", err)
		return
	}
	c.JSON(http.StatusCreated, product)
}

func (a *ProductController) update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		pureJsonMsg(c, http.StatusBadRequest, false, "invalid product id")
		return
	}
	var draft model.Product
	if err := c.ShouldBindJSON(&draft); err != nil {
		pureJsonMsg(c, http.StatusBadRequest, false, "invalid product data")
		return
	}
	product, err := a.productService.UpdateProduct(id, &draft)
	if err != nil {
		jsonMsg(c, "update product", err)
		return
	}
	if product == nil {
		c.Status(http.StatusNotFound)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (a *ProductController) delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		pureJsonMsg(c, http.StatusBadRequest, false, "invalid product id")
		return
	}
	deleted, err := a.productService.DeleteProduct(id)
	if err != nil {
		jsonMsg(c, "delete product", err)
		return
	}
	if !deleted {
		c.Status(http.StatusNotFound)
		return
	}
	c.Status(http.StatusNoContent)
}
