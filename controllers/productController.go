package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/offstore/offstore-api/catalog"
	"github.com/offstore/offstore-api/models"
	"github.com/offstore/offstore-api/utils"
	"go.uber.org/zap"
)

type ProductController struct {
	store    catalog.Store
	uploader *utils.Uploader
	log      *zap.Logger
}

func NewProductController(store catalog.Store, uploader *utils.Uploader, log *zap.Logger) *ProductController {
	return &ProductController{store: store, uploader: uploader, log: log}
}

func (c *ProductController) GetProducts(ctx *gin.Context) {
	products, err := c.store.List()
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch products", err)
		return
	}
	ctx.JSON(http.StatusOK, products)
}

func (c *ProductController) GetLatestProduct(ctx *gin.Context) {
	product, err := c.store.Latest()
	if errors.Is(err, catalog.ErrNotFound) {
		respondWithError(ctx, http.StatusNotFound, "No products yet", nil)
		return
	}
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch latest product", err)
		return
	}
	ctx.JSON(http.StatusOK, product)
}

func (c *ProductController) GetProductsByCategory(ctx *gin.Context) {
	products, err := c.store.ByCategory(ctx.Param("name"))
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch products", err)
		return
	}
	ctx.JSON(http.StatusOK, products)
}

func (c *ProductController) GetProduct(ctx *gin.Context) {
	productId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid product ID", err)
		return
	}

	product, err := c.store.Get(uint(productId))
	if errors.Is(err, catalog.ErrNotFound) {
		respondWithError(ctx, http.StatusNotFound, "Product not found", nil)
		return
	}
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to retrieve product", err)
		return
	}
	ctx.JSON(http.StatusOK, product)
}

func (c *ProductController) CreateProduct(ctx *gin.Context) {
	var product models.Product
	if err := bindStrict(ctx, &product); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if err := catalog.Validate(&product); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid product", err)
		return
	}

	if err := c.store.Create(&product); err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to create product", err)
		return
	}
	ctx.JSON(http.StatusCreated, product)
}

func (c *ProductController) UpdateProduct(ctx *gin.Context) {
	productId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid product ID", err)
		return
	}

	var product models.Product
	if err := bindStrict(ctx, &product); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if err := catalog.Validate(&product); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid product", err)
		return
	}

	updated, err := c.store.Update(uint(productId), &product)
	if errors.Is(err, catalog.ErrNotFound) {
		respondWithError(ctx, http.StatusNotFound, "Product not found", nil)
		return
	}
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to update product", err)
		return
	}
	ctx.JSON(http.StatusOK, updated)
}

func (c *ProductController) DeleteProduct(ctx *gin.Context) {
	productId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid product ID", err)
		return
	}

	err = c.store.Delete(uint(productId))
	if errors.Is(err, catalog.ErrNotFound) {
		respondWithError(ctx, http.StatusNotFound, "Product not found", nil)
		return
	}
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to delete product", err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"success": true})
}

// UploadProductImages pushes each uploaded file to S3 and appends the
// resulting URLs to the product's image list.
func (c *ProductController) UploadProductImages(ctx *gin.Context) {
	if c.uploader == nil {
		respondWithError(ctx, http.StatusServiceUnavailable, "Image uploads not configured", nil)
		return
	}

	productId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid product ID", err)
		return
	}

	product, err := c.store.Get(uint(productId))
	if errors.Is(err, catalog.ErrNotFound) {
		respondWithError(ctx, http.StatusNotFound, "Product not found", nil)
		return
	}
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to validate product", err)
		return
	}

	form, err := ctx.MultipartForm()
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid form data", err)
		return
	}
	files := form.File["images"]
	if len(files) == 0 {
		respondWithError(ctx, http.StatusBadRequest, "No files uploaded", nil)
		return
	}

	var uploadedUrls []string
	var failedUploads []string

	for _, file := range files {
		f, openErr := file.Open()
		if openErr != nil {
			c.log.Warn("error opening upload", zap.String("file", file.Filename), zap.Error(openErr))
			failedUploads = append(failedUploads, file.Filename)
			continue
		}

		url, uploadErr := c.uploader.UploadImage(ctx.Request.Context(),
			product.ID, file.Filename, file.Header.Get("Content-Type"), f)
		f.Close()

		if uploadErr != nil {
			c.log.Warn("error uploading file", zap.String("file", file.Filename), zap.Error(uploadErr))
			failedUploads = append(failedUploads, file.Filename)
			continue
		}
		uploadedUrls = append(uploadedUrls, url)
	}

	if len(uploadedUrls) > 0 {
		product.Images = append(product.Images, uploadedUrls...)
		if _, err := c.store.Update(product.ID, product); err != nil {
			c.log.Error("uploaded images not saved to product", zap.Uint("productId", product.ID), zap.Error(err))
		}
	}

	response := gin.H{
		"message": "Files processed",
		"urls":    uploadedUrls,
	}
	if len(failedUploads) > 0 {
		response["failed"] = failedUploads
	}
	ctx.JSON(http.StatusOK, response)
}
