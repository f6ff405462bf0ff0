package httpserver

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jmjubaer/white-black-server/internal/domain"
	"github.com/jmjubaer/white-black-server/internal/repository/product"
	"github.com/jmjubaer/white-black-server/internal/service/catalog"
)

const testProductID = "0f8fad5b-d9cb-469f-a165-70867728950e"

type stubProductRepo struct {
	products    []domain.Product
	projected   []domain.PriceStatus
	getResult   *domain.Product
	getErr      error
	getCalls    int
	findCalls   int
	lastFilter  product.Filter
	listCalls   int
	updateN     int64
	deleteN     int64
	insertCalls int
}

func (s *stubProductRepo) Find(_ context.Context, f product.Filter) ([]domain.Product, error) {
	s.findCalls++
	s.lastFilter = f
	return s.products, nil
}

func (s *stubProductRepo) ByCategory(_ context.Context, _ string) ([]domain.Product, error) {
	s.listCalls++
	return s.products, nil
}

func (s *stubProductRepo) PriceStatus(_ context.Context, _ string) ([]domain.PriceStatus, error) {
	return s.projected, nil
}

func (s *stubProductRepo) Recent(_ context.Context, _ int) ([]domain.Product, error) {
	return s.products, nil
}

func (s *stubProductRepo) RecentByCategory(_ context.Context, _ string, _ int) ([]domain.Product, error) {
	return s.products, nil
}

func (s *stubProductRepo) ByStatus(_ context.Context, _ string, _ int) ([]domain.Product, error) {
	return s.products, nil
}

func (s *stubProductRepo) SearchTitle(_ context.Context, _ string) ([]domain.Product, error) {
	return s.products, nil
}

func (s *stubProductRepo) GetByID(_ context.Context, _ string) (*domain.Product, error) {
	s.getCalls++
	return s.getResult, s.getErr
}

func (s *stubProductRepo) ListByIDs(_ context.Context, _ []string) ([]domain.Product, error) {
	s.listCalls++
	return s.products, nil
}

func (s *stubProductRepo) Insert(_ context.Context, p domain.Product) (*domain.Product, error) {
	s.insertCalls++
	p.ID = testProductID
	return &p, nil
}

func (s *stubProductRepo) Update(_ context.Context, _ string, _ domain.ProductPatch) (int64, error) {
	return s.updateN, nil
}

func (s *stubProductRepo) Delete(_ context.Context, _ string) (int64, error) {
	return s.deleteN, nil
}

func testLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func TestGetProduct_InvalidID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	repo := &stubProductRepo{}
	router := gin.New()
	router.GET("/product/:id", getProductHandler(catalog.New(repo), testLogger()))

	req := httptest.NewRequest(http.MethodGet, "/product/not-a-uuid", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Invalid product ID") {
		t.Fatalf("unexpected body %s", rec.Body.String())
	}
	if repo.getCalls != 0 {
		t.Fatalf("store must not be read for a malformed id")
	}
}

func TestGetProduct_MissingAnswersEmptyObject(t *testing.T) {
	gin.SetMode(gin.TestMode)
	repo := &stubProductRepo{getErr: domain.ErrNotFound}
	router := gin.New()
	router.GET("/product/:id", getProductHandler(catalog.New(repo), testLogger()))

	req := httptest.NewRequest(http.MethodGet, "/product/"+testProductID, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if strings.TrimSpace(rec.Body.String()) != "{}" {
		t.Fatalf("expected empty object, got %s", rec.Body.String())
	}
}

func TestRestrictedCategory_Invalid(t *testing.T) {
	gin.SetMode(gin.TestMode)
	repo := &stubProductRepo{}
	router := gin.New()
	router.GET("/products/category", restrictedCategoryHandler(catalog.New(repo), testLogger()))

	req := httptest.NewRequest(http.MethodGet, "/products/category?category=sneakers", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Invalid category") {
		t.Fatalf("unexpected body %s", rec.Body.String())
	}
	if repo.listCalls != 0 {
		t.Fatalf("store must not be read for a rejected category")
	}
}

func TestListProducts_EmptyResultEncodesAsArray(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/products/:category", listProductsHandler(catalog.New(&stubProductRepo{}), testLogger()))

	req := httptest.NewRequest(http.MethodGet, "/products/shirt", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if strings.TrimSpace(rec.Body.String()) != "[]" {
		t.Fatalf("expected empty array, got %s", rec.Body.String())
	}
}

func TestListProducts_PriceRangeQuery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	repo := &stubProductRepo{}
	router := gin.New()
	router.GET("/products/:category", listProductsHandler(catalog.New(repo), testLogger()))

	req := httptest.NewRequest(http.MethodGet, "/products/shirt?minPrice=20&maxPrice=50", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if repo.lastFilter.MinPrice != 20 || repo.lastFilter.MaxPrice != 50 {
		t.Fatalf("expected compiled price range [20,50], got %+v", repo.lastFilter)
	}
	if repo.lastFilter.Category != "shirt" {
		t.Fatalf("expected literal category, got %+v", repo.lastFilter)
	}
}

func TestPricesAndStock_Summary(t *testing.T) {
	gin.SetMode(gin.TestMode)
	repo := &stubProductRepo{projected: []domain.PriceStatus{
		{Price: "19.99", Status: domain.StatusInStock},
		{Price: "abc", Status: domain.StatusSoldOut},
		{Price: "50", Status: domain.StatusInStock},
	}}
	router := gin.New()
	router.GET("/products/:category/prices-and-stock", pricesAndStockHandler(catalog.New(repo), testLogger()))

	req := httptest.NewRequest(http.MethodGet, "/products/all/prices-and-stock", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	var sum catalog.Summary
	if err := json.Unmarshal(rec.Body.Bytes(), &sum); err != nil {
		t.Fatalf("decode summary: %v", err)
	}
	if sum.LowestPrice != 19.99 || sum.HighestPrice != 50 || sum.InStockCount != 2 || sum.OutOfStockCount != 1 {
		t.Fatalf("unexpected summary %+v", sum)
	}
}

func TestCartProducts_ArrayRequired(t *testing.T) {
	gin.SetMode(gin.TestMode)
	repo := &stubProductRepo{}
	router := gin.New()
	router.POST("/get-cart-products", cartProductsHandler(catalog.New(repo), testLogger()))

	for _, body := range []string{`{}`, `{"productIds":[]}`, `{"productIds":null}`} {
		req := httptest.NewRequest(http.MethodPost, "/get-cart-products", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("body %s: expected status 400, got %d", body, rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "Product IDs array is required") {
			t.Fatalf("body %s: unexpected response %s", body, rec.Body.String())
		}
	}
	if repo.listCalls != 0 {
		t.Fatalf("store must not be read for invalid payloads")
	}
}

func TestUpdateProduct_NotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	repo := &stubProductRepo{updateN: 0}
	router := gin.New()
	router.PUT("/product/update/:id", updateProductHandler(catalog.New(repo), testLogger()))

	req := httptest.NewRequest(http.MethodPut, "/product/update/"+testProductID,
		strings.NewReader(`{"title":"New title"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Product not found") {
		t.Fatalf("unexpected body %s", rec.Body.String())
	}
}

func TestDeleteProduct_Success(t *testing.T) {
	gin.SetMode(gin.TestMode)
	repo := &stubProductRepo{deleteN: 1}
	router := gin.New()
	router.DELETE("/product/delete/:id", deleteProductHandler(catalog.New(repo), testLogger()))

	req := httptest.NewRequest(http.MethodDelete, "/product/delete/"+testProductID, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Product deleted successfully") {
		t.Fatalf("unexpected body %s", rec.Body.String())
	}
}
