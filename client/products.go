package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/pricenotifier/web/model"
)

const (
	productsPath       = "/products"
	productsSearchPath = "/products/search"
	productsURLPath    = "/products/url"
)

func productPath(id any) string {
	return productsPath + "/" + url.PathEscape(fmt.Sprint(id))
}

// GetProducts tracked by the current user.
func (c *Client) GetProducts(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	if err := c.do(ctx, http.MethodGet, productsPath, nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// GetProduct by ID, with its price history.
func (c *Client) GetProduct(ctx context.Context, id string) (*model.ProductDetails, error) {
	var p model.ProductDetails
	if err := c.do(ctx, http.MethodGet, productPath(id), nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

type addProductByNameRequest struct {
	ProductName string `json:"productName"`
}

// AddProductByName asks the backend to find a product by name in the store and start tracking it.
func (c *Client) AddProductByName(ctx context.Context, name string) (model.Product, error) {
	var p model.Product
	err := c.do(ctx, http.MethodPost, productsSearchPath, addProductByNameRequest{ProductName: name}, &p)
	return p, err
}

type addProductByURLRequest struct {
	ProductURL string `json:"productUrl"`
}

// AddProductByURL starts tracking the product at the given store URL.
func (c *Client) AddProductByURL(ctx context.Context, u string) (model.Product, error) {
	var p model.Product
	err := c.do(ctx, http.MethodPost, productsURLPath, addProductByURLRequest{ProductURL: u}, &p)
	return p, err
}

// DeleteProduct stops tracking the product.
func (c *Client) DeleteProduct(ctx context.Context, id model.ProductID) error {
	return c.do(ctx, http.MethodDelete, productPath(id), nil, nil)
}
