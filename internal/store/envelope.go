package store

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/safar/go-shop-admin/internal/models"
)

// ProductList is the wrapped envelope some collection endpoints return
// instead of a bare array.
type ProductList struct {
	Products []models.Product `json:"products"`
	Total    int64            `json:"total"`
}

// decodeProductList accepts both collection shapes: the wrapped
// envelope and the bare array.
func decodeProductList(raw json.RawMessage) ([]models.Product, error) {
	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var envelope ProductList
		if err := json.Unmarshal(raw, &envelope); err != nil {
			return nil, fmt.Errorf("decode product list: %w", err)
		}
		if err := models.ValidateList(envelope.Products); err != nil {
			return nil, err
		}
		return envelope.Products, nil
	}
	return models.DecodeList[models.Product](raw)
}
