package service

import (
	"github.com/pkg/errors"
	"nftmarket/common/types"
	"nftmarket/common/utils"
)

// ErrRes interface error message returned
type ErrRes struct {
	ErrStr string       `json:"err_str"`          //Error message
	Fields []FieldError `json:"fields,omitempty"` //invalid input fields
}

// Page paging envelope of every list endpoint
type Page[T any] struct {
	Total      int64 `json:"total"`       //number of matching records
	Page       int   `json:"page"`        //current page, from 1
	TotalPages int   `json:"total_pages"` //number of pages
	Items      []T   `json:"items"`       //records on this page
}

// PageReq paging query parameters
type PageReq struct {
	Page  int `form:"page" json:"page"`
	Limit int `form:"limit" json:"limit"`
}

func (p PageReq) norm() (int, int) {
	return utils.ParsePage(p.Page, p.Limit)
}

func newPage[T any](items []T, total int64, page, size int) Page[T] {
	if items == nil {
		items = []T{}
	}
	return Page[T]{Total: total, Page: page, TotalPages: utils.TotalPages(total, size), Items: items}
}

// pageOf pages an in-memory result set
func pageOf[T any](all []T, req PageReq) Page[T] {
	page, size := req.norm()
	return newPage(utils.PageSlice(all, page, size), int64(len(all)), page, size)
}

var hundred = types.NewAmount(100, 0)

// SplitRoyalty splits a sale price into the seller share and the creator royalty,
// royalty = price * pct / 100 rounded down to the stored scale and seller + royalty == price
func SplitRoyalty(price, pct types.Amount) (seller, royalty types.Amount, err error) {
	if pct.Sign() < 0 || pct.Cmp(hundred) > 0 {
		return seller, royalty, errors.Errorf("royalty percentage %s out of range", pct)
	}
	if royalty, err = price.Percent(pct); err != nil {
		return seller, royalty, errors.Wrap(err, "royalty")
	}
	if seller, err = price.Sub(royalty); err != nil {
		return seller, royalty, errors.Wrap(err, "royalty")
	}
	return seller, royalty, nil
}
