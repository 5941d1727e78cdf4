package utils

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

var addressRe = regexp.MustCompile(`^0x[a-fA-F0-9]{40}$`)

// IsAddress reports whether s is a 0x prefixed 20 byte hex address
func IsAddress(s string) bool {
	return addressRe.MatchString(s) && common.IsHexAddress(s)
}

// SameAddress compares two wallet addresses ignoring hex case
func SameAddress(a, b string) bool {
	return strings.EqualFold(a, b)
}

// ChecksumAddress returns the EIP-55 form of a valid address
func ChecksumAddress(s string) string {
	return common.HexToAddress(s).Hex()
}

// ParsePagination Parsing pagination parameters, maximum 100 records, default return 10 records on page 1
func ParsePagination(pageStr, sizeStr string) (int, int) {
	page, _ := strconv.Atoi(pageStr)
	if page < 1 {
		page = 1
	}
	size, _ := strconv.Atoi(sizeStr)
	if size < 1 || size > 100 {
		size = 10
	}
	return page, size
}

// ParsePage same as ParsePagination for already parsed values
func ParsePage(page, size int) (int, int) {
	if page < 1 {
		page = 1
	}
	if size < 1 || size > 100 {
		size = 10
	}
	return page, size
}

// TotalPages number of pages needed for total records
func TotalPages(total int64, size int) int {
	if size <= 0 || total <= 0 {
		return 0
	}
	return int((total + int64(size) - 1) / int64(size))
}

// PageSlice cuts one page out of an in-memory result set
func PageSlice[T any](items []T, page, size int) []T {
	start := (page - 1) * size
	if start >= len(items) || start < 0 {
		return []T{}
	}
	end := start + size
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// SplitList parses a comma separated query value, empty parts skipped
func SplitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
