package helpers

import "testing"

func TestCalculateOffsetLimit(t *testing.T) {
	tests := []struct {
		name       string
		page, size int
		wantOffset uint64
		wantLimit  int
	}{
		{name: "first page", page: 1, size: 10, wantOffset: 0, wantLimit: 10},
		{name: "third page", page: 3, size: 20, wantOffset: 40, wantLimit: 20},
		{name: "zero page clamps to first", page: 0, size: 10, wantOffset: 0, wantLimit: 10},
		{name: "negative size uses default", page: 2, size: -5, wantOffset: 10, wantLimit: DefaultPageSize},
		{name: "oversized page size uses default", page: 1, size: 500, wantOffset: 0, wantLimit: DefaultPageSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offset, limit := CalculateOffsetLimit(tt.page, tt.size)
			if offset != tt.wantOffset || limit != tt.wantLimit {
				t.Errorf("CalculateOffsetLimit(%d, %d) = (%d, %d), want (%d, %d)",
					tt.page, tt.size, offset, limit, tt.wantOffset, tt.wantLimit)
			}
		})
	}
}

func TestNewPaginationInfo(t *testing.T) {
	info := NewPaginationInfo(25, 2, 10)
	if info.CurrentPage != 2 {
		t.Errorf("CurrentPage = %d, want 2", info.CurrentPage)
	}
	if info.TotalPages != 3 {
		t.Errorf("TotalPages = %d, want 3", info.TotalPages)
	}
	if info.PageSize != 10 {
		t.Errorf("PageSize = %d, want 10", info.PageSize)
	}
	if info.TotalItems != 25 {
		t.Errorf("TotalItems = %d, want 25", info.TotalItems)
	}
}

func TestNewPaginationInfoEmptyResult(t *testing.T) {
	info := NewPaginationInfo(0, 1, 10)
	if info.TotalPages != 1 {
		t.Errorf("TotalPages = %d, want 1 for an empty first page", info.TotalPages)
	}
	if info.TotalItems != 0 {
		t.Errorf("TotalItems = %d, want 0", info.TotalItems)
	}
}

func TestNewPaginationInfoClampsPastLastPage(t *testing.T) {
	info := NewPaginationInfo(5, 9, 10)
	if info.CurrentPage != 1 {
		t.Errorf("CurrentPage = %d, want 1", info.CurrentPage)
	}
	if info.TotalPages != 1 {
		t.Errorf("TotalPages = %d, want 1", info.TotalPages)
	}
}
