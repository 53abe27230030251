package service

import (
	"strings"

	"github.com/billpie/billpie/internal/core/ports"
)

// The filter/sort/paginate idiom is shared by the bill listing and the
// payment history: pure, recomputed on every request from the full in-memory
// collection, never pushed down to the collaborator.

// matchQuery reports whether any field contains query, case-insensitively.
// An empty query matches everything.
func matchQuery(query string, fields ...string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

// normalizePageSize snaps a requested page size onto the preset list.
func normalizePageSize(size int) int {
	for _, p := range ports.PageSizePresets {
		if size == p {
			return size
		}
	}
	return ports.DefaultPageSize
}

// pageCount returns the number of pages needed for total items.
func pageCount(total, size int) int {
	if total == 0 {
		return 0
	}
	return (total + size - 1) / size
}

// clampPage forces a 1-indexed page into the valid range. Navigating past
// either boundary is a no-op: the nearest valid page is served instead.
func clampPage(page, totalPages int) int {
	if page < 1 {
		return 1
	}
	if totalPages > 0 && page > totalPages {
		return totalPages
	}
	return page
}

// pageWindow returns the half-open slice bounds for the given page.
func pageWindow(total, page, size int) (start, end int) {
	start = (page - 1) * size
	if start > total {
		start = total
	}
	end = start + size
	if end > total {
		end = total
	}
	return start, end
}
