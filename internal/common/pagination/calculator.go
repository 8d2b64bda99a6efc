package pagination

// CalculateOffset calculates the slice offset based on page number and page size.
// Page numbers are 1-based, so page 1 has offset 0.
//
// Formula: offset = (page - 1) * size
//
// Examples:
//   - Page 1, Size 6 -> Offset 0
//   - Page 2, Size 6 -> Offset 6
//   - Page 3, Size 10 -> Offset 20
func CalculateOffset(page, size int) int {
	return (page - 1) * size
}

// CalculateTotalPages calculates the total number of pages based on total items and size.
// Uses ceiling division to ensure all items are included.
//
// Special cases:
//   - If total is 0, returns 1 (always at least 1 page)
//   - If total < size, returns 1
//   - Otherwise, returns ceil(total / size)
//
// Examples:
//   - Total 0, Size 6 -> 1 page
//   - Total 6, Size 6 -> 1 page
//   - Total 7, Size 6 -> 2 pages
//   - Total 100, Size 20 -> 5 pages
func CalculateTotalPages(total int64, size int) int {
	if total == 0 {
		return 1 // Always at least 1 page
	}
	// Ceiling division: (total + size - 1) / size
	totalPages := int((total + int64(size) - 1) / int64(size))
	return totalPages
}

// Clamp constrains a requested page number to the valid range [1, totalPages].
// A page beyond the available range (after a filter change or a deletion shrank
// the list) lands on the last page instead of an empty one; a page below 1
// lands on the first.
//
// Examples:
//   - Clamp(5, 3) -> 3
//   - Clamp(0, 3) -> 1
//   - Clamp(2, 3) -> 2
func Clamp(page, totalPages int) int {
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}

// PageBounds returns the half-open slice interval [start, end) for the given
// page over a list of total items. The page number is assumed to already be
// clamped; bounds are additionally capped to the list length.
func PageBounds(page, size, total int) (start, end int) {
	start = CalculateOffset(page, size)
	if start > total {
		start = total
	}
	end = start + size
	if end > total {
		end = total
	}
	return start, end
}
