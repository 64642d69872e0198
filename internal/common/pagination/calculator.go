package pagination

// CalculateOffset converts a 1-based page number to a database OFFSET.
// Page 1 has offset 0.
func CalculateOffset(page, limit int) int {
	return (page - 1) * limit
}

// CalculateTotalPages returns ceil(total / limit). A total of zero yields
// zero pages, matching the totalPages contract of the listing responses.
func CalculateTotalPages(total int64, limit int) int {
	if total == 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}
