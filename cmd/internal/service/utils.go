package service

import (
	"strconv"

	"blogapi/cmd/internal/utils"
)

// parseID parses a numeric path id. Anything unparsable cannot name a
// stored resource, so callers report it as not found.
func parseID(raw string) (int64, bool) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// nextUpdatedAt never lets 'updated_at' go backwards, even if the clock does.
func nextUpdatedAt(createdAt, updatedAt int64) int64 {
	return max(utils.NowUTC(), createdAt, updatedAt)
}
