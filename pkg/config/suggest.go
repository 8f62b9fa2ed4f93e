package config

import (
	"sort"

	"github.com/agnivade/levenshtein"
)

// Suggest 返回与 name 编辑距离最近的候选名
// 距离超过阈值时返回空字符串
func Suggest(name string, candidates []string) string {
	sorted := append([]string(nil), candidates...)
	sort.Strings(sorted)

	best := ""
	bestDist := -1
	for _, cand := range sorted {
		dist := levenshtein.ComputeDistance(name, cand)
		if dist > suggestLimit(len(cand)) {
			continue
		}
		if bestDist < 0 || dist < bestDist {
			best, bestDist = cand, dist
		}
	}
	return best
}

func suggestLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
