package main

import "sort"

// ============================================================================
// 排序
// ============================================================================

// sortRecordsByRank 按市值排名升序稳定排序
//
// 没有排名（Rank <= 0）的记录排在最后，彼此之间保持接口返回的顺序。
func sortRecordsByRank(records []PriceRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		ri, rj := records[i].Rank, records[j].Rank
		if ri <= 0 {
			return false
		}
		if rj <= 0 {
			return true
		}
		return ri < rj
	})
}
