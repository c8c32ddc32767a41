package service

import (
	"github.com/shravani12148/Goal--Based-Diversification-System/internal/apperror"
	"github.com/shravani12148/Goal--Based-Diversification-System/internal/model"
)

// Group organizes allocation rows by asset class in the canonical
// Equity, Debt, Alternatives order. Rows keep their input order within a
// class, classes with no rows are omitted, and grand totals cover every
// input row. A row carrying an unknown asset class is rejected.
func Group(rows []model.AllocationRow) (*model.GroupedAllocation, error) {
	byClass := make(map[model.AssetClass][]model.AllocationRow, len(model.AssetClassOrder))
	for _, row := range rows {
		if !row.AssetClass.IsValid() {
			return nil, apperror.InvalidInput("assetClass", "unknown asset class: "+string(row.AssetClass))
		}
		byClass[row.AssetClass] = append(byClass[row.AssetClass], row)
	}

	grouped := &model.GroupedAllocation{}
	for _, class := range model.AssetClassOrder {
		classRows, ok := byClass[class]
		if !ok {
			continue
		}

		group := model.AllocationGroup{
			AssetClass: class,
			Rows:       classRows,
		}
		for _, row := range classRows {
			group.SubtotalAllocation = group.SubtotalAllocation.Add(row.Allocation)
			group.SubtotalSIP = group.SubtotalSIP.Add(row.MonthlySIP)
		}

		grouped.Groups = append(grouped.Groups, group)
		grouped.GrandTotalAllocation = grouped.GrandTotalAllocation.Add(group.SubtotalAllocation)
		grouped.GrandTotalSIP = grouped.GrandTotalSIP.Add(group.SubtotalSIP)
	}
	return grouped, nil
}
