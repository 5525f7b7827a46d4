package usecase

import (
	"strings"

	"bp_analytics/internal/domain/entities"
)

// enrichOrders left-joins orders onto the supervisory reference by
// numeric key and computes the derived reporting fields. Every order
// appears exactly once; misses fall back to sentinel labels.
func enrichOrders(orders []entities.WorkOrder, reference []entities.SupervisionRecord) []entities.EnrichedOrder {
	byKey := make(map[int64]entities.SupervisionRecord, len(reference))
	for _, rec := range reference {
		if _, ok := byKey[rec.Key]; !ok {
			byKey[rec.Key] = rec
		}
	}

	enriched := make([]entities.EnrichedOrder, 0, len(orders))
	for _, o := range orders {
		e := entities.EnrichedOrder{
			WorkOrder:      o,
			OrderType:      deriveOrderType(o.DeclaredType, o.OrderID),
			StatusLabel:    entities.StatusLabelFor(o.UserStatus),
			Supervisor:     entities.SentinelUnassigned,
			Zone:           entities.SentinelNoZone,
			BankType:       entities.SentinelUnclassified,
			BranchCategory: o.BranchName,
		}

		if o.CostCenterKey != nil {
			if rec, ok := byKey[*o.CostCenterKey]; ok {
				if rec.Supervisor != "" {
					e.Supervisor = rec.Supervisor
				}
				if rec.Zone != "" {
					e.Zone = rec.Zone
				}
				if rec.BankType != "" {
					e.BankType = rec.BankType
				}
				if rec.Branch != "" {
					e.BranchCategory = rec.Branch
				}
				e.SegmentedBank = rec.SegmentedBank
			}
		}

		e.Specialty = o.LocationDesc
		if e.Specialty == "" {
			e.Specialty = entities.SentinelUnclassified
		}

		if o.CreatedAt != nil {
			e.MonthKey = o.CreatedAt.Format("2006-01")
			e.MonthLabel = o.CreatedAt.Format("Jan 2006")
		}
		e.DaysToAttention = daysBetween(o.CreatedAt, o.AttendedAt)
		e.DaysToCompletion = daysBetween(o.CreatedAt, o.CompletedAt)

		enriched = append(enriched, e)
	}
	return enriched
}

// deriveOrderType keeps the declared type unless it is blank or an
// unresolved formula artifact (leading "="), in which case the type is
// derived from the ERP order-number range.
func deriveOrderType(declared, orderID string) entities.OrderType {
	declared = strings.TrimSpace(declared)
	if declared == "" || strings.HasPrefix(declared, "=") {
		return entities.OrderTypeFromID(orderID)
	}
	return entities.OrderType(declared)
}
