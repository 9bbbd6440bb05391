package service

import (
	"strings"

	"rideconnect/internal/domain"
)

// Keyword tables for region classification. Substring matching is a known
// heuristic (false positives possible); it is kept behind ClassifyRegion so
// the table can be swapped for structured geodata without touching pricing.
var (
	discountedRegionKeywords = []string{"slovenia", "croatia", "ljubljana", "zagreb"}
	neutralRegionKeywords    = []string{"austria"}
)

// ClassifyRegion classifies a single address by case-insensitive keyword
// match. Discounted keywords win over neutral ones.
func ClassifyRegion(address string) domain.RegionTag {
	lower := strings.ToLower(address)
	for _, keyword := range discountedRegionKeywords {
		if strings.Contains(lower, keyword) {
			return domain.RegionDiscounted
		}
	}
	for _, keyword := range neutralRegionKeywords {
		if strings.Contains(lower, keyword) {
			return domain.RegionNeutral
		}
	}
	return domain.RegionStandard
}

// classifyTrip combines both endpoints into a single trip region. Any
// discounted endpoint discounts the trip; otherwise any neutral endpoint
// exempts it from the standard-region surcharge.
func classifyTrip(pickup, dropoff string) domain.RegionTag {
	pickupTag := ClassifyRegion(pickup)
	dropoffTag := ClassifyRegion(dropoff)

	if pickupTag == domain.RegionDiscounted || dropoffTag == domain.RegionDiscounted {
		return domain.RegionDiscounted
	}
	if pickupTag == domain.RegionNeutral || dropoffTag == domain.RegionNeutral {
		return domain.RegionNeutral
	}
	return domain.RegionStandard
}
