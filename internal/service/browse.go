package service

import (
	"strings"
	"time"

	"github.com/ShivenPandit/Super-Mall-Web-App/internal/catalog"
	"github.com/ShivenPandit/Super-Mall-Web-App/internal/domain"
	"github.com/ShivenPandit/Super-Mall-Web-App/internal/query"
)

// shopSchema maps filter criteria onto shop fields for the storefront.
var shopSchema = query.Schema[domain.Shop]{
	Status:   func(s domain.Shop) string { return s.Status },
	Category: func(s domain.Shop) string { return s.Category },
	Floor:    func(s domain.Shop) string { return s.Floor },
	SearchFields: []func(domain.Shop) string{
		func(s domain.Shop) string { return s.Name },
		func(s domain.Shop) string { return s.Description },
		func(s domain.Shop) string { return s.Category },
	},
}

// offerSchema maps filter criteria onto offer fields. The denormalized shop
// name is searchable so "aroma" finds the cafe's offers.
var offerSchema = query.Schema[domain.Offer]{
	OfferType: func(o domain.Offer) string { return o.OfferType },
	ShopID:    func(o domain.Offer) string { return o.ShopID },
	SearchFields: []func(domain.Offer) string{
		func(o domain.Offer) string { return o.Title },
		func(o domain.Offer) string { return o.Description },
		func(o domain.Offer) string { return o.ShopName },
	},
}

// BrowseService serves the public storefront: filtered, searched, paginated
// views over the in-memory catalog caches.
type BrowseService struct {
	shops      *catalog.Cache[domain.Shop]
	offers     *catalog.Cache[domain.Offer]
	categories *catalog.Cache[domain.Category]
	floors     *catalog.Cache[domain.Floor]
}

// NewBrowseService creates a browse service over the catalog caches.
func NewBrowseService(
	shops *catalog.Cache[domain.Shop],
	offers *catalog.Cache[domain.Offer],
	categories *catalog.Cache[domain.Category],
	floors *catalog.Cache[domain.Floor],
) *BrowseService {
	return &BrowseService{
		shops:      shops,
		offers:     offers,
		categories: categories,
		floors:     floors,
	}
}

// BrowseShops filters the shop catalog and returns the requested page.
func (s *BrowseService) BrowseShops(criteria query.Criteria, page, pageSize int) query.Page[domain.Shop] {
	filtered := query.Apply(s.shops.Snapshot(), criteria, shopSchema)
	return query.Paginate(filtered, page, pageSize)
}

// BrowseOffers filters the offer catalog and returns the requested page.
// When activeOnly is set, offers not running today are dropped before
// pagination.
func (s *BrowseService) BrowseOffers(criteria query.Criteria, page, pageSize int, activeOnly bool) query.Page[domain.Offer] {
	offers := s.offers.Snapshot()
	if activeOnly {
		today := time.Now().UTC().Format(domain.DateLayout)
		active := make([]domain.Offer, 0, len(offers))
		for _, o := range offers {
			if o.ActiveOn(today) {
				active = append(active, o)
			}
		}
		offers = active
	}

	filtered := query.Apply(offers, criteria, offerSchema)
	return query.Paginate(filtered, page, pageSize)
}

// Categories returns the cached category list.
func (s *BrowseService) Categories() []domain.Category {
	return s.categories.Snapshot()
}

// Floors returns the cached floor list.
func (s *BrowseService) Floors() []domain.Floor {
	return s.floors.Snapshot()
}

// Dashboard summarizes the catalog for the admin landing page.
type Dashboard struct {
	Shops        int `json:"shops"`
	ActiveShops  int `json:"activeShops"`
	Offers       int `json:"offers"`
	ActiveOffers int `json:"activeOffers"`
	Categories   int `json:"categories"`
	Floors       int `json:"floors"`
}

// DashboardCounts computes entity counts from the catalog caches.
func (s *BrowseService) DashboardCounts() Dashboard {
	shops := s.shops.Snapshot()
	offers := s.offers.Snapshot()
	today := time.Now().UTC().Format(domain.DateLayout)

	d := Dashboard{
		Shops:      len(shops),
		Offers:     len(offers),
		Categories: s.categories.Len(),
		Floors:     s.floors.Len(),
	}

	for _, shop := range shops {
		if strings.EqualFold(shop.Status, domain.ShopStatusActive) {
			d.ActiveShops++
		}
	}
	for _, o := range offers {
		if o.ActiveOn(today) {
			d.ActiveOffers++
		}
	}

	return d
}
