package domain

import (
	"time"
)

// Offer type constants.
const (
	OfferTypePercentage  = "percentage"
	OfferTypeFixedAmount = "fixed_amount"
	OfferTypeBOGO        = "bogo"
	OfferTypeSeasonal    = "seasonal"
)

// DateLayout is the fixed-width ISO date format used for offer windows.
// Zero-padded dates in this layout compare correctly as plain strings.
const DateLayout = "2006-01-02"

// ExpiringSoonDays is the window within which an offer is flagged as
// expiring soon on offer cards.
const ExpiringSoonDays = 3

// Offer represents a promotional offer attached to a shop. StartDate and
// EndDate are ISO dates ("YYYY-MM-DD"); ShopName is denormalized so offer
// search can match it without a join.
type Offer struct {
	ID          string    `json:"id"`
	ShopID      string    `json:"shopId"`
	ShopName    string    `json:"shopName"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	OfferType   string    `json:"offerType"`
	Discount    float64   `json:"discount"`
	StartDate   string    `json:"startDate"`
	EndDate     string    `json:"endDate"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ValidOfferTypes returns the set of valid offer types.
func ValidOfferTypes() []string {
	return []string{
		OfferTypePercentage,
		OfferTypeFixedAmount,
		OfferTypeBOGO,
		OfferTypeSeasonal,
	}
}

// IsValidOfferType checks whether the given type string is a valid offer type.
func IsValidOfferType(t string) bool {
	for _, v := range ValidOfferTypes() {
		if v == t {
			return true
		}
	}
	return false
}

// ActiveOn reports whether the offer window contains the given ISO date.
// Comparison is lexical, which is correct for the fixed-width DateLayout.
// An unset boundary does not constrain the window.
func (o *Offer) ActiveOn(date string) bool {
	if o.StartDate != "" && date < o.StartDate {
		return false
	}
	if o.EndDate != "" && date > o.EndDate {
		return false
	}
	return true
}

// DaysRemaining returns the number of whole days from the given ISO date
// until the offer's end date. Negative values mean the offer has expired;
// ok is false when either date does not parse.
func (o *Offer) DaysRemaining(date string) (days int, ok bool) {
	end, err := time.Parse(DateLayout, o.EndDate)
	if err != nil {
		return 0, false
	}
	from, err := time.Parse(DateLayout, date)
	if err != nil {
		return 0, false
	}
	return int(end.Sub(from).Hours() / 24), true
}

// ExpiringSoon reports whether the offer is active on the given date and
// ends within ExpiringSoonDays.
func (o *Offer) ExpiringSoon(date string) bool {
	if !o.ActiveOn(date) {
		return false
	}
	days, ok := o.DaysRemaining(date)
	return ok && days >= 0 && days <= ExpiringSoonDays
}
