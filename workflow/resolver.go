package workflow

import (
	"github.com/shopspring/decimal"

	"bitbucket.org/kuhldata/merchdash_backend/models"
)

// Pricing and cost source labels. Every resolved value carries the label
// of the table it actually came from; the resolver never fabricates one.
const (
	SourcePriceBySeason = "pricebyseason"
	SourceSales         = "sales"
	SourceLineList      = "linelist"
	SourceLandedSheet   = "landed_sheet"
)

// PricingQuote is a resolved price for one (style, season) key. Fields
// are nil rather than zero when no source had data, so a missing price
// never shows up as a zero margin.
type PricingQuote struct {
	Msrp      *decimal.Decimal `json:"msrp"`
	Wholesale *decimal.Decimal `json:"wholesale"`
	Source    string           `json:"source"`
}

type CostQuote struct {
	Landed *decimal.Decimal `json:"landed"`
	Fob    *decimal.Decimal `json:"fob"`
	Source string           `json:"source"`
}

func (q PricingQuote) IsEmpty() bool { return q.Wholesale == nil && q.Msrp == nil }
func (q CostQuote) IsEmpty() bool    { return q.Landed == nil && q.Fob == nil }

type styleSeasonKey struct {
	styleNumber string
	season      string
}

type salesRollup struct {
	units     int
	revenue   decimal.Decimal
	wholesale decimal.Decimal
	msrp      decimal.Decimal
}

// pricingStrategy and costStrategy are single sources in the waterfall.
// Each returns nil when it has nothing for the key; the resolver takes
// the first non empty answer. Adding or reordering a source is a change
// to the strategy slice only.
type pricingStrategy func(key styleSeasonKey) *PricingQuote

type costStrategy func(key styleSeasonKey) *CostQuote

// Resolver answers pricing and cost lookups against an in memory
// snapshot of the four record sets, consulting sources in priority
// order. Results are memoized per key, so one Resolver serves one
// request or report render.
type Resolver struct {
	pricingTable map[styleSeasonKey]models.PricingRecord
	productTable map[styleSeasonKey]models.Product
	costTable    map[styleSeasonKey]models.CostRecord
	salesTable   map[styleSeasonKey]salesRollup

	pricingChain []pricingStrategy
	costChain    []costStrategy

	pricingMemo map[styleSeasonKey]PricingQuote
	costMemo    map[styleSeasonKey]CostQuote
}

func NewResolver(products []models.Product, sales []models.SalesRecord, pricing []models.PricingRecord, costs []models.CostRecord) *Resolver {
	r := &Resolver{
		pricingTable: make(map[styleSeasonKey]models.PricingRecord, len(pricing)),
		productTable: make(map[styleSeasonKey]models.Product, len(products)),
		costTable:    make(map[styleSeasonKey]models.CostRecord, len(costs)),
		salesTable:   make(map[styleSeasonKey]salesRollup),
		pricingMemo:  make(map[styleSeasonKey]PricingQuote),
		costMemo:     make(map[styleSeasonKey]CostQuote),
	}

	for _, p := range pricing {
		key := styleSeasonKey{p.StyleNumber, p.Season}
		if _, ok := r.pricingTable[key]; !ok {
			r.pricingTable[key] = p
		}
	}
	for _, p := range products {
		key := styleSeasonKey{p.StyleNumber, p.Season}
		if existing, ok := r.productTable[key]; !ok || (existing.Price.IsZero() && !p.Price.IsZero()) {
			r.productTable[key] = p
		}
	}
	for _, c := range costs {
		key := styleSeasonKey{c.StyleNumber, c.Season}
		existing, ok := r.costTable[key]
		// landed rows shadow standard rows for the same key
		if !ok || (existing.CostSource != models.CostSourceLanded && c.CostSource == models.CostSourceLanded) {
			r.costTable[key] = c
		}
	}
	for _, s := range sales {
		key := styleSeasonKey{s.StyleNumber, s.Season}
		rollup := r.salesTable[key]
		rollup.units += s.UnitsBooked
		rollup.revenue = rollup.revenue.Add(s.Revenue)
		if rollup.wholesale.IsZero() && !s.WholesalePrice.IsZero() {
			rollup.wholesale = s.WholesalePrice
		}
		if rollup.msrp.IsZero() && !s.Msrp.IsZero() {
			rollup.msrp = s.Msrp
		}
		r.salesTable[key] = rollup
	}

	r.pricingChain = []pricingStrategy{
		r.pricingFromSeasonTable,
		r.pricingFromSales,
		r.pricingFromLineList,
		r.pricingImpliedFromSales,
	}
	r.costChain = []costStrategy{
		r.costFromLandedSheet,
		r.costFromLineList,
	}
	return r
}

func nonZeroPtr(d decimal.Decimal) *decimal.Decimal {
	if d.IsZero() {
		return nil
	}
	v := d
	return &v
}

func (r *Resolver) pricingFromSeasonTable(key styleSeasonKey) *PricingQuote {
	rec, ok := r.pricingTable[key]
	if !ok {
		return nil
	}
	quote := PricingQuote{Msrp: nonZeroPtr(rec.Msrp), Wholesale: nonZeroPtr(rec.Price), Source: SourcePriceBySeason}
	if quote.IsEmpty() {
		return nil
	}
	return &quote
}

func (r *Resolver) pricingFromSales(key styleSeasonKey) *PricingQuote {
	rollup, ok := r.salesTable[key]
	if !ok {
		return nil
	}
	quote := PricingQuote{Msrp: nonZeroPtr(rollup.msrp), Wholesale: nonZeroPtr(rollup.wholesale), Source: SourceSales}
	if quote.IsEmpty() {
		return nil
	}
	return &quote
}

func (r *Resolver) pricingFromLineList(key styleSeasonKey) *PricingQuote {
	rec, ok := r.productTable[key]
	if !ok {
		return nil
	}
	quote := PricingQuote{Msrp: nonZeroPtr(rec.Msrp), Wholesale: nonZeroPtr(rec.Price), Source: SourceLineList}
	if quote.IsEmpty() {
		return nil
	}
	return &quote
}

// pricingImpliedFromSales derives wholesale as revenue / unitsBooked.
// Last resort only; the label stays "sales" because the numbers come
// from the sales table.
func (r *Resolver) pricingImpliedFromSales(key styleSeasonKey) *PricingQuote {
	rollup, ok := r.salesTable[key]
	if !ok || rollup.units <= 0 || rollup.revenue.IsZero() {
		return nil
	}
	implied := rollup.revenue.Div(decimal.NewFromInt(int64(rollup.units)))
	return &PricingQuote{Wholesale: nonZeroPtr(implied), Source: SourceSales}
}

func (r *Resolver) costFromLandedSheet(key styleSeasonKey) *CostQuote {
	rec, ok := r.costTable[key]
	if !ok || rec.CostSource != models.CostSourceLanded {
		return nil
	}
	quote := CostQuote{Landed: nonZeroPtr(rec.Landed), Fob: nonZeroPtr(rec.Fob), Source: SourceLandedSheet}
	if quote.IsEmpty() {
		return nil
	}
	return &quote
}

func (r *Resolver) costFromLineList(key styleSeasonKey) *CostQuote {
	if rec, ok := r.costTable[key]; ok && rec.CostSource == models.CostSourceStandard {
		quote := CostQuote{Landed: nonZeroPtr(rec.Landed), Fob: nonZeroPtr(rec.Fob), Source: SourceLineList}
		if !quote.IsEmpty() {
			return &quote
		}
	}
	rec, ok := r.productTable[key]
	if !ok {
		return nil
	}
	quote := CostQuote{Landed: nonZeroPtr(rec.Cost), Source: SourceLineList}
	if quote.IsEmpty() {
		return nil
	}
	return &quote
}

// ResolvePricing walks the pricing waterfall for one key: season price
// table, then sales embedded pricing, then the line list, then implied
// wholesale from aggregated sales.
func (r *Resolver) ResolvePricing(styleNumber string, season string) PricingQuote {
	key := styleSeasonKey{styleNumber, season}
	if quote, ok := r.pricingMemo[key]; ok {
		return quote
	}
	var result PricingQuote
	for _, strategy := range r.pricingChain {
		if quote := strategy(key); quote != nil {
			result = *quote
			break
		}
	}
	r.pricingMemo[key] = result
	return result
}

// ResolveCost walks the cost waterfall: landed sheet first, line list as
// the only fallback.
func (r *Resolver) ResolveCost(styleNumber string, season string) CostQuote {
	key := styleSeasonKey{styleNumber, season}
	if quote, ok := r.costMemo[key]; ok {
		return quote
	}
	var result CostQuote
	for _, strategy := range r.costChain {
		if quote := strategy(key); quote != nil {
			result = *quote
			break
		}
	}
	r.costMemo[key] = result
	return result
}

// Margin computes (wholesale - landed) / wholesale * 100. Nil when
// either side is missing or non positive; "no data" must stay
// distinguishable from a genuine zero margin.
func Margin(wholesale *decimal.Decimal, landed *decimal.Decimal) *decimal.Decimal {
	if wholesale == nil || landed == nil {
		return nil
	}
	if !wholesale.IsPositive() || !landed.IsPositive() {
		return nil
	}
	m := wholesale.Sub(*landed).Div(*wholesale).Mul(decimal.NewFromInt(100))
	return &m
}

// ResolveMargin combines both waterfalls for one key.
func (r *Resolver) ResolveMargin(styleNumber string, season string) *decimal.Decimal {
	pricing := r.ResolvePricing(styleNumber, season)
	cost := r.ResolveCost(styleNumber, season)
	return Margin(pricing.Wholesale, cost.Landed)
}
