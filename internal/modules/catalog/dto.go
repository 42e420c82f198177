package catalog

// SearchQuery mirrors the search form. Date is accepted for interface
// compatibility but does not vary results.
type SearchQuery struct {
	Origin    string `form:"from"`
	Dest      string `form:"to"`
	Date      string `form:"date"`
	HighSpeed bool   `form:"hs"`
}
