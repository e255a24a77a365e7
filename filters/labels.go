package filters

import "fmt"

// arrivalLabels maps the wire enum to display text. Values outside the map
// produce no label.
var arrivalLabels = map[string]string{
	ArrivalLast7:  "New: Last 7 Days",
	ArrivalLast30: "New: Last 30 Days",
	ArrivalLast60: "New: Last 60 Days",
}

// Labels renders the active-filter chips for the current params. Brand and
// seller ids are resolved through the supplied lookup tables; ids the tables
// do not know are skipped rather than rendered raw. The output order is
// fixed: brands, price, rating, arrivals, deals, sellers, delivery.
func Labels(p Params, brandTitles, sellerTitles map[string]string) []string {
	labels := make([]string, 0, len(p.BrandIDs)+len(p.Deals)+len(p.Sellers)+4)

	for _, id := range p.BrandIDs {
		if title, ok := brandTitles[id]; ok && title != "" {
			labels = append(labels, "Brand: "+title)
		}
	}

	switch {
	case p.MinPrice != nil && p.MaxPrice != nil:
		labels = append(labels, fmt.Sprintf("Price: BDT %s - BDT %s",
			formatDecimal(*p.MinPrice), formatDecimal(*p.MaxPrice)))
	case p.MinPrice != nil:
		labels = append(labels, "Min BDT "+formatDecimal(*p.MinPrice))
	case p.MaxPrice != nil:
		labels = append(labels, "Max BDT "+formatDecimal(*p.MaxPrice))
	}

	if p.Rating != nil {
		labels = append(labels, formatDecimal(*p.Rating)+"+ Stars")
	}

	if label, ok := arrivalLabels[p.NewArrivals]; ok {
		labels = append(labels, label)
	}

	for _, deal := range p.Deals {
		labels = append(labels, "Deal: "+deal)
	}

	for _, id := range p.Sellers {
		if title, ok := sellerTitles[id]; ok && title != "" {
			labels = append(labels, "Seller: "+title)
		}
	}

	for _, mode := range p.DeliveryModes {
		if mode == DeliveryExpress {
			labels = append(labels, "Express Delivery")
			break
		}
	}

	return labels
}
