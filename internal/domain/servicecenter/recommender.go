package servicecenter

import (
	"sort"
	"strings"
)

// RankForCompany orders centers by how well their company matches the
// product's company string: exact case-insensitive matches first, then
// substring containment in either direction, then the rest alphabetically
// by company name. The ordering is advisory; no center is filtered out.
func RankForCompany(centers []*ServiceCenter, company string) []*ServiceCenter {
	query := strings.ToLower(strings.TrimSpace(company))

	out := make([]*ServiceCenter, len(centers))
	copy(out, centers)

	rank := func(sc *ServiceCenter) int {
		if query == "" {
			return 2
		}
		c := strings.ToLower(strings.TrimSpace(sc.CompanyName()))
		switch {
		case c == query:
			return 0
		case c != "" && (strings.Contains(c, query) || strings.Contains(query, c)):
			return 1
		default:
			return 2
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		ri, rj := rank(out[i]), rank(out[j])
		if ri != rj {
			return ri < rj
		}
		if ri == 2 {
			return strings.ToLower(out[i].CompanyName()) < strings.ToLower(out[j].CompanyName())
		}
		return false
	})
	return out
}
