// Package money renders integer rupiah amounts the way the storefront
// displays them.
package money

import "strconv"

// FormatIDR formats n as "Rp 90.000". Prices are whole rupiah, so there
// are no decimals.
func FormatIDR(n int) string {
	sign := ""

	if n < 0 {
		sign = "-"
		n = -n
	}

	digits := strconv.Itoa(n)

	var grouped []byte

	for i, d := range []byte(digits) {
		if i > 0 && (len(digits)-i)%3 == 0 {
			grouped = append(grouped, '.')
		}
		grouped = append(grouped, d)
	}

	return sign + "Rp " + string(grouped)
}
