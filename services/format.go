package services

import (
	"github.com/dustin/go-humanize"
	"github.com/spf13/cast"
)

// FormatPrice renders an amount with thousands separators and exactly two
// decimals. It accepts any numeric or numeric-string value.
func FormatPrice(v interface{}) string {
	return humanize.FormatFloat("#,###.##", cast.ToFloat64(v))
}
