package report

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Bucket is one of the fixed report categories
type Bucket string

const (
	BucketPhone       Bucket = "phone"
	BucketTablet      Bucket = "tablet"
	BucketLaptop      Bucket = "laptop"
	BucketWatch       Bucket = "watch"
	BucketAccessories Bucket = "accessories"
)

// KeywordBuckets are matched against free-text categories in this order.
// The first keyword contained in the category wins.
var KeywordBuckets = []Bucket{BucketPhone, BucketTablet, BucketLaptop, BucketWatch}

// Buckets lists every bucket, accessories last
var Buckets = []Bucket{BucketPhone, BucketTablet, BucketLaptop, BucketWatch, BucketAccessories}

// ParseBucket accepts a bucket name in any case
func ParseBucket(s string) (Bucket, bool) {
	name := Bucket(strings.ToLower(strings.TrimSpace(s)))
	for _, b := range Buckets {
		if b == name {
			return b, true
		}
	}
	return "", false
}

// Classify folds a free-text product category into a bucket
func Classify(category string) Bucket {
	lower := strings.ToLower(category)
	for _, b := range KeywordBuckets {
		if strings.Contains(lower, string(b)) {
			return b
		}
	}
	return BucketAccessories
}

// Normalize buckets raw category revenue and converts it to whole
// percentages of the bucketed total. Independent rounding means the
// values may not sum to exactly 100.
func Normalize(raw map[string]int64) CategoryData {
	totals := make(map[Bucket]int64, len(Buckets))
	var sum int64
	for category, revenue := range raw {
		if revenue <= 0 {
			continue
		}
		totals[Classify(category)] += revenue
		sum += revenue
	}

	var data CategoryData
	if sum == 0 {
		return data
	}

	total := decimal.NewFromInt(sum)
	pct := func(b Bucket) int64 {
		return decimal.NewFromInt(totals[b]).
			Mul(decimal.NewFromInt(100)).
			Div(total).
			Round(0).
			IntPart()
	}

	data.Phone = pct(BucketPhone)
	data.Tablet = pct(BucketTablet)
	data.Laptop = pct(BucketLaptop)
	data.Watch = pct(BucketWatch)
	data.Accessories = pct(BucketAccessories)
	return data
}

// Get returns the percentage for a bucket
func (d CategoryData) Get(b Bucket) int64 {
	switch b {
	case BucketPhone:
		return d.Phone
	case BucketTablet:
		return d.Tablet
	case BucketLaptop:
		return d.Laptop
	case BucketWatch:
		return d.Watch
	default:
		return d.Accessories
	}
}
