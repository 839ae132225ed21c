package enums

// SizeBucket is the short code a size facet filter arrives as. Each code
// stands for the exact label stored on catalog rows.
type SizeBucket string

const (
	SizeBucketSmall    SizeBucket = "s"
	SizeBucketMedium   SizeBucket = "m"
	SizeBucketLarge    SizeBucket = "l"
	SizeBucketOversize SizeBucket = "xl"
)

var sizeBucketLabels = map[SizeBucket]string{
	SizeBucketSmall:    "Small ≤40cm",
	SizeBucketMedium:   "Medium 41–100cm",
	SizeBucketLarge:    "Large 101–180cm",
	SizeBucketOversize: "Oversize 180cm+",
}

// String implements fmt.Stringer.
func (s SizeBucket) String() string {
	return string(s)
}

// IsValid reports whether the value is a known SizeBucket code.
func (s SizeBucket) IsValid() bool {
	_, ok := sizeBucketLabels[s]
	return ok
}

// Label returns the stored size label for the bucket code. Unknown codes
// return an empty string so filters can skip them.
func (s SizeBucket) Label() string {
	return sizeBucketLabels[s]
}
