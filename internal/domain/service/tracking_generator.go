package service

// TrackingIDGenerator produces externally visible parcel tracking
// identifiers of the form ZAP-<YYYYMMDD>-<6 upper hex>. Generation is
// pure aside from clock and randomness reads; collisions within the
// 2^24 daily space are an accepted risk and are not deduplicated.
type TrackingIDGenerator interface {
	Generate() string
}
