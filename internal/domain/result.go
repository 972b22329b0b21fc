package domain

// InsertResult mirrors the driver's insert-one result
type InsertResult struct {
	Acknowledged bool `json:"acknowledged"`
	InsertedID   any  `json:"insertedId"`
}

// UpdateResult mirrors the driver's update-one result
type UpdateResult struct {
	Acknowledged  bool  `json:"acknowledged"`
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
	UpsertedCount int64 `json:"upsertedCount"`
	UpsertedID    any   `json:"upsertedId"`
}

// DeleteResult mirrors the driver's delete result
type DeleteResult struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}

// CountResult is returned by count endpoints
type CountResult struct {
	Count int64 `json:"count"`
}

// Stats is the dashboard aggregate
type Stats struct {
	Users     int64   `json:"users"`     // Estimated user count
	Donations int64   `json:"donations"` // Estimated donation count
	Revenue   float64 `json:"revenue"`   // Sum of finalized payments
}
