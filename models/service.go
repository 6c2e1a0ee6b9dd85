package models

// Service is one bookable offering of a catalog salon. Duration and Price are
// display strings; no arithmetic is done on them.
type Service struct {
	ID       int    `json:"id"` // unique within its salon only
	Name     string `json:"name"`
	Duration string `json:"duration"`
	Price    string `json:"price"`
}
