package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Salon is a catalog entry. Catalog salons are static for the life of the
// process and are never stored in the database.
type Salon struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Image       string   `json:"image"`
	Location    string   `json:"location"`
	Price       string   `json:"price"` // symbolic tier, e.g. "₹₹₹"
	Services    []string `json:"services"`
	Rating      float64  `json:"rating"`
	Description string   `json:"description"`

	AvailableServices []Service `json:"availableServices"`
	Reviews           []Review  `json:"reviews,omitempty"`
}

// FindService returns the service with the given id, if the salon offers it.
func (s Salon) FindService(id int) (Service, bool) {
	for _, svc := range s.AvailableServices {
		if svc.ID == id {
			return svc, true
		}
	}
	return Service{}, false
}

// ManagedSalon is a salon registered by an admin through the setup flow.
type ManagedSalon struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name            string    `gorm:"not null" json:"name"`
	Location        string    `gorm:"not null" json:"location"`
	PriceRange      string    `gorm:"type:varchar(10);default:'$$'" json:"priceRange"`
	Rating          float64   `gorm:"default:4.5" json:"rating"`
	CreatedByUserID uuid.UUID `gorm:"type:uuid;index" json:"createdBy"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func (ManagedSalon) TableName() string {
	return "salons"
}

func (s *ManagedSalon) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return
}
