// Package catalog holds the static salon catalog and the listing filters.
package catalog

import "github.com/Prithvi-Rao-879/salon-iq-ai-glow/models"

// Catalog is a read-only view over a fixed salon list.
type Catalog struct {
	salons []models.Salon
}

// New returns a catalog over salons. The slice is not copied; callers must
// not mutate it afterwards.
func New(salons []models.Salon) *Catalog {
	return &Catalog{salons: salons}
}

// Default returns the built-in catalog.
func Default() *Catalog {
	return New(defaultSalons)
}

// All returns every salon in catalog order.
func (c *Catalog) All() []models.Salon {
	out := make([]models.Salon, len(c.salons))
	copy(out, c.salons)
	return out
}

// Get returns the salon with the given id.
func (c *Catalog) Get(id int) (models.Salon, bool) {
	for _, s := range c.salons {
		if s.ID == id {
			return s, true
		}
	}
	return models.Salon{}, false
}

// ResolveNames returns the current salon and service display names, falling
// back to the given snapshots when either id no longer exists.
func (c *Catalog) ResolveNames(salonID, serviceID int, salonSnapshot, serviceSnapshot string) (string, string) {
	salonName, serviceName := salonSnapshot, serviceSnapshot
	salon, ok := c.Get(salonID)
	if !ok {
		return salonName, serviceName
	}
	salonName = salon.Name
	if svc, ok := salon.FindService(serviceID); ok {
		serviceName = svc.Name
	}
	return salonName, serviceName
}

var defaultSalons = []models.Salon{
	{
		ID:          1,
		Name:        "Luxe Hair Studio",
		Image:       "/assets/salon-1.jpg",
		Location:    "Downtown, New York",
		Price:       "₹₹₹",
		Services:    []string{"Haircut", "Styling", "Coloring"},
		Rating:      4.8,
		Description: "Modern hair salon with expert stylists specializing in cutting-edge trends and classic styles.",
		AvailableServices: []models.Service{
			{ID: 1, Name: "Haircut & Style", Duration: "60 min", Price: "₹720"},
			{ID: 2, Name: "Hair Coloring", Duration: "120 min", Price: "₹1,280"},
			{ID: 3, Name: "Highlights", Duration: "90 min", Price: "₹1,020"},
			{ID: 4, Name: "Deep Conditioning", Duration: "45 min", Price: "₹550"},
		},
		Reviews: []models.Review{
			{ID: "1", UserName: "Sneha Patel", Rating: 5, Comment: "Absolutely loved my experience! The stylists here are true artists.", Date: "15 Oct 2024"},
			{ID: "2", UserName: "Rahul Sharma", Rating: 5, Comment: "Best haircut I've had in years!", Date: "8 Oct 2024"},
		},
	},
	{
		ID:          2,
		Name:        "Elegance Beauty Spa",
		Image:       "/assets/salon-2.jpg",
		Location:    "Midtown Plaza, Mumbai",
		Price:       "₹₹₹₹",
		Services:    []string{"Facial", "Spa", "Massage"},
		Rating:      4.9,
		Description: "Luxury spa offering premium skincare treatments and relaxation therapies.",
		AvailableServices: []models.Service{
			{ID: 5, Name: "Classic Facial", Duration: "60 min", Price: "₹810"},
			{ID: 6, Name: "Anti-Aging Facial", Duration: "90 min", Price: "₹1,230"},
			{ID: 7, Name: "Body Massage", Duration: "60 min", Price: "₹940"},
			{ID: 8, Name: "Spa Package", Duration: "180 min", Price: "₹2,380"},
		},
		Reviews: []models.Review{
			{ID: "5", UserName: "Meera Iyer", Rating: 5, Comment: "The spa package is absolutely worth every penny.", Date: "18 Oct 2024"},
			{ID: "8", UserName: "Deepa Nair", Rating: 4, Comment: "Excellent service and very clean facility.", Date: "30 Sep 2024"},
		},
	},
	{
		ID:          3,
		Name:        "Polished Nails Bar",
		Image:       "/assets/salon-3.jpg",
		Location:    "Fashion District, London",
		Price:       "₹₹",
		Services:    []string{"Manicure", "Pedicure", "Nail Art"},
		Rating:      4.7,
		Description: "Premium nail salon with the latest trends in nail care and artistic designs.",
		AvailableServices: []models.Service{
			{ID: 9, Name: "Classic Manicure", Duration: "45 min", Price: "₹380"},
			{ID: 10, Name: "Gel Manicure", Duration: "60 min", Price: "₹550"},
			{ID: 11, Name: "Spa Pedicure", Duration: "75 min", Price: "₹640"},
			{ID: 12, Name: "Nail Art Design", Duration: "30 min", Price: "₹210"},
		},
		Reviews: []models.Review{
			{ID: "9", UserName: "Riya Kapoor", Rating: 5, Comment: "The nail art designs are incredible and so creative.", Date: "16 Oct 2024"},
		},
	},
	{
		ID:          4,
		Name:        "Radiance Makeup Studio",
		Image:       "/assets/salon-4.jpg",
		Location:    "Arts Quarter, Paris",
		Price:       "₹₹₹",
		Services:    []string{"Makeup", "Skincare", "Brows"},
		Rating:      4.9,
		Description: "Professional makeup studio for special events, weddings, and everyday glamour.",
		AvailableServices: []models.Service{
			{ID: 13, Name: "Special Event Makeup", Duration: "90 min", Price: "₹1,060"},
			{ID: 14, Name: "Bridal Makeup", Duration: "120 min", Price: "₹1,700"},
			{ID: 15, Name: "Eyebrow Shaping", Duration: "30 min", Price: "₹300"},
			{ID: 16, Name: "Lash Extensions", Duration: "90 min", Price: "₹1,280"},
		},
		Reviews: []models.Review{
			{ID: "13", UserName: "Ananya Joshi", Rating: 5, Comment: "They did my bridal makeup and I looked absolutely stunning!", Date: "20 Oct 2024"},
		},
	},
	{
		ID:          5,
		Name:        "Urban Edge Barbershop",
		Image:       "/assets/salon-5.jpg",
		Location:    "Hillside, Los Angeles",
		Price:       "₹₹",
		Services:    []string{"Haircut", "Shave", "Beard Trim"},
		Rating:      4.8,
		Description: "Contemporary barbershop combining classic techniques with modern style.",
		AvailableServices: []models.Service{
			{ID: 17, Name: "Haircut", Duration: "45 min", Price: "₹470"},
			{ID: 18, Name: "Hot Towel Shave", Duration: "30 min", Price: "₹380"},
			{ID: 19, Name: "Beard Trim & Shape", Duration: "30 min", Price: "₹300"},
			{ID: 20, Name: "Full Service", Duration: "90 min", Price: "₹810"},
		},
		Reviews: []models.Review{
			{ID: "17", UserName: "Arjun Mehta", Rating: 5, Comment: "Best barbershop in town!", Date: "17 Oct 2024"},
		},
	},
	{
		ID:          6,
		Name:        "Vintage Glam Salon",
		Image:       "/assets/salon-6.jpg",
		Location:    "Business District, Singapore",
		Price:       "₹₹₹",
		Services:    []string{"Styling", "Treatments", "Extensions"},
		Rating:      4.7,
		Description: "Boutique salon blending vintage charm with modern hair care expertise.",
		AvailableServices: []models.Service{
			{ID: 21, Name: "Blow Dry & Style", Duration: "45 min", Price: "₹550"},
			{ID: 22, Name: "Keratin Treatment", Duration: "180 min", Price: "₹2,130"},
			{ID: 23, Name: "Hair Extensions", Duration: "240 min", Price: "₹3,400"},
			{ID: 24, Name: "Updo Styling", Duration: "90 min", Price: "₹810"},
		},
		Reviews: []models.Review{
			{ID: "21", UserName: "Ishita Chatterjee", Rating: 5, Comment: "Got the keratin treatment and my hair is now so smooth.", Date: "19 Oct 2024"},
		},
	},
}
