package catalogue

import (
	"fmt"

	"github.com/dcode-github/nestora/backend/models"
)

var locations = []string{"Vidyanagar", "Keshwapur", "Navanagar", "Unkal", "Gokul Road"}

func unsplash(photo string, width int) string {
	return fmt.Sprintf("https://images.unsplash.com/photo-%s?ixlib=rb-4.0.3&auto=format&fit=crop&w=%d&q=80", photo, width)
}

var listings = []models.Property{
	{
		ID: 1, Title: "Modern Minimalist Villa", Price: "₹1.25 Cr", Address: "Vidyanagar, Hubli",
		Beds: 4, Baths: 3, Sqft: 2800, Type: models.ListingForSale, IsNew: true,
		Image: unsplash("1600596542815-ffad4c1539a9", 2075),
	},
	{
		ID: 2, Title: "Luxury Beachfront Condo", Price: "₹55,000/mo", Address: "Keshwapur, Hubli",
		Beds: 3, Baths: 2.5, Sqft: 1950, Type: models.ListingForRent, IsNew: false,
		Image: unsplash("1600585154340-be6161a56a0c", 2070),
	},
	{
		ID: 3, Title: "Contemporary City Apartment", Price: "₹85 L", Address: "Navanagar, Hubli",
		Beds: 2, Baths: 2, Sqft: 1200, Type: models.ListingForSale, IsNew: true,
		Image: unsplash("1613977257363-707ba9348227", 2070),
	},
	{
		ID: 4, Title: "Panoramic Mountain Retreat", Price: "₹3.2 Cr", Address: "Unkal, Hubli",
		Beds: 5, Baths: 4.5, Sqft: 3600, Type: models.ListingForSale, IsNew: false,
		Image: unsplash("1602343168117-bb8a12d7c180", 2025),
	},
	{
		ID: 5, Title: "Coastal Luxury Mansion", Price: "₹4.5 Cr", Address: "Gokul Road, Hubli",
		Beds: 6, Baths: 5, Sqft: 4200, Type: models.ListingForSale, IsNew: true,
		Image: unsplash("1512917774080-9991f1c3d0e2", 2070),
	},
	{
		ID: 6, Title: "Downtown Loft Apartment", Price: "₹38,000/mo", Address: "Vidyanagar, Hubli",
		Beds: 2, Baths: 2, Sqft: 1800, Type: models.ListingForRent, IsNew: false,
		Image: unsplash("1560448204-e02f11c3d0e2", 2070),
	},
	{
		ID: 7, Title: "Countryside Farmhouse", Price: "₹95 L", Address: "Keshwapur, Hubli",
		Beds: 4, Baths: 3, Sqft: 2500, Type: models.ListingForSale, IsNew: false,
		Image: unsplash("1568605114967-8130f3a36994", 2070),
	},
	{
		ID: 8, Title: "Urban Penthouse Suite", Price: "₹75,000/mo", Address: "Navanagar, Hubli",
		Beds: 3, Baths: 3.5, Sqft: 2200, Type: models.ListingForRent, IsNew: true,
		Image: unsplash("1493809842364-78817add7ffb", 2070),
	},
	{
		ID: 9, Title: "Historic Brick Townhouse", Price: "₹1.75 Cr", Address: "Unkal, Hubli",
		Beds: 4, Baths: 3, Sqft: 2400, Type: models.ListingForSale, IsNew: false,
		Image: unsplash("1605146769289-440113cc3d00", 2070),
	},
	{
		ID: 10, Title: "Lakefront Cottage", Price: "₹98 L", Address: "Gokul Road, Hubli",
		Beds: 3, Baths: 2, Sqft: 1750, Type: models.ListingForSale, IsNew: true,
		Image: unsplash("1583608205776-bfd35f0d9f83", 2070),
	},
	{
		ID: 11, Title: "Commercial Office Space", Price: "₹45,000/mo", Address: "Vidyanagar, Hubli",
		Beds: 0, Baths: 2, Sqft: 1500, Type: models.ListingForRent, IsNew: true,
		Image: unsplash("1497366754035-f200968a6e72", 2069),
	},
	{
		ID: 12, Title: "Residential Land Plot", Price: "₹65 L", Address: "Gokul Road, Hubli",
		Beds: 0, Baths: 0, Sqft: 5000, Type: models.ListingForSale, IsNew: false,
		Image: unsplash("1500382017468-9049fed747ef", 2232),
	},
}

// Default returns the Hubli catalogue.
func Default() *Catalogue {
	c, err := New(listings)
	if err != nil {
		panic(err)
	}
	return c
}
