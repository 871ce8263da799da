package seed

import (
	"context"
	"fmt"

	"pescart/internal/cache"
	"pescart/internal/models"

	"gorm.io/gorm"
)

// ReferenceLocations are the fishing spots every environment starts with.
var ReferenceLocations = []models.FishingLocation{
	{Name: "Delta Dunarii - Crisan", County: "Tulcea", WaterType: models.WaterTypeDelta, Latitude: 45.1731, Longitude: 29.3814, Description: "Channels and lakes around Crisan, known for pike and zander."},
	{Name: "Lacul Snagov", County: "Ilfov", WaterType: models.WaterTypeLake, Latitude: 44.7011, Longitude: 26.1700, Description: "Natural lake north of Bucharest."},
	{Name: "Lacul Bicaz", County: "Neamt", WaterType: models.WaterTypeReservoir, Latitude: 46.9178, Longitude: 26.0936, Description: "Largest reservoir in Romania, trout and perch."},
	{Name: "Raul Mures - Deva", County: "Hunedoara", WaterType: models.WaterTypeRiver, Latitude: 45.8833, Longitude: 22.9000, Description: "Barbel and chub along the Mures."},
	{Name: "Lacul Vidraru", County: "Arges", WaterType: models.WaterTypeReservoir, Latitude: 45.3667, Longitude: 24.6333, Description: "Mountain reservoir below the Transfagarasan."},
	{Name: "Balta Mica a Brailei", County: "Braila", WaterType: models.WaterTypeDelta, Latitude: 44.9667, Longitude: 27.9500, Description: "Floodplain wetlands, carp and catfish."},
	{Name: "Lacul Tarnita", County: "Cluj", WaterType: models.WaterTypeReservoir, Latitude: 46.7167, Longitude: 23.2000, Description: "Reservoir on the Somesul Cald."},
	{Name: "Raul Olt - Slatina", County: "Olt", WaterType: models.WaterTypeRiver, Latitude: 44.4300, Longitude: 24.3700, Description: "Slow stretches of the Olt, good for carp."},
	{Name: "Lacul Razim", County: "Tulcea", WaterType: models.WaterTypeLake, Latitude: 44.9333, Longitude: 28.9500, Description: "Large brackish lagoon south of the delta."},
	{Name: "Portul Tomis", County: "Constanta", WaterType: models.WaterTypeSea, Latitude: 44.1733, Longitude: 28.6600, Description: "Shore fishing for horse mackerel and goby."},
	{Name: "Balta Comana", County: "Giurgiu", WaterType: models.WaterTypePond, Latitude: 44.1667, Longitude: 26.1500, Description: "Protected wetland pond near Comana."},
}

// Locations inserts the reference locations that are not present yet and
// drops the cached location list.
func Locations(db *gorm.DB) error {
	for _, ref := range ReferenceLocations {
		loc := ref
		if err := db.Where(models.FishingLocation{Name: loc.Name}).FirstOrCreate(&loc).Error; err != nil {
			return fmt.Errorf("seed location %q: %w", loc.Name, err)
		}
	}
	cache.InvalidateLocations(context.Background())
	return nil
}
