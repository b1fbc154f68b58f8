// Package seed populates the summer-house catalogue. Seeding is a separate
// step from migration and is idempotent: it only writes when the table is
// empty.
package seed

import (
	"context"

	"github.com/mkj/summerhouse-voting/internal/domain"
	"github.com/mkj/summerhouse-voting/internal/repository"
	"github.com/sirupsen/logrus"
)

var sampleSummerHouses = []domain.SummerHouse{
	{
		Name:       "Rudkøbing - Totalrenoveret byhus med spa",
		ImageURL:   "https://picture.feline.dk/get/a9821af3-f71c-4829-86b4-e6e5bc3d72fb_1_w500h375ac1fs1kar1rb1.jpg?v2",
		BookingURL: "https://www.dansk-sommerhusferie.dk/sommerhussoegning/Y2d5m-iya_rK6949Dq6Nt1aY_hJjY2Jwfu9yrkK5gAEEFJjBFJABxA5bWAA/557-LL249?sortorder=Price",
	},
	{
		Name:       "Haderslev 1 - Luksuriøst sommerhus nær strand",
		ImageURL:   "https://picture.feline.dk/get/f989adaf-37d1-405e-8589-51eb57c85a16_9_w500h375ac1fs1kar1rb1.jpg?v2",
		BookingURL: "https://www.dansk-sommerhusferie.dk/sommerhussoegning/Y2cpvDxPVW1pjsPK5mBpp_gZPGJsTAzO713OVSgXMIDAkVsMDArMYCaQAcQOW1gA/Map/x134.85942245573398y80.5629070301312z10/160-C2190",
	},
	{
		Name:       "Haderslev 2 - Tapagervej, Hejlsminde",
		ImageURL:   "https://picture.feline.dk/get/d008a480-fb48-4079-b6c5-4ecaa88a7b3a_1_w500h375ac1fs1kar1rb1.jpg?v2",
		BookingURL: "https://www.dansk-sommerhusferie.dk/sommerhussoegning/Y2cpvDxPVW1pjsPK5mBpp_gZPGJsTAzO713OVSgXMIDAkVsMDArMYCaQAcQOW1gA/Map/x134.84521132653958y80.56731331389582z9/090-53139",
	},
	{
		Name:       "Haderslev 3 - Moderne sommerhus nær strand",
		ImageURL:   "https://picture.feline.dk/get/bb3827ed-0eee-4dd5-bd4d-211cc61a73ef_9_w500h375ac1fs1kar1rb1.jpg?v2",
		BookingURL: "https://www.dansk-sommerhusferie.dk/sommerhussoegning/Y2cpvDxPVW1pjsPK5mBpp_gZPGJsTAzO713OVSgXMIDAkVsMDArMYCaQAcQOW1gA/Map/x134.84521132653958y80.56731331389582z9/160-C2156",
	},
	{
		Name:       "Bagenkop - Hyggeligt og rummeligt feriehus",
		ImageURL:   "https://picture.feline.dk/get/9ab281d5-1b76-4dfd-9583-43bad54a4921_7_w500h375ac1fs1kar1rb1.jpg?v2",
		BookingURL: "https://www.sommerhus-siden.dk/sommerhussoegning/Y2V5m-iya_rK6949Dq6Nt1aY_hJjY2Jwfu9yrkK5gIGBQYFBgRlIMQAA/130-G10937?sortorder=Price",
	},
	{
		Name:       "Christiansfeld - Svensk sommerhus nær natur",
		ImageURL:   "https://picture.feline.dk/get/fd9782c9-2120-496f-bda7-80c9d447c7d6_3_w500h375ac1fs1kar1rb1.jpg?v2",
		BookingURL: "https://www.dansk-sommerhusferie.dk/sommerhussoegning/Y2cpvDxPVW1pjsPK5mBpp_gZPGJsTAzO713OVSgXMIDAkVsMDArMYCaQAcQOW1gA/Map/x134.82268935388333y80.53432983201182z9/130-F04123",
	},
}

// Run writes the sample catalogue when the table is empty. Returns the
// number of houses created, which is zero on an already-seeded database.
func Run(ctx context.Context, houseRepo repository.SummerHouseRepository) (int, error) {
	count, err := houseRepo.Count(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		logrus.Info("catalogue already seeded, skipping")
		return 0, nil
	}

	created := 0
	for i := range sampleSummerHouses {
		house := sampleSummerHouses[i]
		if err := houseRepo.Create(ctx, &house); err != nil {
			return created, err
		}
		logrus.Infof("seeded summer house: %s", house.Name)
		created++
	}

	return created, nil
}
