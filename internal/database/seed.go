package database

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/soukapp/souk/internal/catalog"
)

// SeedDemo populates the demo catalog for new databases. It is idempotent
// and safe to run on every startup: it does nothing once vendors exist.
func SeedDemo(ctx context.Context, db *sql.DB) error {
	var count int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM vendors`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	return WithTx(db, func(tx *sql.Tx) error {
		for _, v := range demoVendors {
			if _, err := tx.ExecContext(ctx, `
			INSERT INTO vendors(id, name, category, tagline, area, rating, review_count, eta, delivery_fee, verified)
			VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				seedID("vendor:"+v.name), v.name, v.category, v.tagline, v.area, v.rating, v.reviews, v.eta, v.fee, v.verified); err != nil {
				return err
			}
		}
		for _, s := range demoServices {
			if _, err := tx.ExecContext(ctx, `
			INSERT INTO services(id, vendor_id, name, description, price, duration_min)
			VALUES(?, ?, ?, ?, ?, ?)`,
				seedID("service:"+s.vendor+":"+s.name), seedID("vendor:"+s.vendor), s.name, s.desc, s.price, s.duration); err != nil {
				return err
			}
		}
		for _, it := range demoItems {
			if _, err := tx.ExecContext(ctx, `
			INSERT INTO items(id, vendor_id, name, section, price, in_stock)
			VALUES(?, ?, ?, ?, ?, 1)`,
				seedID("item:"+it.vendor+":"+it.name), seedID("vendor:"+it.vendor), it.name, it.section, it.price); err != nil {
				return err
			}
		}
		for _, p := range demoProperties {
			if _, err := tx.ExecContext(ctx, `
			INSERT INTO properties(id, title, area, city, nightly, beds, baths, guests, rating)
			VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				seedID("property:"+p.title), p.title, p.area, p.city, p.nightly, p.beds, p.baths, p.guests, p.rating); err != nil {
				return err
			}
		}
		for _, rp := range demoRides {
			if _, err := tx.ExecContext(ctx, `
			INSERT INTO ride_providers(id, name, vehicle_type, rating, base_fare, per_km, eta, wheelchair)
			VALUES(?, ?, ?, ?, ?, ?, ?, ?)`,
				seedID("ride:"+rp.name), rp.name, rp.vehicle, rp.rating, rp.base, rp.perKM, rp.eta, rp.wheelchair); err != nil {
				return err
			}
		}
		for _, c := range demoCompanions {
			if _, err := tx.ExecContext(ctx, `
			INSERT INTO companions(id, name, bio, specialties, rating, hourly_rate, languages)
			VALUES(?, ?, ?, ?, ?, ?, ?)`,
				seedID("companion:"+c.name), c.name, c.bio, c.specialties, c.rating, c.rate, c.languages); err != nil {
				return err
			}
		}
		return nil
	})
}

func seedID(name string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte("catalog:"+name)).String()
}

var demoVendors = []struct {
	name, category, tagline, area, eta, fee string
	rating                                  float64
	reviews, verified                       int
}{
	{"Sparkle Homes", catalog.VendorCleaning, "Spotless, every time", "Kilimani", "", "0", 4.9, 212, 1},
	{"FreshNest Cleaners", catalog.VendorCleaning, "Eco-friendly home care", "Westlands", "", "0", 4.6, 98, 1},
	{"FixItFred", catalog.VendorHandyman, "No job too small", "Kilimani", "", "0", 4.7, 164, 1},
	{"Apex Repairs", catalog.VendorHandyman, "Certified electricians & plumbers", "CBD", "", "0", 4.5, 77, 0},
	{"Glow Studio", catalog.VendorBeauty, "Hair, nails & skincare", "Lavington", "", "0", 4.8, 301, 1},
	{"Urban Barbers", catalog.VendorBeauty, "Walk-ins welcome", "Westlands", "", "0", 4.4, 143, 0},
	{"Mama Oliech", catalog.VendorRestaurant, "Famous fish since 1992", "Kilimani", "35-45 min", "1.50", 4.8, 1240, 1},
	{"Burger Yard", catalog.VendorRestaurant, "Smash burgers & shakes", "Westlands", "25-35 min", "2.00", 4.3, 560, 0},
	{"GreenGrocer", catalog.VendorGrocery, "Farm-fresh daily", "Kilimani", "45-60 min", "2.50", 4.6, 430, 1},
	{"QuickMart Express", catalog.VendorGrocery, "Essentials in an hour", "CBD", "30-45 min", "1.00", 4.2, 210, 0},
}

var demoServices = []struct {
	vendor, name, desc, price string
	duration                  int
}{
	{"Sparkle Homes", "Standard Cleaning", "2 bed / 1 bath tidy-up", "45", 120},
	{"Sparkle Homes", "Deep Cleaning", "Full scrub incl. oven & windows", "85", 180},
	{"Sparkle Homes", "Move-out Cleaning", "End of lease, guaranteed", "120", 240},
	{"FreshNest Cleaners", "Standard Cleaning", "Eco products only", "40", 120},
	{"FreshNest Cleaners", "Carpet Shampoo", "Per room", "25", 60},
	{"FixItFred", "General Repair", "First hour, parts extra", "40", 60},
	{"FixItFred", "Furniture Assembly", "Flat-pack assembly", "35", 90},
	{"Apex Repairs", "Electrical Fault Fix", "Licensed electrician call-out", "55", 90},
	{"Apex Repairs", "Plumbing Repair", "Leaks, blockages, installs", "50", 90},
	{"Glow Studio", "Haircut & Style", "Wash, cut, blow-dry", "30", 60},
	{"Glow Studio", "Gel Manicure", "Up to 3 weeks wear", "22", 45},
	{"Glow Studio", "Facial Treatment", "Deep cleanse facial", "40", 60},
	{"Urban Barbers", "Classic Cut", "Clippers & scissors", "12", 30},
	{"Urban Barbers", "Hot Towel Shave", "Straight razor shave", "15", 30},
}

var demoItems = []struct {
	vendor, name, section, price string
}{
	{"Mama Oliech", "Whole Tilapia", "Mains", "14"},
	{"Mama Oliech", "Ugali", "Sides", "3"},
	{"Mama Oliech", "Sukuma Wiki", "Sides", "2.50"},
	{"Mama Oliech", "Passion Juice", "Drinks", "2"},
	{"Burger Yard", "Double Smash Burger", "Burgers", "8.50"},
	{"Burger Yard", "Loaded Fries", "Sides", "4"},
	{"Burger Yard", "Vanilla Shake", "Drinks", "3.50"},
	{"GreenGrocer", "Bananas (1kg)", "Fruit", "1.20"},
	{"GreenGrocer", "Avocados (4pc)", "Fruit", "2"},
	{"GreenGrocer", "Fresh Milk (1L)", "Dairy", "1.10"},
	{"GreenGrocer", "Brown Bread", "Bakery", "0.90"},
	{"QuickMart Express", "Drinking Water (5L)", "Essentials", "1.80"},
	{"QuickMart Express", "Eggs (tray)", "Essentials", "3.20"},
	{"Glow Studio", "Argan Hair Oil", "Hair", "18"},
	{"Glow Studio", "Shea Body Butter", "Skincare", "12"},
	{"Glow Studio", "Nail Care Kit", "Nails", "9.50"},
}

var demoProperties = []struct {
	title, area, city, nightly string
	beds, baths, guests        int
	rating                     float64
}{
	{"Karen Garden Cottage", "Karen", "Nairobi", "120", 2, 1, 4, 4.7},
	{"Westlands Skyline Loft", "Westlands", "Nairobi", "95", 1, 1, 2, 4.5},
	{"Diani Beach Villa", "Diani", "Kwale", "210", 3, 2, 6, 4.9},
	{"Naivasha Lakeside Cabin", "Naivasha", "Nakuru", "80", 2, 1, 4, 4.4},
}

var demoRides = []struct {
	name, vehicle, base, perKM, eta string
	rating                          float64
	wheelchair                      int
}{
	{"CareWheels", "Van (wheelchair lift)", "5", "1.20", "10 min", 4.8, 1},
	{"Gentle Rides", "Sedan", "3", "0.90", "7 min", 4.6, 0},
	{"SafariAssist", "SUV", "4", "1.00", "12 min", 4.5, 1},
}

var demoCompanions = []struct {
	name, bio, specialties, rate, languages string
	rating                                  float64
}{
	{"Grace N.", "Retired nurse, loves board games and long walks.", "Dementia care, mobility support", "9", "English, Swahili", 4.9},
	{"Peter K.", "Patient listener, keen gardener.", "Errands, reading aloud", "7", "English, Swahili, Kikuyu", 4.7},
	{"Lucy A.", "Former teacher, great with crafts.", "Crafts, light exercise", "8", "English, Swahili", 4.8},
}
