package catalog

import (
	"context"
	"database/sql"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/shopspring/decimal"
)

// Repo reads the demo catalog. All catalog data is read-only at runtime;
// writes happen only through the seeder.
type Repo struct {
	db *sql.DB
}

func NewRepo(db *sql.DB) *Repo { return &Repo{db: db} }

func (r *Repo) VendorsByCategory(ctx context.Context, category string) ([]Vendor, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, name, category, tagline, area, rating, review_count, eta, delivery_fee, verified
	FROM vendors WHERE category = ? ORDER BY rating DESC, name ASC`, category)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanVendors(rows)
}

func (r *Repo) VendorByID(ctx context.Context, id string) (*Vendor, error) {
	row := r.db.QueryRowContext(ctx, `
	SELECT id, name, category, tagline, area, rating, review_count, eta, delivery_fee, verified
	FROM vendors WHERE id = ?`, id)
	v, err := scanVendor(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *Repo) ServicesByVendor(ctx context.Context, vendorID string) ([]Service, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, vendor_id, name, description, price, duration_min
	FROM services WHERE vendor_id = ? ORDER BY price ASC`, vendorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Service
	for rows.Next() {
		var s Service
		var price string
		if err := rows.Scan(&s.ID, &s.VendorID, &s.Name, &s.Description, &price, &s.DurationMin); err != nil {
			return nil, err
		}
		if s.Price, err = decimal.NewFromString(price); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *Repo) ItemsByVendor(ctx context.Context, vendorID string) ([]Item, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, vendor_id, name, section, price, in_stock
	FROM items WHERE vendor_id = ? ORDER BY section, name`, vendorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Item
	for rows.Next() {
		var it Item
		var price string
		if err := rows.Scan(&it.ID, &it.VendorID, &it.Name, &it.Section, &price, &it.InStock); err != nil {
			return nil, err
		}
		if it.Price, err = decimal.NewFromString(price); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

func (r *Repo) Properties(ctx context.Context) ([]Property, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, title, area, city, nightly, beds, baths, guests, rating
	FROM properties ORDER BY rating DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Property
	for rows.Next() {
		var p Property
		var nightly string
		if err := rows.Scan(&p.ID, &p.Title, &p.Area, &p.City, &nightly, &p.Beds, &p.Baths, &p.Guests, &p.Rating); err != nil {
			return nil, err
		}
		if p.Nightly, err = decimal.NewFromString(nightly); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *Repo) RideProviders(ctx context.Context) ([]RideProvider, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, name, vehicle_type, rating, base_fare, per_km, eta, wheelchair
	FROM ride_providers ORDER BY rating DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []RideProvider
	for rows.Next() {
		var rp RideProvider
		var base, perKM string
		if err := rows.Scan(&rp.ID, &rp.Name, &rp.VehicleType, &rp.Rating, &base, &perKM, &rp.ETA, &rp.Wheelchair); err != nil {
			return nil, err
		}
		if rp.BaseFare, err = decimal.NewFromString(base); err != nil {
			return nil, err
		}
		if rp.PerKM, err = decimal.NewFromString(perKM); err != nil {
			return nil, err
		}
		out = append(out, rp)
	}
	return out, rows.Err()
}

func (r *Repo) Companions(ctx context.Context) ([]Companion, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, name, bio, specialties, rating, hourly_rate, languages
	FROM companions ORDER BY rating DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Companion
	for rows.Next() {
		var c Companion
		var rate string
		if err := rows.Scan(&c.ID, &c.Name, &c.Bio, &c.Specialties, &c.Rating, &rate, &c.Languages); err != nil {
			return nil, err
		}
		if c.HourlyRate, err = decimal.NewFromString(rate); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// VendorsByIDs returns the vendors whose ids are in ids, sorted by name.
func (r *Repo) VendorsByIDs(ctx context.Context, ids []string) ([]Vendor, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	placeholders := strings.Repeat("?,", len(ids)-1) + "?"
	args := make([]interface{}, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, name, category, tagline, area, rating, review_count, eta, delivery_fee, verified
	FROM vendors WHERE id IN (`+placeholders+`) ORDER BY name ASC`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanVendors(rows)
}

// SearchVendors matches vendor names by case-folded substring or by
// levenshtein distance at most 2, ranked best match first.
func (r *Repo) SearchVendors(ctx context.Context, query string) ([]Vendor, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, name, category, tagline, area, rating, review_count, eta, delivery_fee, verified
	FROM vendors ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	all, err := scanVendors(rows)
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil, nil
	}

	type ranked struct {
		v    Vendor
		dist int
	}
	var matches []ranked
	for _, v := range all {
		name := strings.ToLower(v.Name)
		if strings.Contains(name, q) {
			matches = append(matches, ranked{v: v, dist: 0})
			continue
		}
		if d := levenshtein.ComputeDistance(q, name); d <= 2 {
			matches = append(matches, ranked{v: v, dist: d})
			continue
		}
		// also try individual words of the vendor name
		for _, word := range strings.Fields(name) {
			if d := levenshtein.ComputeDistance(q, word); d <= 2 {
				matches = append(matches, ranked{v: v, dist: d + 1})
				break
			}
		}
	}
	sort.SliceStable(matches, func(i, j int) bool { return matches[i].dist < matches[j].dist })

	out := make([]Vendor, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.v)
	}
	return out, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanVendor(row rowScanner) (Vendor, error) {
	var v Vendor
	var fee string
	err := row.Scan(&v.ID, &v.Name, &v.Category, &v.Tagline, &v.Area, &v.Rating, &v.ReviewCount, &v.ETA, &fee, &v.Verified)
	if err != nil {
		return Vendor{}, err
	}
	if v.DeliveryFee, err = decimal.NewFromString(fee); err != nil {
		return Vendor{}, err
	}
	return v, nil
}

func scanVendors(rows *sql.Rows) ([]Vendor, error) {
	var out []Vendor
	for rows.Next() {
		v, err := scanVendor(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}
