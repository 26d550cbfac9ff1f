package store

// SQL query constants organized by entity. Queries are written with $n
// placeholders; SQLiteStore rebinds them before execution.

// Listing queries.
const (
	baseListingsSelect = `
		SELECT l.listing_id, l.product_id, p.name, COALESCE(p.model_series, ''),
			l.price, l.currency, l.condition_rank,
			COALESCE(l.color, ''), COALESCE(l.battery_status, ''),
			COALESCE(l.screen_condition, ''), COALESCE(l.body_condition, ''),
			l.battery_health, l.battery_percentage,
			l.has_box, l.has_charger, l.is_sim_free, l.fully_functional, l.battery_replaced,
			COALESCE(l.platform, ''), COALESCE(l.source_url, ''), l.posted_at
		FROM listings l
		JOIN products p ON p.product_id = l.product_id`

	queryUpsertListing = `
		INSERT INTO listings (
			listing_id, product_id, price, currency, condition_rank,
			color, battery_status, screen_condition, body_condition,
			battery_health, battery_percentage,
			has_box, has_charger, is_sim_free, fully_functional, battery_replaced,
			platform, source_url, posted_at
		) VALUES (
			$1, $2, $3, $4, $5,
			$6, $7, $8, $9,
			$10, $11,
			$12, $13, $14, $15, $16,
			$17, $18, $19
		)
		ON CONFLICT (listing_id) DO UPDATE SET
			product_id = EXCLUDED.product_id,
			price = EXCLUDED.price,
			currency = EXCLUDED.currency,
			condition_rank = EXCLUDED.condition_rank,
			color = EXCLUDED.color,
			battery_status = EXCLUDED.battery_status,
			screen_condition = EXCLUDED.screen_condition,
			body_condition = EXCLUDED.body_condition,
			battery_health = EXCLUDED.battery_health,
			battery_percentage = EXCLUDED.battery_percentage,
			has_box = EXCLUDED.has_box,
			has_charger = EXCLUDED.has_charger,
			is_sim_free = EXCLUDED.is_sim_free,
			fully_functional = EXCLUDED.fully_functional,
			battery_replaced = EXCLUDED.battery_replaced,
			platform = EXCLUDED.platform,
			source_url = EXCLUDED.source_url,
			posted_at = EXCLUDED.posted_at`
)

// Product queries.
const (
	// Exact name or model series first, then prefix, then substring.
	// Ties go to the shortest name, then the lowest id.
	queryResolveProduct = `
		SELECT product_id, name, COALESCE(brand, ''), COALESCE(model_series, '')
		FROM products
		WHERE LOWER(name) LIKE $1 ESCAPE '\'
			OR LOWER(COALESCE(model_series, '')) LIKE $1 ESCAPE '\'
		ORDER BY
			CASE
				WHEN LOWER(name) = $2 OR LOWER(COALESCE(model_series, '')) = $2 THEN 0
				WHEN LOWER(name) LIKE $3 ESCAPE '\'
					OR LOWER(COALESCE(model_series, '')) LIKE $3 ESCAPE '\' THEN 1
				ELSE 2
			END,
			LENGTH(name),
			product_id
		LIMIT 1`

	queryGetProduct = `
		SELECT product_id, name, COALESCE(brand, ''), COALESCE(model_series, '')
		FROM products
		WHERE product_id = $1`

	queryUpsertProduct = `
		INSERT INTO products (product_id, name, brand, model_series)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (product_id) DO UPDATE SET
			name = EXCLUDED.name,
			brand = EXCLUDED.brand,
			model_series = EXCLUDED.model_series`

	queryListListedProductIDs = `
		SELECT DISTINCT product_id FROM listings ORDER BY product_id`
)

// Price history queries.
const (
	queryListPriceHistory = `
		SELECT product_id, record_date, avg_price, min_price, max_price, listing_count
		FROM price_history
		WHERE product_id = $1 AND record_date >= $2
		ORDER BY record_date ASC`

	queryRecentPriceHistory = `
		SELECT product_id, record_date, avg_price, min_price, max_price, listing_count
		FROM price_history
		WHERE product_id = $1
		ORDER BY record_date DESC
		LIMIT $2`

	queryUpsertPriceHistory = `
		INSERT INTO price_history (product_id, record_date, avg_price, min_price, max_price, listing_count)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (product_id, record_date) DO UPDATE SET
			avg_price = EXCLUDED.avg_price,
			min_price = EXCLUDED.min_price,
			max_price = EXCLUDED.max_price,
			listing_count = EXCLUDED.listing_count`
)
