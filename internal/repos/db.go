package repos

import (
	"log"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// TimeFormat is how timestamps are stored: UTC, lexically sortable,
// identical to sqlite's CURRENT_TIMESTAMP rendering.
const TimeFormat = "2006-01-02 15:04:05"

func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}

	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	// Seed demo catalog + history if DB is empty
	if err := seedIfEmpty(db); err != nil {
		return nil, err
	}

	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
PRAGMA foreign_keys = ON;

-- Categories
CREATE TABLE IF NOT EXISTS categories(
  id INTEGER PRIMARY KEY,
  name TEXT NOT NULL,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_categories_name_nocase ON categories(LOWER(name));

-- Products
CREATE TABLE IF NOT EXISTS products(
  id INTEGER PRIMARY KEY,
  category_id INTEGER NOT NULL REFERENCES categories(id) ON DELETE RESTRICT,
  name TEXT NOT NULL,
  description TEXT NOT NULL DEFAULT '',
  price NUMERIC NOT NULL CHECK (price >= 0),
  active INTEGER NOT NULL DEFAULT 1,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_products_category ON products(category_id);
CREATE INDEX IF NOT EXISTS idx_products_name     ON products(LOWER(name));
CREATE INDEX IF NOT EXISTS idx_products_price    ON products(price);

-- Reviews (read-only to the ranking core)
CREATE TABLE IF NOT EXISTS reviews(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  product_id INTEGER NOT NULL REFERENCES products(id) ON DELETE CASCADE,
  user_id TEXT NOT NULL,
  rating INTEGER NOT NULL CHECK (rating BETWEEN 1 AND 5),
  comment TEXT NOT NULL DEFAULT '',
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_reviews_product ON reviews(product_id);

-- View events (user_id empty = anonymous)
CREATE TABLE IF NOT EXISTS view_events(
  id TEXT PRIMARY KEY,
  product_id INTEGER NOT NULL REFERENCES products(id) ON DELETE CASCADE,
  user_id TEXT NOT NULL DEFAULT '',
  session_id TEXT NOT NULL DEFAULT '',
  viewed_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_view_events_product ON view_events(product_id, viewed_at);
CREATE INDEX IF NOT EXISTS idx_view_events_user    ON view_events(user_id);

-- Orders (written by the checkout flow; read-only here)
CREATE TABLE IF NOT EXISTS orders(
  id TEXT PRIMARY KEY,
  user_id TEXT NOT NULL,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_orders_user       ON orders(user_id);
CREATE INDEX IF NOT EXISTS idx_orders_created_at ON orders(created_at);

CREATE TABLE IF NOT EXISTS order_items(
  order_id TEXT NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
  product_id INTEGER NOT NULL REFERENCES products(id),
  qty INTEGER NOT NULL CHECK (qty >= 1),
  unit_price NUMERIC NOT NULL,
  PRIMARY KEY (order_id, product_id)
);
CREATE INDEX IF NOT EXISTS idx_order_items_product ON order_items(product_id);

-- Search query log (append-only)
CREATE TABLE IF NOT EXISTS search_logs(
  id TEXT PRIMARY KEY,
  query TEXT NOT NULL,
  user_id TEXT NOT NULL DEFAULT '',
  result_count INTEGER NOT NULL,
  took_ms INTEGER NOT NULL DEFAULT 0,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_search_logs_created ON search_logs(created_at);
`
	_, err := db.Exec(schema)
	return err
}

func seedIfEmpty(db *sqlx.DB) error {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM categories`); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	log.Println("[seed] inserting demo catalog and activity history")

	tx := db.MustBegin()
	defer func() { _ = tx.Rollback() }()

	tx.MustExec(`INSERT INTO categories(id,name) VALUES
	  (1,'Điện thoại'),
	  (2,'Laptop'),
	  (3,'Tai nghe'),
	  (4,'Đồng hồ'),
	  (5,'Phụ kiện')`)

	tx.MustExec(`INSERT INTO products(id,category_id,name,description,price) VALUES
	  (1,1,'Galaxy A55 5G','Điện thoại tầm trung, camera tốt, pin 5000mAh',9490000),
	  (2,1,'iPhone 15 Pro','Điện thoại cao cấp, chip A17 Pro, khung titan',28990000),
	  (3,1,'Redmi Note 13','Điện thoại giá rẻ cho sinh viên',4590000),
	  (4,2,'MacBook Air M3','Laptop mỏng nhẹ cho dân văn phòng',27990000),
	  (5,2,'ThinkPad E14','Laptop doanh nhân bền bỉ, bàn phím tốt',17490000),
	  (6,3,'AirPods Pro 2','Tai nghe chống ồn chủ động',5990000),
	  (7,3,'Sony WH-CH520','Tai nghe chụp tai pin 50 giờ',990000),
	  (8,4,'Apple Watch SE','Đồng hồ thông minh theo dõi sức khỏe',6190000),
	  (9,4,'Garmin Forerunner 55','Đồng hồ chạy bộ GPS',4790000),
	  (10,5,'Sạc nhanh 25W','Củ sạc nhanh kèm cáp USB-C',390000)`)

	tx.MustExec(`INSERT INTO reviews(product_id,user_id,rating,comment) VALUES
	  (1,'u-lan',5,'Pin trâu, chụp đêm ổn'),
	  (1,'u-minh',4,'Đáng tiền'),
	  (2,'u-lan',5,'Mượt, chụp ảnh xuất sắc'),
	  (2,'u-hoa',5,'Xứng đáng flagship'),
	  (2,'u-tuan',4,'Hơi nóng khi chơi game'),
	  (4,'u-minh',5,'Pin cả ngày'),
	  (6,'u-hoa',4,'Chống ồn tốt'),
	  (7,'u-tuan',3,'Âm bass hơi yếu'),
	  (8,'u-lan',4,'Đo nhịp tim chính xác')`)

	// Recent activity so trending has signal on a fresh database
	tx.MustExec(`INSERT INTO view_events(id,product_id,user_id,session_id) VALUES
	  ('ve-001',1,'u-lan','s-01'),
	  ('ve-002',1,'','s-02'),
	  ('ve-003',2,'u-minh','s-03'),
	  ('ve-004',2,'u-hoa','s-04'),
	  ('ve-005',2,'','s-05'),
	  ('ve-006',6,'u-lan','s-01'),
	  ('ve-007',8,'u-lan','s-01'),
	  ('ve-008',4,'u-minh','s-03')`)

	tx.MustExec(`INSERT INTO orders(id,user_id) VALUES
	  ('o-001','u-lan'),
	  ('o-002','u-minh'),
	  ('o-003','u-hoa')`)

	tx.MustExec(`INSERT INTO order_items(order_id,product_id,qty,unit_price) VALUES
	  ('o-001',1,1,9490000),
	  ('o-001',10,2,390000),
	  ('o-002',4,1,27990000),
	  ('o-003',6,1,5990000)`)

	return tx.Commit()
}
