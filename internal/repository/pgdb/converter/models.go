package converter

// ProductModel представляет запись таблицы products в PostgreSQL.
type ProductModel struct {
	ID            int64    `db:"id"`
	Name          string   `db:"name"`
	Category      string   `db:"category"`
	Price         float64  `db:"price"`
	DiscountPrice *float64 `db:"discount_price"`
	Rating        *float64 `db:"rating"`
}

// UserModel представляет запись таблицы users в PostgreSQL.
type UserModel struct {
	ID    int64  `db:"id"`
	Name  string `db:"name"`
	Email string `db:"email"`
}

// OrderModel представляет запись таблицы orders в PostgreSQL.
type OrderModel struct {
	ID         int64   `db:"id"`
	UserID     int64   `db:"user_id"`
	ProductID  int64   `db:"product_id"`
	Quantity   int64   `db:"quantity"`
	TotalPrice float64 `db:"total_price"`
}

// OrderDetailsModel — строка выборки orders JOIN users JOIN products.
type OrderDetailsModel struct {
	Order   OrderModel
	User    UserModel
	Product ProductModel
}
