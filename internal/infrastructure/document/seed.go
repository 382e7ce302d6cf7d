package document

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/freshstock-api/internal/domain/entity"
)

// Default construye el documento inicial con datos de demostración. Los vencimientos
// se calculan relativos a now para que la demo muestre todos los estados de stock.
func Default(now time.Time) *entity.Document {
	today := entity.DateOf(now)
	yesterday := today.AddDays(-1)
	expires := func(days int) *entity.Date {
		d := today.AddDays(days)
		return &d
	}
	price := decimal.NewFromInt

	doc := &entity.Document{
		Settings: entity.Settings{
			CompanyName:            "FreshStock Grocery",
			Timezone:               "UTC-8",
			DateFormat:             "MM/DD/YYYY",
			Currency:               "INR",
			LowStockThreshold:      entity.DefaultLowStockThreshold,
			CriticalStockThreshold: entity.DefaultCriticalStockThreshold,
			ExpiryDaysThreshold:    entity.DefaultExpiryDaysThreshold,
			NotificationEmail:      "admin@freshstock.com",
			SystemMessage:          "Welcome to FreshStock! Please keep your inventory up to date.",
		},
		Users: []entity.User{
			{ID: 1, Username: "admin", Password: "admin123", Name: "Admin User", Role: entity.RoleAdmin},
			{ID: 2, Username: "karan", Password: "karan123", Name: "Inventory Manager", Role: entity.RoleManager},
		},
		Products: []entity.Product{
			{ID: 1, Name: "Fresh Apples", SKU: "FR-APP-RED", Category: "Fruits & Vegetables", Stock: 25, Unit: "kg",
				Price: price(120), ExpiryDate: expires(10), Description: "Fresh red apples", CreatedAt: now},
			{ID: 2, Name: "Milk", SKU: "DA-MILK-1L", Category: "Dairy & Eggs", Stock: 42, Unit: "bottle",
				Price: price(60), ExpiryDate: expires(3), Description: "1L full cream milk", CreatedAt: now},
			{ID: 3, Name: "Chicken Breast", SKU: "ME-CHK-BRST", Category: "Meat & Poultry", Stock: 12, Unit: "kg",
				Price: price(350), ExpiryDate: expires(1), Description: "Fresh chicken breast", CreatedAt: now},
			{ID: 4, Name: "White Bread", SKU: "BK-BRD-WHT", Category: "Bakery", Stock: 30, Unit: "pack",
				Price: price(40), ExpiryDate: expires(-1), Description: "Fresh white bread", CreatedAt: now},
			{ID: 5, Name: "Mineral Water", SKU: "BV-WTR-1L", Category: "Beverages", Stock: 0, Unit: "bottle",
				Price: price(20), ExpiryDate: expires(200), Description: "1L mineral water", CreatedAt: now},
			{ID: 6, Name: "Oil", SKU: "OI-LK-DR", Category: "Household", Stock: 4, Unit: "bottle",
				Price: price(152), ExpiryDate: expires(400), Description: "1L bottle", CreatedAt: now},
		},
		Suppliers: []entity.Supplier{
			{ID: 1, Name: "Fresh Farms Produce", Contact: "Raj Sharma", Phone: "(555) 123-4567",
				Email: "raj@freshfarms.com", Category: "Fruits & Vegetables", Products: "Fruits, Vegetables",
				Status: entity.SupplierActive, Address: "123 Farm Road, Bangalore, India", CreatedAt: now},
			{ID: 2, Name: "Dairy Delight", Contact: "Priya Patel", Phone: "(555) 987-6543",
				Email: "priya@dairydelight.com", Category: "Dairy & Eggs", Products: "Milk, Cheese, Yogurt, Eggs",
				Status: entity.SupplierActive, Address: "456 Dairy Lane, Mumbai, India", CreatedAt: now},
		},
		Orders: []entity.Order{
			{ID: 1, PONumber: entity.PONumberFor(1), SupplierID: 1, Date: today, Status: entity.OrderReceived,
				Items: []entity.OrderItem{
					{ProductID: 1, Quantity: 10, Price: price(110)},
					{ProductID: 2, Quantity: 5, Price: price(55)},
				},
				Notes: "Received in good condition", CreatedAt: now},
			{ID: 2, PONumber: entity.PONumberFor(2), SupplierID: 2, Date: today, Status: entity.OrderPending,
				Items: []entity.OrderItem{
					{ProductID: 3, Quantity: 8, Price: price(340)},
				},
				Notes: "Waiting for approval", CreatedAt: now},
		},
		Activities: []entity.Activity{
			{ID: 1, Date: now, Activity: entity.ActivityProductAdded, User: "Admin User",
				Details: `Added "Fresh Apples" to inventory`},
		},
		Sales: []entity.Sale{
			{ID: 1, Date: today, ProductID: 1, Quantity: 2, Amount: price(240), Customer: entity.DefaultCustomer},
			{ID: 2, Date: today, ProductID: 2, Quantity: 3, Amount: price(180), Customer: "ABC Corporation"},
			{ID: 3, Date: yesterday, ProductID: 2, Quantity: 5, Amount: price(300), Customer: "ABC Corporation"},
			{ID: 4, Date: yesterday, ProductID: 3, Quantity: 1, Amount: price(350), Customer: "XYZ Enterprises"},
		},
	}
	return doc
}
