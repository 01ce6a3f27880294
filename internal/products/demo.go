package products

import "github.com/shopspring/decimal"

// DemoCatalog is the sample catalog loaded when SEED_DEMO is set, in display order.
func DemoCatalog() []NewProduct {
	return []NewProduct{
		{
			Name:        "Ergonomic Office Chair",
			Price:       decimal.RequireFromString("299.99"),
			Description: "High-back ergonomic chair with lumbar support and adjustable armrests.",
			ImageURL:    "https://picsum.photos/seed/chair/400/300",
			DisplayHint: "office chair",
		},
		{
			Name:        "Modern Oak Dining Table",
			Price:       decimal.RequireFromString("450.00"),
			Description: "Solid oak dining table with a minimalist design, seats 6.",
			ImageURL:    "https://picsum.photos/seed/table/400/300",
			DisplayHint: "dining table",
		},
		{
			Name:        "Gaming Desktop PC - Ryzen 7",
			Price:       decimal.RequireFromString("1200.00"),
			Description: "Powerful gaming desktop with AMD Ryzen 7, RTX 4070, 32GB RAM.",
			ImageURL:    "https://picsum.photos/seed/desktop/400/300",
			DisplayHint: "gaming pc",
		},
		{
			Name:        "Latest Smartphone Pro Max",
			Price:       decimal.RequireFromString("999.00"),
			Description: "Flagship smartphone with a stunning display and pro-grade camera system.",
			ImageURL:    "https://picsum.photos/seed/phone/400/300",
			DisplayHint: "smartphone",
		},
		{
			Name:        "Adjustable Standing Desk Lamp",
			Price:       decimal.RequireFromString("79.50"),
			Description: "Modern LED desk lamp with adjustable brightness and color temperature.",
			ImageURL:    "https://picsum.photos/seed/desklamp/400/300",
			DisplayHint: "desk lamp",
		},
		{
			Name:        "Wireless Noise-Cancelling Headphones",
			Price:       decimal.RequireFromString("199.99"),
			Description: "Immersive sound experience with active noise cancellation and long battery life.",
			ImageURL:    "https://picsum.photos/seed/headphones/400/300",
			DisplayHint: "headphones audio",
		},
		{
			Name:        "Smart Coffee Maker",
			Price:       decimal.RequireFromString("89.00"),
			Description: "Wi-Fi enabled coffee maker, schedule your brews from your phone.",
			ImageURL:    "https://picsum.photos/seed/coffeemaker/400/300",
			DisplayHint: "coffee maker",
		},
		{
			Name:        "Leather Messenger Bag",
			Price:       decimal.RequireFromString("120.00"),
			Description: "Stylish and durable leather bag for laptops and daily essentials.",
			ImageURL:    "https://picsum.photos/seed/messengerbag/400/300",
			DisplayHint: "leather bag",
		},
		{
			Name:        "Premium Yoga Mat",
			Price:       decimal.RequireFromString("45.00"),
			Description: "Eco-friendly, non-slip yoga mat for all types of practice.",
			ImageURL:    "https://picsum.photos/seed/yogamat/400/300",
			DisplayHint: "yoga mat",
		},
		{
			Name:        "Portable Bluetooth Speaker",
			Price:       decimal.RequireFromString("65.00"),
			Description: "Compact and waterproof Bluetooth speaker with rich sound.",
			ImageURL:    "https://picsum.photos/seed/btspeaker/400/300",
			DisplayHint: "bluetooth speaker",
		},
		{
			Name:        "Mechanical Keyboard",
			Price:       decimal.RequireFromString("150.00"),
			Description: "RGB backlit mechanical keyboard with customizable switches.",
			ImageURL:    "https://picsum.photos/seed/keyboard/400/300",
			DisplayHint: "mechanical keyboard",
		},
		{
			Name:        "4K Ultra HD Monitor",
			Price:       decimal.RequireFromString("350.00"),
			Description: "27-inch 4K UHD monitor with HDR support for crisp visuals.",
			ImageURL:    "https://picsum.photos/seed/monitor/400/300",
			DisplayHint: "4k monitor",
		},
		{
			Name:        "Smartwatch Series X",
			Price:       decimal.RequireFromString("249.00"),
			Description: "Feature-rich smartwatch with fitness tracking and notifications.",
			ImageURL:    "https://picsum.photos/seed/smartwatch/400/300",
			DisplayHint: "smartwatch wearable",
		},
		{
			Name:        "Bookshelf, 5-Tier",
			Price:       decimal.RequireFromString("90.00"),
			Description: "Modern and sturdy 5-tier bookshelf for home or office.",
			ImageURL:    "https://picsum.photos/seed/bookshelf/400/300",
			DisplayHint: "bookshelf furniture",
		},
		{
			Name:        "Electric Kettle",
			Price:       decimal.RequireFromString("35.00"),
			Description: "Fast-boiling electric kettle with auto shut-off feature.",
			ImageURL:    "https://picsum.photos/seed/kettle/400/300",
			DisplayHint: "electric kettle",
		},
	}
}
