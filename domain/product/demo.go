package product

func unsplash(photo string) string {
	return "https://images.unsplash.com/" + photo + "?w=400"
}

// Demo returns the sample catalog loaded into an empty store when demo
// seeding is enabled. Associations use the legacy label only.
func Demo() []Product {
	return []Product{
		{ID: "1", Name: "iPhone 15 Pro Max", Brand: "Apple", Category: "Smartphones", Price: 1199,
			Description: "Latest iPhone with A17 Pro chip and titanium design",
			Image:       unsplash("photo-1695048133142-1a20484d2569"), InstallmentPlan: "12 months",
			DateCreated: "2024-01-15", Time: "10:30 AM"},
		{ID: "2", Name: "Samsung Galaxy S24 Ultra", Brand: "Samsung", Category: "Smartphones", Price: 1099,
			Description: "Premium Android phone with S Pen and AI features",
			Image:       unsplash("photo-1610945415295-d9bbf067e59c"), InstallmentPlan: "18 months",
			DateCreated: "2024-01-16", Time: "11:45 AM"},
		{ID: "3", Name: "MacBook Pro 16\"", Brand: "Apple", Category: "Laptops", Price: 2499,
			Description: "Powerful laptop with M3 Max chip for professionals",
			Image:       unsplash("photo-1517336714731-489689fd1ca8"), InstallmentPlan: "24 months",
			DateCreated: "2024-01-17", Time: "09:15 AM"},
		{ID: "4", Name: "Dell XPS 15", Brand: "Dell", Category: "Laptops", Price: 1799,
			Description: "Premium Windows laptop with OLED display",
			Image:       unsplash("photo-1593642632559-0c6d3fc62b89"), InstallmentPlan: "12 months",
			DateCreated: "2024-01-18", Time: "02:20 PM"},
		{ID: "5", Name: "Sony WH-1000XM5", Brand: "Sony", Category: "Headphones", Price: 399,
			Description: "Industry-leading noise canceling headphones",
			Image:       unsplash("photo-1618366712010-f4ae9c647dcb"), InstallmentPlan: "6 months",
			DateCreated: "2024-01-19", Time: "04:10 PM"},
		{ID: "6", Name: "iPad Pro 12.9\"", Brand: "Apple", Category: "Tablets", Price: 1099,
			Description: "Most advanced iPad with M2 chip",
			Image:       unsplash("photo-1544244015-0df4b3ffc6b0"), InstallmentPlan: "12 months",
			DateCreated: "2024-01-20", Time: "10:00 AM"},
		{ID: "7", Name: "PlayStation 5", Brand: "Sony", Category: "Gaming", Price: 499,
			Description: "Next-gen gaming console with ultra-high speed SSD",
			Image:       unsplash("photo-1606813907291-d86efa9b94db"), InstallmentPlan: "12 months",
			DateCreated: "2024-01-21", Time: "03:30 PM"},
		{ID: "8", Name: "LG OLED TV 65\"", Brand: "LG", Category: "Electronics", Price: 1999,
			Description: "4K OLED smart TV with perfect blacks",
			Image:       unsplash("photo-1593359677879-a4bb92f829d1"), InstallmentPlan: "24 months",
			DateCreated: "2024-01-22", Time: "01:45 PM"},
	}
}
