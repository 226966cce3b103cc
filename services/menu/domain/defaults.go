package domain

import (
	"github.com/shopspring/decimal"

	"github.com/TajHussain7/Kashi-Pizza-Home/services/menu/domain/models"
)

// DefaultCategories is the category list seeded into an empty catalog,
// in board display order.
var DefaultCategories = []string{
	"Burgers",
	"Wraps",
	"KPH Super Deals",
	"Regular Pizzas",
	"Special Pizzas",
	"Starters",
	"Fries & Sides",
	"Cold Drinks",
}

func flat(id int64, name, category string, price int64) models.MenuItem {
	p := decimal.NewFromInt(price)
	return models.MenuItem{ID: id, Name: models.ItemName(name), Category: category, BasePrice: &p}
}

func sized(id int64, name, category string, small, medium, large, family int64) models.MenuItem {
	return models.MenuItem{
		ID:       id,
		Name:     models.ItemName(name),
		Category: category,
		SizePrices: map[models.Size]decimal.Decimal{
			models.SizeSmall:  decimal.NewFromInt(small),
			models.SizeMedium: decimal.NewFromInt(medium),
			models.SizeLarge:  decimal.NewFromInt(large),
			models.SizeFamily: decimal.NewFromInt(family),
		},
	}
}

// DefaultCatalog builds the seed menu used when the store holds no catalog
// yet. Prices are in rupees.
func DefaultCatalog() Catalog {
	items := []models.MenuItem{
		flat(1, "Zinger Burger", "Burgers", 320),
		flat(2, "Zinger Cheese Burger", "Burgers", 380),
		flat(3, "Chicken Burger", "Burgers", 250),
		flat(4, "Chicken Tikka Burger", "Burgers", 250),
		flat(5, "Pizza Burger", "Burgers", 400),
		flat(6, "Tower Burger", "Burgers", 600),
		flat(7, "Signature Burger", "Burgers", 320),
		flat(8, "Grill Burger", "Burgers", 450),
		flat(9, "Mighty Zest", "Burgers", 450),

		flat(10, "Chicken Shawarma (S)", "Wraps", 180),
		flat(11, "Chicken Shawarma (L)", "Wraps", 250),
		flat(12, "Zinger Shawarma", "Wraps", 320),
		flat(13, "Arabian Shawarma", "Wraps", 280),
		flat(14, "Kababish Shawarma", "Wraps", 300),
		flat(15, "Turkish Wraps", "Wraps", 350),
		flat(16, "Twister", "Wraps", 350),
		flat(17, "Chicken Paratha", "Wraps", 300),
		flat(18, "Paratha Doner Kabab", "Wraps", 400),

		sized(19, "Chicken Tikka", "Regular Pizzas", 550, 1000, 1400, 2000),
		sized(20, "Chicken Fajita", "Regular Pizzas", 550, 1000, 1400, 2000),
		sized(21, "Hot & Spicy", "Regular Pizzas", 550, 1000, 1400, 2000),
		sized(22, "Chicken Achari", "Regular Pizzas", 550, 1000, 1400, 2000),
		sized(23, "Chicken Tandoori", "Regular Pizzas", 550, 1000, 1400, 2000),
		sized(24, "Chicken Supreme", "Regular Pizzas", 550, 1000, 1400, 2000),
		sized(25, "Chicken Lover Pizza", "Regular Pizzas", 550, 1000, 1400, 2000),

		sized(26, "Malai Boti Pizza", "Special Pizzas", 600, 1100, 1600, 2200),
		sized(27, "Kabab Crust Pizza", "Special Pizzas", 600, 1100, 1600, 2200),
		sized(28, "Special Kabab Pizza", "Special Pizzas", 600, 1100, 1600, 2200),
		sized(29, "Crown Crust Pizza", "Special Pizzas", 600, 1100, 1600, 2200),
		sized(30, "Lazania Pizza", "Special Pizzas", 600, 1100, 1600, 2200),
		sized(31, "Cheese Crust Pizza", "Special Pizzas", 600, 1100, 1600, 2200),
		flat(32, "One Meter Long Pizza (3 Different Flavour)", "Special Pizzas", 2600),

		flat(33, "Hot Wings (5 Piece)", "Starters", 300),
		flat(34, "Hot Wings (10 Piece)", "Starters", 500),
		flat(35, "Hot Shots (5 Piece)", "Starters", 300),
		flat(36, "Hot Shots (10 Piece)", "Starters", 500),
		flat(37, "Nuggets (5 Piece)", "Starters", 300),
		flat(38, "Nuggets (10 Piece)", "Starters", 500),
		flat(39, "Platter", "Starters", 500),
		flat(40, "Kabab Bites", "Starters", 550),

		flat(41, "Fries Masrow", "Fries & Sides", 350),
		flat(42, "Loaded Fries", "Fries & Sides", 500),
		flat(43, "Pasta", "Fries & Sides", 500),

		flat(44, "KPH-1: 1 Large Pizza + 4 Zinger + 10 Piece Wings + 1.5 Ltr Drink", "KPH Super Deals", 3200),
		flat(45, "KPH-2: 1 Large Pizza + 2 Zinger + 5 Piece Wings + 1.5 Ltr Drink", "KPH Super Deals", 2400),
		flat(46, "KPH-3: 1 Medium Pizza + 10 Hotshots + 1.5 Ltr Drink", "KPH Super Deals", 1600),
		flat(47, "KPH-4: 4 Small Pizza + 1.5 Ltr Drink", "KPH Super Deals", 2200),
		flat(48, "KPH-5: 1 Zinger Burger + Half Fries + 1 Reg Drink", "KPH Super Deals", 450),
		flat(49, "KPH-6: 1 Chicken Burger + Half Fries + 1 Reg Drink", "KPH Super Deals", 400),
		flat(50, "KPH-7: 10 Hot Wings + 10 Nuggets + 1 Ltr Drink", "KPH Super Deals", 1100),
		flat(51, "KPH-8: 3 Zinger + 5 Hotshot + 1 Fries + 1 Drinks 1 Ltr", "KPH Super Deals", 1500),
		flat(52, "KPH-9: 5 Zinger Burger + 10 Hot Wings + 2 Fries + 2 Drinks 1.5 Ltr", "KPH Super Deals", 2700),
		flat(53, "Shawarma Deal: 5 Shawarma (L) + 1 Ltr Drink", "KPH Super Deals", 1300),

		flat(54, "Pepsi 1.5 Ltr", "Cold Drinks", 150),
		flat(55, "Pepsi 1 Ltr", "Cold Drinks", 120),
		flat(56, "Pepsi Can", "Cold Drinks", 80),
		flat(57, "7UP 1.5 Ltr", "Cold Drinks", 150),
		flat(58, "7UP 1 Ltr", "Cold Drinks", 120),
		flat(59, "Water Bottle", "Cold Drinks", 50),
	}
	cats := make([]string, len(DefaultCategories))
	copy(cats, DefaultCategories)
	return Catalog{Items: items, Categories: cats}
}
