package configs

import (
	"log"

	"github.com/akhilgolj/plantopiawebsite-final/entity"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Seed ค่า lookup เริ่มต้น (branches, menu, promos)
func SeedLookups() error {
	return SeedInto(db)
}

// SeedInto seeds the fixed storefront data on the given connection.
// FirstOrCreate keeps it idempotent across restarts.
func SeedInto(gdb *gorm.DB) error {
	// Branches — table counts match the floor blueprints
	gdb.FirstOrCreate(&entity.Branch{}, entity.Branch{
		Code: "dreamwood", Name: "Plantopia Dreamwood",
		Address: "123 Dreamwood St, San Francisco, CA 94102", Tables: 12,
	})
	gdb.FirstOrCreate(&entity.Branch{}, entity.Branch{
		Code: "heavengarden", Name: "Plantopia Heavengarden",
		Address: "456 Heaven Ave, Los Angeles, CA 90001", Tables: 8,
	})

	// Menu types
	for _, t := range []string{"Starters", "Main Dish", "Drinks", "Desserts"} {
		gdb.FirstOrCreate(&entity.MenuType{}, entity.MenuType{TypeName: t})
	}

	seedMenu(gdb, "Starters", "Garden Bruschetta", "Sourdough, heirloom tomato, basil oil", "7.50")
	seedMenu(gdb, "Starters", "Crispy Lotus Bites", "Lotus root chips with chili-lime dip", "6.00")
	seedMenu(gdb, "Main Dish", "Wildflower Risotto", "Arborio rice, foraged mushrooms, edible petals", "14.50")
	seedMenu(gdb, "Main Dish", "Jackfruit Burger", "Pulled jackfruit, smoked aioli, brioche", "12.00")
	seedMenu(gdb, "Main Dish", "Fern Valley Curry", "Green curry, seasonal vegetables, jasmine rice", "13.00")
	seedMenu(gdb, "Drinks", "Hibiscus Cooler", "Cold-brewed hibiscus, mint, lime", "4.50")
	seedMenu(gdb, "Drinks", "Matcha Oat Latte", "Ceremonial matcha, house oat milk", "5.00")
	seedMenu(gdb, "Desserts", "Lavender Panna Cotta", "Coconut cream, lavender, berry compote", "6.50")

	// Promotions — rate promos use the lower minimum, flat the higher
	gdb.FirstOrCreate(&entity.Promotion{}, entity.Promotion{
		Code: "SAVE10", Kind: entity.PromoKindRate,
		Value:    decimal.RequireFromString("0.10"),
		MinOrder: decimal.NewFromInt(20),
		Detail:   "10% off orders of $20 or more",
	})
	gdb.FirstOrCreate(&entity.Promotion{}, entity.Promotion{
		Code: "BIGSAVE", Kind: entity.PromoKindFlat,
		Value:    decimal.NewFromInt(20),
		MinOrder: decimal.NewFromInt(50),
		Detail:   "$20 off orders of $50 or more",
	})

	log.Println("✅ Lookup tables seeded")
	return nil
}

func seedMenu(gdb *gorm.DB, typeName, name, detail, price string) {
	var mt entity.MenuType
	if err := gdb.Where("type_name = ?", typeName).First(&mt).Error; err != nil {
		return
	}
	gdb.FirstOrCreate(&entity.Menu{}, entity.Menu{
		MenuName:   name,
		Detail:     detail,
		Price:      decimal.RequireFromString(price),
		Picture:    "",
		MenuTypeID: mt.ID,
	})
}
