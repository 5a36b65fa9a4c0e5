package model

type Product struct {
	BaseModel
	Name         string  `gorm:"type:varchar(100);not null" json:"name" validate:"required"`
	Category     string  `gorm:"type:varchar(50);not null;index" json:"category" validate:"required"`
	SellingPrice float64 `gorm:"not null" json:"selling_price" validate:"gte=0"`
	CostPrice    float64 `gorm:"not null" json:"cost_price" validate:"gte=0"`
	Stock        int     `gorm:"default:0" json:"stock" validate:"gte=0"`
	Rating       float64 `gorm:"default:0" json:"rating"`
	ImageURL     string  `gorm:"type:varchar(200);default:'default_food.jpg'" json:"image_url"`
}

// ProfitPerItem is the margin earned on a single unit at current prices
func (p *Product) ProfitPerItem() float64 {
	return p.SellingPrice - p.CostPrice
}
