package models

// VehicleSpec 차량 모델/트림 카탈로그. 읽기 전용 참조 데이터이며 Car가 조인합니다.
type VehicleSpec struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	Brand        string  `gorm:"size:50;not null" json:"brand"`
	Model        string  `gorm:"size:80;not null" json:"model"`
	Trim         string  `gorm:"size:80" json:"trim"`
	EngineType   string  `gorm:"size:40" json:"engine_type"` // electric, hybrid, gasoline, diesel
	Displacement int     `json:"displacement_cc"`
	FuelType     string  `gorm:"size:30" json:"fuel_type"`
	Seats        int     `json:"seats"`
	MaxSpeedKmh  int     `json:"max_speed_kmh"`
	RangeKm      int     `json:"range_km"`
	Category     string  `gorm:"size:30" json:"category"` // sedan, suv, hatchback, truck
	PriceMin     int64   `json:"price_min"`
	PriceMax     int64   `json:"price_max"`
	WidthMm      int     `json:"width_mm"`
	LengthMm     int     `json:"length_mm"`
	HeightMm     int     `json:"height_mm"`
	Efficiency   float64 `json:"efficiency"` // km/L 또는 km/kWh
}

func (VehicleSpec) TableName() string {
	return "vehicle_specs"
}
