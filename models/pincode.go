package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Pincode is one delivery area and its shipping terms
type Pincode struct {
	ID                    uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Code                  string    `json:"pincode" gorm:"column:pincode;type:varchar(6);uniqueIndex;not null"`
	City                  string    `json:"city" gorm:"type:varchar(100);not null"`
	State                 string    `json:"state" gorm:"type:varchar(100);not null"`
	StandardDeliveryDays  int       `json:"standard_delivery_days" gorm:"default:5"`
	ExpressDeliveryDays   int       `json:"express_delivery_days" gorm:"default:2"`
	ExpressDeliveryCharge float64   `json:"express_delivery_charge" gorm:"type:numeric(6,2);default:99"`
	CODAvailable          bool      `json:"cod_available" gorm:"column:cod_available;not null"`
	IsServiceable         bool      `json:"is_serviceable" gorm:"not null;index"`
	CreatedAt             time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (Pincode) TableName() string {
	return "pincodes"
}

func (p *Pincode) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

// DeliveryOption is one shipping speed in the serviceability answer
type DeliveryOption struct {
	Days   int     `json:"days"`
	Date   string  `json:"date"`
	Charge float64 `json:"charge"`
}

// PincodeResponse is the /check-pincode/ answer
type PincodeResponse struct {
	Success          bool            `json:"success"`
	Serviceable      bool            `json:"serviceable"`
	City             string          `json:"city,omitempty"`
	State            string          `json:"state,omitempty"`
	StandardDelivery *DeliveryOption `json:"standard_delivery,omitempty"`
	ExpressDelivery  *DeliveryOption `json:"express_delivery,omitempty"`
	CODAvailable     bool            `json:"cod_available"`
	Message          string          `json:"message,omitempty"`
}

// deliveryDateLayout renders e.g. "07 Mar, Friday"
const deliveryDateLayout = "02 Jan, Monday"

// Quote builds the serviceability answer for deliveries ordered at now.
func (p Pincode) Quote(now time.Time) PincodeResponse {
	standard := now.AddDate(0, 0, p.StandardDeliveryDays)
	express := now.AddDate(0, 0, p.ExpressDeliveryDays)

	return PincodeResponse{
		Success:     true,
		Serviceable: true,
		City:        p.City,
		State:       p.State,
		StandardDelivery: &DeliveryOption{
			Days: p.StandardDeliveryDays,
			Date: standard.Format(deliveryDateLayout),
		},
		ExpressDelivery: &DeliveryOption{
			Days:   p.ExpressDeliveryDays,
			Date:   express.Format(deliveryDateLayout),
			Charge: p.ExpressDeliveryCharge,
		},
		CODAvailable: p.CODAvailable,
	}
}
