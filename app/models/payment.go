package models

import "time"

// PaymentStatusSuccess is the only status a stored payment can carry: failed
// verifications are rejected before anything is written.
const PaymentStatusSuccess = "success"

// Payment is an append-only record of a verification attempt. The unique index
// on RazorpayPaymentID is the sole anti-replay mechanism: concurrent requests
// carrying the same payment id race on the insert and the store rejects all
// but the first.
type Payment struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	RazorpayOrderID   string    `gorm:"type:varchar(100);not null;index" json:"razorpay_order_id"`
	RazorpayPaymentID string    `gorm:"uniqueIndex;type:varchar(100);not null" json:"razorpay_payment_id"`
	RazorpaySignature string    `gorm:"type:varchar(200);not null" json:"-"`
	PlanID            string    `gorm:"type:varchar(50);not null" json:"plan_id"`
	AmountMinorUnits  int64     `gorm:"column:amount;not null" json:"amount"`
	Status            string    `gorm:"type:varchar(20);not null" json:"status"`
	CreatedAt         time.Time `gorm:"autoCreateTime" json:"created_at"`
}
