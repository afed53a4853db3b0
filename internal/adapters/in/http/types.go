package http

import "time"

// Error is the uniform error payload returned by every endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateCustomerRequest registers a customer from the admin screen.
type CreateCustomerRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// UpdateCustomerRequest changes a customer's profile. Address and region are
// only applied when UpdateAddress is set, so a profile-only edit cannot
// accidentally clear the delivery address.
type UpdateCustomerRequest struct {
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	Region        string `json:"region"`
	UpdateAddress bool   `json:"update_address"`
	AsAdmin       bool   `json:"as_admin"`
}

// Customer is one row of the customer directory.
type Customer struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	Region        string `json:"region,omitempty"`
	Code          string `json:"code"`
	AddressLocked bool   `json:"address_locked"`
}

// PreAlertRequest announces an inbound parcel before it reaches the hub.
type PreAlertRequest struct {
	TrackingNumber string `json:"tracking_number"`
	CustomerID     string `json:"customer_id"`
	Marketplace    string `json:"marketplace"`
	DeclaredValue  int64  `json:"declared_value"`
}

// ReceiveParcelRequest logs a physical parcel at the hub. ProofPhoto carries
// the raw image bytes (base64 in JSON) and may be omitted.
type ReceiveParcelRequest struct {
	TrackingNumber string  `json:"tracking_number"`
	Weight         float64 `json:"weight"`
	Length         float64 `json:"length"`
	Width          float64 `json:"width"`
	Height         float64 `json:"height"`
	Rack           string  `json:"rack"`
	ProofPhoto     []byte  `json:"proof_photo,omitempty"`
}

// AssignParcelRequest places a parcel into a batch, optionally sealed in a bag.
type AssignParcelRequest struct {
	BatchCode  string `json:"batch_code"`
	BagID      string `json:"bag_id"`
	SealNumber string `json:"seal_number"`
}

// Parcel is one parcel row in the portal and worklist read models.
type Parcel struct {
	ID             string     `json:"id"`
	TrackingNumber string     `json:"tracking_number"`
	Marketplace    string     `json:"marketplace"`
	Status         string     `json:"status"`
	BillableWeight float64    `json:"billable_weight"`
	Fee            int64      `json:"fee"`
	BatchCode      string     `json:"batch_code,omitempty"`
	ProofPhotoURL  string     `json:"proof_photo_url,omitempty"`
	PaidAt         *time.Time `json:"paid_at,omitempty"`
}

// ExpectedParcel is one row of the inbound worklist.
type ExpectedParcel struct {
	ID             string `json:"id"`
	TrackingNumber string `json:"tracking_number"`
	Marketplace    string `json:"marketplace"`
	DeclaredValue  int64  `json:"declared_value"`
	CustomerName   string `json:"customer_name,omitempty"`
	CustomerCode   string `json:"customer_code,omitempty"`
}

// CreateBatchRequest opens a new outbound batch.
type CreateBatchRequest struct {
	Code string     `json:"code"`
	ETD  *time.Time `json:"etd,omitempty"`
	ETA  *time.Time `json:"eta,omitempty"`
}

// AdvanceBatchRequest moves a batch forward in its transit sequence.
type AdvanceBatchRequest struct {
	Status string `json:"status"`
}

// Batch is one row of the batch board.
type Batch struct {
	Code        string     `json:"code"`
	ETD         *time.Time `json:"etd,omitempty"`
	ETA         *time.Time `json:"eta,omitempty"`
	Status      string     `json:"status"`
	ParcelCount int        `json:"parcel_count"`
}

// PortalProfile is the authenticated customer's own view.
type PortalProfile struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	Region        string `json:"region,omitempty"`
	Code          string `json:"code"`
	AddressLocked bool   `json:"address_locked"`
}
