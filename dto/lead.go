package dto

// LeadRequest is the quick-form lead payload (name + phone required,
// email and message optional). Field-level validation happens in
// services.LeadService so the rules stay testable outside HTTP.
type LeadRequest struct {
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone" binding:"required"`
	Email   string `json:"email"`
	Message string `json:"message"`
	Source  string `json:"source"`
}

// LeadResponse acknowledges an accepted lead.
type LeadResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

// EstimateRequest is the renovation calculator payload. Services lists the
// selected extra work items; each one raises the total by ten percent.
type EstimateRequest struct {
	RoomType   string   `json:"roomType" binding:"required"`
	Area       float64  `json:"area" binding:"required,gt=0,lte=1000"`
	RepairType string   `json:"repairType" binding:"required"`
	Rooms      int      `json:"rooms" binding:"required,gte=1,lte=20"`
	Services   []string `json:"services"`
	HasDesign  bool     `json:"hasDesign"`
}

// EstimateResponse carries the computed price band in rubles.
type EstimateResponse struct {
	Min     int    `json:"min"`
	Max     int    `json:"max"`
	Average int    `json:"average"`
	PerM2   int    `json:"perM2"`
	Label   string `json:"label"`
}
