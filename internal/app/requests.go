package app

// Requests carry raw caller input. Day names, view modes and position hints
// stay as text here and are parsed by the service, so a transport can pass
// them through untouched.

type ListDayRequest struct {
	VendorCode string `validate:"required,max=64"`
	Weekday    string `validate:"required"`
	Mode       string // "" selects the customized view
}

type CountsRequest struct {
	VendorCode string `validate:"required,max=64"`
	Mode       string
}

type MoveRequest struct {
	VendorCode string `validate:"required,max=64"`
	ClientCode string `validate:"required,max=64"`
	FromDay    string `validate:"required"`
	ToDay      string `validate:"required"`
	// Position is "start", "end" or an integer. Empty means "end".
	Position string
	Actor    string `validate:"max=128"`
}

type RestoreRequest struct {
	VendorCode string `validate:"required,max=64"`
	ClientCode string `validate:"required,max=64"`
	ToDay      string `validate:"required"`
	Position   string
	Actor      string `validate:"max=128"`
}

type BlockRequest struct {
	VendorCode string `validate:"required,max=64"`
	ClientCode string `validate:"required,max=64"`
	Weekday    string `validate:"required"`
	Actor      string `validate:"max=128"`
}

type ResetDayRequest struct {
	VendorCode string `validate:"required,max=64"`
	Weekday    string `validate:"required"`
	Actor      string `validate:"max=128"`
}

type AuditTrailRequest struct {
	VendorCode string `validate:"required,max=64"`
	// Limit caps the number of entries returned, newest first. Zero means all.
	Limit int `validate:"gte=0,lte=10000"`
}

func NewAuditTrailRequest(vendor string) AuditTrailRequest {
	return AuditTrailRequest{VendorCode: vendor, Limit: 50}
}
