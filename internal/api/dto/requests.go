package dto

// RegisterItemRequest is the request body for registering an item
type RegisterItemRequest struct {
	ItemID   *uint64 `json:"item_id"`
	Name     string  `json:"name"`
	Location string  `json:"location"`
	Date     string  `json:"date"`
	Time     string  `json:"time"`
}

// Validate validates the request body
func (r *RegisterItemRequest) Validate() error {
	if r.ItemID == nil {
		return errRequired("item_id")
	}
	if r.Name == "" {
		return errRequired("name")
	}
	if r.Location == "" {
		return errRequired("location")
	}
	if r.Date == "" {
		return errRequired("date")
	}
	if r.Time == "" {
		return errRequired("time")
	}
	return nil
}

// SubmitScanRequest is the request body for submitting a signed custody scan
type SubmitScanRequest struct {
	ItemID    *uint64 `json:"item_id"`
	Location  string  `json:"location"`
	Handler   string  `json:"handler"`
	Signature string  `json:"signature"`
}

// Validate validates the request body
func (r *SubmitScanRequest) Validate() error {
	if r.ItemID == nil {
		return errRequired("item_id")
	}
	if r.Location == "" {
		return errRequired("location")
	}
	if r.Handler == "" {
		return errRequired("handler")
	}
	if r.Signature == "" {
		return errRequired("signature")
	}
	return nil
}

// AuthorizeHandlerRequest is the request body for flipping handler authorization
type AuthorizeHandlerRequest struct {
	Handler    string `json:"handler"`
	Authorized *bool  `json:"authorized"`
}

// Validate validates the request body
func (r *AuthorizeHandlerRequest) Validate() error {
	if r.Handler == "" {
		return errRequired("handler")
	}
	if r.Authorized == nil {
		return errRequired("authorized")
	}
	return nil
}
