package catalogservice

// Client is a salon client record from the catalog
type Client struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// Service is a salon service record from the catalog
type Service struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"duration_minutes"`
}

// Stylist is a stylist record from the catalog
type Stylist struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ErrorResponse is the catalog's error payload
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
