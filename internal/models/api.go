package models

// DateFormat is the timestamp layout of the JSON API.
const DateFormat = "2006-01-02 15:04:05"

// PotResponse represents a pot in the API
// swagger:model PotResponse
type PotResponse struct {
	// example: 1
	ID int64 `json:"id"`
	// example: http://localhost:8080/api/v1/pots/1
	URL string `json:"url"`
	// example: 2024-05-01 09:30:00
	BrewedAt string `json:"brewed_at"`
	// Null while the pot is drinkable
	DrankAt   *string `json:"drank_at"`
	Drinkable bool    `json:"drinkable"`
	// URL of the tea
	Tea     string `json:"tea"`
	TeaName string `json:"tea_name"`
	// URL of the brewer
	Brewer         string `json:"brewer"`
	BrewerUsername string `json:"brewer_username"`
}

// TeaResponse represents a tea in the API
// swagger:model TeaResponse
type TeaResponse struct {
	ID             int64  `json:"id"`
	URL            string `json:"url"`
	Name           string `json:"name"`
	Category       string `json:"category"`
	Location       string `json:"location"`
	ImageURL       string `json:"image_url"`
	Description    string `json:"description"`
	BrewingMethods string `json:"brewing_methods"`
	TastingNotes   string `json:"tasting_notes"`
	// URL of the pots brewed with this tea
	Pots string `json:"pots"`
}

// BrewerResponse represents a brewer in the API
// swagger:model BrewerResponse
type BrewerResponse struct {
	ID          int64  `json:"id"`
	URL         string `json:"url"`
	Email       string `json:"email"`
	Username    string `json:"username"`
	Role        string `json:"role"`
	Confirmed   bool   `json:"confirmed"`
	Name        string `json:"name"`
	Location    string `json:"location"`
	AboutMe     string `json:"about_me"`
	MemberSince string `json:"member_since"`
	LastSeen    string `json:"last_seen"`
	Avatar      string `json:"avatar"`
	// URL of the pots brewed by this brewer
	Pots string `json:"pots"`
}

// RoleResponse represents a role in the API
// swagger:model RoleResponse
type RoleResponse struct {
	ID          int64      `json:"id"`
	URL         string     `json:"url"`
	Name        string     `json:"name"`
	Default     bool       `json:"default"`
	Permissions Permission `json:"permissions"`
	// URL of the brewers holding this role
	Brewers string `json:"brewers"`
}

// ErrorResponse represents an API error
// swagger:model ErrorResponse
type ErrorResponse struct {
	// example: forbidden
	Error string `json:"error"`
	// example: Insufficient permissions
	Message string `json:"message"`
}

// ValidationErrorResponse represents a rejected submission
// swagger:model ValidationErrorResponse
type ValidationErrorResponse struct {
	// example: bad request
	Error string `json:"error"`
	// example: Data not given or invalid
	Message string `json:"message"`
	// Violations per submitted field
	ValidationErrors map[string][]string `json:"validation_errors"`
}

// PotListResponse is one page of pots
// swagger:model PotListResponse
type PotListResponse struct {
	Pots []PotResponse `json:"pots"`
	// example: http://localhost:8080/api/v1/pots/?limit=2&page=1
	Prev *string `json:"prev"`
	// example: http://localhost:8080/api/v1/pots/?limit=2&page=3
	Next *string `json:"next"`
	// Total number of pots
	// example: 5
	Count int `json:"count"`
}

// TeaListResponse is one page of teas
// swagger:model TeaListResponse
type TeaListResponse struct {
	Teas  []TeaResponse `json:"teas"`
	Prev  *string       `json:"prev"`
	Next  *string       `json:"next"`
	Count int           `json:"count"`
}

// BrewerListResponse is one page of brewers
// swagger:model BrewerListResponse
type BrewerListResponse struct {
	Brewers []BrewerResponse `json:"brewers"`
	Prev    *string          `json:"prev"`
	Next    *string          `json:"next"`
	Count   int              `json:"count"`
}

// RoleListResponse is one page of roles
// swagger:model RoleListResponse
type RoleListResponse struct {
	Roles []RoleResponse `json:"roles"`
	Prev  *string        `json:"prev"`
	Next  *string        `json:"next"`
	Count int            `json:"count"`
}
