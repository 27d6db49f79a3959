package models

// Tea represents a tea catalog row in the database
type Tea struct {
	ID             int64  `db:"id"`              // Primary key
	Name           string `db:"name"`            // Unique tea name
	Category       string `db:"category"`        // Type of tea
	Location       string `db:"location"`        // Origin
	ImageURL       string `db:"image_url"`       // Picture of the tea
	Description    string `db:"description"`     // Markdown
	BrewingMethods string `db:"brewing_methods"` // Markdown
	TastingNotes   string `db:"tasting_notes"`   // Markdown
}

// TeaInput is the editable part of a tea, shared by the form and the API.
type TeaInput struct {
	Name           string `json:"name" validate:"required,max=64"`
	Category       string `json:"category" validate:"required,max=64"`
	Location       string `json:"location" validate:"max=64"`
	ImageURL       string `json:"image_url" validate:"omitempty,url,max=256"`
	Description    string `json:"description"`
	BrewingMethods string `json:"brewing_methods"`
	TastingNotes   string `json:"tasting_notes"`
}

// Apply copies the input onto t.
func (in TeaInput) Apply(t *Tea) {
	t.Name = in.Name
	t.Category = in.Category
	t.Location = in.Location
	t.ImageURL = in.ImageURL
	t.Description = in.Description
	t.BrewingMethods = in.BrewingMethods
	t.TastingNotes = in.TastingNotes
}

// TeaInputFrom returns the editable fields of t.
func TeaInputFrom(t *Tea) TeaInput {
	return TeaInput{
		Name:           t.Name,
		Category:       t.Category,
		Location:       t.Location,
		ImageURL:       t.ImageURL,
		Description:    t.Description,
		BrewingMethods: t.BrewingMethods,
		TastingNotes:   t.TastingNotes,
	}
}
