package movie

// View is the flat, render-ready structure the search template
// consumes. Values are passed through from the upstream payload
// without transformation.
type View struct {
	Title    string
	Year     string
	Rated    string
	Released string
	Runtime  string
	Genre    string
	Director string
	Writer   string
	Actors   string
	Plot     string
	Poster   string

	ImdbSource   string
	ImdbValue    string
	RottenSource string
	RottenValue  string
	MetaSource   string
	MetaValue    string
}
