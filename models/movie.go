package models

// Movie is one tracked film. Rating, Ranking and Review are nil until the
// user rates the movie; Ranking is rewritten on every list view.
type Movie struct {
	ID          int64    `db:"id" json:"id"`
	Title       string   `db:"title" json:"title"`
	Year        int      `db:"year" json:"year"`
	Description string   `db:"description" json:"description"`
	Rating      *float64 `db:"rating" json:"rating"`
	Ranking     *int     `db:"ranking" json:"ranking"`
	Review      *string  `db:"review" json:"review"`
	ImgURL      string   `db:"img_url" json:"img_url"`
}
