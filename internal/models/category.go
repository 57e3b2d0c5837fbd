package models

type Category struct {
	ID           string `json:"id"`
	CategoryName string `json:"category_name"`
}
