package entity

type Theater struct {
	Base
	Name     string
	City     string
	Capacity int
	ShowIDs  []string // scheduling order
}
